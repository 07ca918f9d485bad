package commands

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/cleared-dev/ledgerlab/internal/buildinfo"
	"github.com/cleared-dev/ledgerlab/internal/config"
	"github.com/cleared-dev/ledgerlab/internal/logging"
	"github.com/cleared-dev/ledgerlab/internal/render"
	"github.com/cleared-dev/ledgerlab/internal/workbook"
)

// globalFlags are shared by every subcommand.
type globalFlags struct {
	dir     string
	noColor bool
}

// NewRootCommand creates the root CLI command with all subcommands registered.
func NewRootCommand() *cobra.Command {
	var flags globalFlags

	rootCmd := &cobra.Command{
		Use:     "ledgerlab",
		Short:   "Double-entry bookkeeping practice workbook",
		Version: buildinfo.String(),
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		SilenceUsage: true,
	}
	rootCmd.PersistentFlags().StringVar(&flags.dir, "dir", ".", "workbook directory")
	rootCmd.PersistentFlags().BoolVar(&flags.noColor, "no-color", false, "disable colored output")

	rootCmd.AddCommand(
		newInitCommand(&flags),
		newAccountsCommand(&flags),
		newEntryCommand(&flags),
		newScenariosCommand(&flags),
		newDiaryCommand(&flags),
		newLedgerCommand(&flags),
		newTrialBalanceCommand(&flags),
		newKPIsCommand(&flags),
	)

	return rootCmd
}

// session is an opened workbook plus what the command needs to print it.
type session struct {
	dir      string
	book     *workbook.Workbook
	renderer render.Renderer
	log      *zap.Logger
}

func (s *session) save() error {
	if err := s.book.Save(s.dir); err != nil {
		return fmt.Errorf("saving workbook: %w", err)
	}
	return nil
}

func (s *session) close() {
	_ = s.log.Sync()
}

func newLogger(cmd *cobra.Command, level string) (*zap.Logger, error) {
	log, err := logging.New(cmd.ErrOrStderr(), level)
	if err != nil {
		return nil, fmt.Errorf("configuring logger: %w", err)
	}
	return log, nil
}

// open loads the workbook in flags.dir.
func open(cmd *cobra.Command, flags *globalFlags) (*session, error) {
	dir, err := filepath.Abs(flags.dir)
	if err != nil {
		return nil, fmt.Errorf("resolving path: %w", err)
	}

	cfg, err := config.Load(filepath.Join(dir, config.FileName))
	if err != nil {
		return nil, fmt.Errorf("no workbook in %s (run ledgerlab init): %w", dir, err)
	}
	log, err := newLogger(cmd, cfg.Log.Level)
	if err != nil {
		return nil, err
	}

	book, err := workbook.Load(dir, workbook.WithLogger(log))
	if err != nil {
		return nil, fmt.Errorf("loading workbook: %w", err)
	}

	r := render.New(book.Config())
	if flags.noColor {
		r.Color = false
	}
	return &session{dir: dir, book: book, renderer: r, log: log}, nil
}
