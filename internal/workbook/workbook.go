package workbook

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"go.uber.org/multierr"
	"go.uber.org/zap"

	"github.com/cleared-dev/ledgerlab/internal/accounts"
	"github.com/cleared-dev/ledgerlab/internal/config"
	"github.com/cleared-dev/ledgerlab/internal/id"
	"github.com/cleared-dev/ledgerlab/internal/journal"
	"github.com/cleared-dev/ledgerlab/internal/model"
	"github.com/cleared-dev/ledgerlab/internal/report"
	"github.com/cleared-dev/ledgerlab/internal/scenario"
)

// Snapshot file names inside a workbook directory.
const (
	AccountsFile = "accounts.csv"
	JournalFile  = "journal.csv"
)

var (
	// ErrExists is returned by Init when the directory already holds a workbook.
	ErrExists = errors.New("workbook already exists")
	// ErrUnknownScenario is returned by LoadScenario for a name not in the catalog.
	ErrUnknownScenario = errors.New("unknown scenario")
)

// Workbook is the application state: configuration, chart of accounts and
// journal. It changes only through its command methods.
type Workbook struct {
	cfg       *config.Config
	accounts  *accounts.Registry
	journal   *journal.Store
	validator *journal.Validator
	catalog   *scenario.Catalog
	log       *zap.Logger
}

// Option customizes a Workbook.
type Option func(*Workbook)

// WithLogger sets the logger. The default discards everything.
func WithLogger(l *zap.Logger) Option {
	return func(w *Workbook) { w.log = l }
}

// WithIDGenerator sets the entry ID generator used by the validator.
func WithIDGenerator(gen id.Generator) Option {
	return func(w *Workbook) { w.validator = journal.NewValidator(gen) }
}

// WithCatalog replaces the built-in scenario catalog.
func WithCatalog(c *scenario.Catalog) Option {
	return func(w *Workbook) { w.catalog = c }
}

func build(cfg *config.Config, reg *accounts.Registry, store *journal.Store, opts []Option) *Workbook {
	w := &Workbook{
		cfg:       cfg,
		accounts:  reg,
		journal:   store,
		validator: journal.NewValidator(nil),
		log:       zap.NewNop(),
	}
	for _, opt := range opts {
		opt(w)
	}
	if w.catalog == nil {
		w.catalog = scenario.Default()
	}
	return w
}

// New creates an in-memory workbook with the given chart and an empty journal.
func New(cfg *config.Config, chart []model.Account, opts ...Option) *Workbook {
	return build(cfg, accounts.NewRegistry(chart), journal.NewStore(), opts)
}

// Init creates a workbook with the default chart of accounts in dir and
// saves it.
func Init(dir, name string, opts ...Option) (*Workbook, error) {
	if _, err := os.Stat(filepath.Join(dir, config.FileName)); err == nil {
		return nil, fmt.Errorf("%s: %w", dir, ErrExists)
	} else if !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("checking %s: %w", dir, err)
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("creating directory %s: %w", dir, err)
	}

	w := New(config.Default(name), accounts.DefaultChart(), opts...)
	if err := w.Save(dir); err != nil {
		return nil, err
	}
	w.log.Info("workbook initialized", zap.String("dir", dir), zap.Int("accounts", w.accounts.Len()))
	return w, nil
}

// Load reads a workbook snapshot from dir. A missing journal file means an
// empty journal.
func Load(dir string, opts ...Option) (*Workbook, error) {
	cfg, err := config.Load(filepath.Join(dir, config.FileName))
	if err != nil {
		return nil, err
	}
	reg, err := accounts.Load(filepath.Join(dir, AccountsFile))
	if err != nil {
		return nil, err
	}
	store, err := journal.Load(filepath.Join(dir, JournalFile))
	if err != nil {
		return nil, err
	}

	w := build(cfg, reg, store, opts)
	w.log.Debug("workbook loaded", zap.String("dir", dir), zap.Int("accounts", reg.Len()), zap.Int("entries", store.Len()))
	if orphans := report.OrphanCodes(reg.All(), store.All()); len(orphans) > 0 {
		w.log.Warn("journal references unknown accounts", zap.Strings("codes", orphans))
	}
	return w, nil
}

// Save writes every snapshot file to dir. Each file is replaced atomically;
// a failure on one file does not stop the others.
func (w *Workbook) Save(dir string) error {
	return multierr.Combine(
		config.Save(filepath.Join(dir, config.FileName), w.cfg),
		w.accounts.Save(filepath.Join(dir, AccountsFile)),
		w.journal.Save(filepath.Join(dir, JournalFile)),
	)
}

// Config returns the workbook configuration.
func (w *Workbook) Config() *config.Config {
	return w.cfg
}

// Accounts returns a snapshot of the chart of accounts.
func (w *Workbook) Accounts() []model.Account {
	return w.accounts.All()
}

// FindAccounts returns the accounts of nature n whose code or name matches
// query. An empty nature or query does not filter.
func (w *Workbook) FindAccounts(n model.Nature, query string) []model.Account {
	list := w.accounts.All()
	if n != "" {
		list = w.accounts.ByNature(n)
	}
	return accounts.Search(list, query)
}

// Account looks up one account by code.
func (w *Workbook) Account(code string) (model.Account, bool) {
	return w.accounts.Get(code)
}

// Journal returns a snapshot of the journal in submission order.
func (w *Workbook) Journal() []model.JournalEntry {
	return w.journal.All()
}

// Catalog returns the scenario catalog.
func (w *Workbook) Catalog() *scenario.Catalog {
	return w.catalog
}

// AddAccountCommand adds an account to the chart.
type AddAccountCommand struct {
	Code   string
	Name   string
	Nature model.Nature
	Group  string
}

// EditAccountCommand changes the fields set in Patch on account Code.
type EditAccountCommand struct {
	Code  string
	Patch accounts.AccountPatch
}

// SubmitEntryCommand records a journal entry.
type SubmitEntryCommand struct {
	Date  time.Time
	Lines []model.JournalLine
}

// AddAccount validates and adds an account.
func (w *Workbook) AddAccount(cmd AddAccountCommand) error {
	acct := model.Account{Code: cmd.Code, Name: cmd.Name, Nature: cmd.Nature, Group: cmd.Group}
	if err := w.accounts.Add(acct); err != nil {
		w.log.Warn("account rejected", zap.String("code", cmd.Code), zap.Error(err))
		return err
	}
	w.log.Info("account added", zap.String("code", strings.TrimSpace(cmd.Code)))
	return nil
}

// EditAccount applies a patch. The code of an account cannot change once
// journal lines reference it.
func (w *Workbook) EditAccount(cmd EditAccountCommand) error {
	code := strings.TrimSpace(cmd.Code)
	if cmd.Patch.Code != nil && strings.TrimSpace(*cmd.Patch.Code) != code && w.journal.References(code) {
		err := model.Invalid(model.ErrInvalidAccountCode, code, "code is used by journal entries and cannot change")
		w.log.Warn("account edit rejected", zap.String("code", code), zap.Error(err))
		return err
	}
	if err := w.accounts.Edit(code, cmd.Patch); err != nil {
		w.log.Warn("account edit rejected", zap.String("code", code), zap.Error(err))
		return err
	}
	w.log.Info("account edited", zap.String("code", code))
	return nil
}

// DeleteAccount removes an account. Journal lines that reference it are
// kept and drop out of the reports.
func (w *Workbook) DeleteAccount(code string) error {
	code = strings.TrimSpace(code)
	if err := w.accounts.Delete(code); err != nil {
		return err
	}
	if w.journal.References(code) {
		w.log.Warn("deleted account still has journal lines", zap.String("code", code))
	} else {
		w.log.Info("account deleted", zap.String("code", code))
	}
	return nil
}

// SubmitEntry validates and appends a journal entry.
func (w *Workbook) SubmitEntry(cmd SubmitEntryCommand) (model.JournalEntry, error) {
	entry, err := w.journal.Submit(w.validator, model.EntryDraft{Date: cmd.Date, Lines: cmd.Lines})
	if err != nil {
		w.log.Warn("entry rejected", zap.Error(err))
		return model.JournalEntry{}, err
	}
	w.inspect(entry)
	w.log.Info("entry recorded", zap.String("id", id.Short(entry.ID)), zap.Int("lines", len(entry.Lines)))
	return entry, nil
}

// LoadScenario validates every entry of the named scenario, dated on date,
// and appends them all. Nothing is appended if any entry is rejected.
func (w *Workbook) LoadScenario(name string, date time.Time) ([]model.JournalEntry, error) {
	s, ok := w.catalog.Get(name)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownScenario, name)
	}

	drafts := s.Drafts(date)
	entries := make([]model.JournalEntry, 0, len(drafts))
	for i, d := range drafts {
		entry, err := w.validator.Validate(d)
		if err != nil {
			w.log.Warn("scenario rejected", zap.String("scenario", s.Slug), zap.Int("entry", i+1), zap.Error(err))
			return nil, fmt.Errorf("scenario %s entry %d: %w", s.Slug, i+1, err)
		}
		entries = append(entries, entry)
	}
	if err := w.journal.Import(entries); err != nil {
		return nil, fmt.Errorf("scenario %s: %w", s.Slug, err)
	}

	for _, e := range entries {
		w.inspect(e)
	}
	w.log.Info("scenario loaded", zap.String("scenario", s.Slug), zap.Int("entries", len(entries)))
	return entries, nil
}

// inspect warns about accepted lines that reports will treat oddly: codes
// with no account, and lines carrying both a debit and a credit.
func (w *Workbook) inspect(entry model.JournalEntry) {
	for _, l := range entry.Lines {
		if !w.accounts.Exists(l.AccountCode) {
			w.log.Warn("entry line uses unknown account", zap.String("id", id.Short(entry.ID)), zap.String("code", l.AccountCode))
		}
		if !l.Debit.IsZero() && !l.Credit.IsZero() {
			w.log.Warn("entry line has both debit and credit", zap.String("id", id.Short(entry.ID)), zap.String("code", l.AccountCode))
		}
	}
}
