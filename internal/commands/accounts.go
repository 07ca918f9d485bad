package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/cleared-dev/ledgerlab/internal/accounts"
	"github.com/cleared-dev/ledgerlab/internal/model"
	"github.com/cleared-dev/ledgerlab/internal/workbook"
)

func newAccountsCommand(flags *globalFlags) *cobra.Command {
	accountsCmd := &cobra.Command{
		Use:   "accounts",
		Short: "Manage the chart of accounts",
	}
	accountsCmd.AddCommand(
		newAccountsListCommand(flags),
		newAccountsAddCommand(flags),
		newAccountsEditCommand(flags),
		newAccountsDeleteCommand(flags),
	)
	return accountsCmd
}

func parseNature(s string) (model.Nature, error) {
	n, ok := model.ParseNature(s)
	if !ok {
		return "", model.Invalid(model.ErrMissingRequiredField, "", "unknown nature %q", s)
	}
	return n, nil
}

func newAccountsListCommand(flags *globalFlags) *cobra.Command {
	var nature, filter string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List accounts",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			var n model.Nature
			if nature != "" {
				var err error
				if n, err = parseNature(nature); err != nil {
					return err
				}
			}

			s, err := open(cmd, flags)
			if err != nil {
				return err
			}
			defer s.close()

			return s.renderer.Accounts(cmd.OutOrStdout(), s.book.FindAccounts(n, filter))
		},
	}

	cmd.Flags().StringVar(&nature, "nature", "", "only accounts of this nature (activo, pasivo, patrimonio, ingreso, gasto)")
	cmd.Flags().StringVar(&filter, "filter", "", "only accounts whose code or name matches")

	return cmd
}

func newAccountsAddCommand(flags *globalFlags) *cobra.Command {
	var nature, group string

	cmd := &cobra.Command{
		Use:   "add <code> <name>",
		Short: "Add an account",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := open(cmd, flags)
			if err != nil {
				return err
			}
			defer s.close()

			n, err := parseNature(nature)
			if err != nil {
				return err
			}
			err = s.book.AddAccount(workbook.AddAccountCommand{Code: args[0], Name: args[1], Nature: n, Group: group})
			if err != nil {
				return err
			}
			if err := s.save(); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Added account %s\n", args[0])
			return nil
		},
	}

	cmd.Flags().StringVar(&nature, "nature", "", "account nature (required)")
	cmd.Flags().StringVar(&group, "group", "", "account group (required)")
	_ = cmd.MarkFlagRequired("nature")
	_ = cmd.MarkFlagRequired("group")

	return cmd
}

func newAccountsEditCommand(flags *globalFlags) *cobra.Command {
	var code, name, nature, group string

	cmd := &cobra.Command{
		Use:   "edit <code>",
		Short: "Change an account's code, name, nature or group",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var patch accounts.AccountPatch
			if cmd.Flags().Changed("code") {
				patch.Code = &code
			}
			if cmd.Flags().Changed("name") {
				patch.Name = &name
			}
			if cmd.Flags().Changed("nature") {
				n, err := parseNature(nature)
				if err != nil {
					return err
				}
				patch.Nature = &n
			}
			if cmd.Flags().Changed("group") {
				patch.Group = &group
			}

			s, err := open(cmd, flags)
			if err != nil {
				return err
			}
			defer s.close()

			if err := s.book.EditAccount(workbook.EditAccountCommand{Code: args[0], Patch: patch}); err != nil {
				return err
			}
			if err := s.save(); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Updated account %s\n", args[0])
			return nil
		},
	}

	cmd.Flags().StringVar(&code, "code", "", "new account code")
	cmd.Flags().StringVar(&name, "name", "", "new account name")
	cmd.Flags().StringVar(&nature, "nature", "", "new account nature")
	cmd.Flags().StringVar(&group, "group", "", "new account group")

	return cmd
}

func newAccountsDeleteCommand(flags *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <code>",
		Short: "Delete an account",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := open(cmd, flags)
			if err != nil {
				return err
			}
			defer s.close()

			if err := s.book.DeleteAccount(args[0]); err != nil {
				return err
			}
			if err := s.save(); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Deleted account %s\n", args[0])
			return nil
		},
	}
}
