package cmd

import (
	"fmt"

	"github.com/bnema/stakevault/internal/domain"
	"github.com/spf13/cobra"
)

func newAccountCmd(app *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "account",
		Short: "Fund and inspect accounts on the local chain",
	}

	cmd.AddCommand(
		newAccountFundCmd(app),
		newAccountBalanceCmd(app),
		newAccountListCmd(app),
	)

	return cmd
}

func newAccountFundCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "fund <account> <amount>",
		Short: "Credit an account with base asset",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			account := domain.AccountID(args[0])
			amount, err := parseAmountArg("amount", args[1])
			if err != nil {
				return err
			}

			return app.update(cmd.Context(), func(s *session) error {
				if err := s.chain.Fund(account, amount); err != nil {
					return err
				}
				_, err := fmt.Fprintf(cmd.OutOrStdout(), "funded %s with %s\n", account, amount)
				return err
			})
		},
	}
}

func newAccountBalanceCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "balance [account]",
		Short: "Show base asset and receipt share balances (default: caller)",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			account, err := accountArg(args, app.caller)
			if err != nil {
				return err
			}

			return app.view(cmd.Context(), func(s *session) error {
				base, err := s.chain.Base().BalanceOf(cmd.Context(), account)
				if err != nil {
					return err
				}
				shares, err := s.chain.Shares().BalanceOf(cmd.Context(), account)
				if err != nil {
					return err
				}
				_, err = fmt.Fprintf(cmd.OutOrStdout(), "%s\tbase %s\tshares %s\n", account, base, shares)
				return err
			})
		},
	}
}

func newAccountListCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List accounts holding base asset or receipt shares",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return app.view(cmd.Context(), func(s *session) error {
				base, shares := s.chain.Holders()
				out := cmd.OutOrStdout()
				for _, account := range base {
					balance, err := s.chain.Base().BalanceOf(cmd.Context(), account)
					if err != nil {
						return err
					}
					_, _ = fmt.Fprintf(out, "base\t%s\t%s\n", account, balance)
				}
				for _, account := range shares {
					balance, err := s.chain.Shares().BalanceOf(cmd.Context(), account)
					if err != nil {
						return err
					}
					_, _ = fmt.Fprintf(out, "shares\t%s\t%s\n", account, balance)
				}
				return nil
			})
		},
	}
}

func newTokenCmd(app *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "token",
		Short: "Manage receipt share allowances",
	}

	cmd.AddCommand(
		&cobra.Command{
			Use:   "approve <amount>",
			Short: "Allow the vault to take up to amount of the caller's shares",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				caller, err := app.caller()
				if err != nil {
					return err
				}
				amount, err := parseAmountArg("amount", args[0])
				if err != nil {
					return err
				}

				return app.update(cmd.Context(), func(s *session) error {
					s.chain.Approve(caller, app.vaultAccount(), amount)
					_, err := fmt.Fprintf(cmd.OutOrStdout(), "%s approved %s to move %s shares\n", caller, app.vaultAccount(), amount)
					return err
				})
			},
		},
		&cobra.Command{
			Use:   "allowance [owner]",
			Short: "Show how many shares the vault may take (default: caller)",
			Args:  cobra.MaximumNArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				owner, err := accountArg(args, app.caller)
				if err != nil {
					return err
				}

				return app.view(cmd.Context(), func(s *session) error {
					_, err := fmt.Fprintln(cmd.OutOrStdout(), s.chain.Allowance(owner, app.vaultAccount()))
					return err
				})
			},
		},
	)

	return cmd
}

func newConvertCmd(app *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "convert",
		Short: "Price amounts at the current exchange rate",
	}

	cmd.AddCommand(
		&cobra.Command{
			Use:   "to-shares <amount>",
			Short: "Shares minted for a base asset amount",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				amount, err := parseAmountArg("amount", args[0])
				if err != nil {
					return err
				}
				return app.view(cmd.Context(), func(s *session) error {
					shares, err := s.service.SharesFromBase(cmd.Context(), amount)
					if err != nil {
						return err
					}
					_, err = fmt.Fprintln(cmd.OutOrStdout(), shares)
					return err
				})
			},
		},
		&cobra.Command{
			Use:   "to-base <shares>",
			Short: "Base asset value of a share amount",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				shares, err := parseAmountArg("shares", args[0])
				if err != nil {
					return err
				}
				return app.view(cmd.Context(), func(s *session) error {
					value, err := s.service.BaseFromShares(cmd.Context(), shares)
					if err != nil {
						return err
					}
					_, err = fmt.Fprintln(cmd.OutOrStdout(), value)
					return err
				})
			},
		},
	)

	return cmd
}
