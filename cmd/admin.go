package cmd

import (
	"context"
	"fmt"

	"github.com/bnema/stakevault/internal/domain"
	"github.com/spf13/cobra"
)

func newAdminCmd(app *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "admin",
		Short: "Adjust vault parameters and transfer roles",
	}

	cmd.AddCommand(
		newAdminBipsCmd(app, "fee <bips>", "Set the annual protocol fee (adjust_fee role)", "fee",
			func(ctx context.Context, s *session, caller domain.AccountID, value domain.Bips) error {
				return s.service.AdjustFee(ctx, caller, value)
			}),
		newAdminBipsCmd(app, "incentive <bips>", "Set the compound incentive (adjust_fee role)", "incentive",
			func(ctx context.Context, s *session, caller domain.AccountID, value domain.Bips) error {
				return s.service.AdjustIncentive(ctx, caller, value)
			}),
		newAdminMinimumStakeCmd(app),
		newAdminRoleCmd(app, "owner <account>", "Transfer vault ownership (owner)", domain.RoleOwner,
			func(ctx context.Context, s *session, caller, next domain.AccountID) error {
				return s.service.TransferRoleOwner(ctx, caller, next)
			}),
		newAdminRoleCmd(app, "fee-role <account>", "Transfer the adjust_fee role (adjust_fee_admin)", domain.RoleAdjustFee,
			func(ctx context.Context, s *session, caller, next domain.AccountID) error {
				return s.service.TransferRoleAdjustFee(ctx, caller, next)
			}),
		newAdminRoleCmd(app, "fee-admin <account>", "Transfer the adjust_fee_admin role (adjust_fee_admin)", domain.RoleAdjustFeeAdmin,
			func(ctx context.Context, s *session, caller, next domain.AccountID) error {
				return s.service.TransferRoleAdjustFeeAdmin(ctx, caller, next)
			}),
	)

	return cmd
}

type bipsAdjustment func(ctx context.Context, s *session, caller domain.AccountID, value domain.Bips) error

func newAdminBipsCmd(app *app, use, short, name string, adjust bipsAdjustment) *cobra.Command {
	return &cobra.Command{
		Use:   use,
		Short: short,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			caller, err := app.caller()
			if err != nil {
				return err
			}
			value, err := parseBipsArg(name, args[0])
			if err != nil {
				return err
			}

			return app.update(cmd.Context(), func(s *session) error {
				if err := adjust(cmd.Context(), s, caller, value); err != nil {
					return err
				}
				_, err := fmt.Fprintf(cmd.OutOrStdout(), "%s set to %d bips\n", name, value)
				return err
			})
		},
	}
}

func newAdminMinimumStakeCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "minimum-stake <amount>",
		Short: "Set the minimum stake (owner)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			caller, err := app.caller()
			if err != nil {
				return err
			}
			minimum, err := parseAmountArg("minimum stake", args[0])
			if err != nil {
				return err
			}

			return app.update(cmd.Context(), func(s *session) error {
				if err := s.service.AdjustMinimumStake(cmd.Context(), caller, minimum); err != nil {
					return err
				}
				_, err := fmt.Fprintf(cmd.OutOrStdout(), "minimum stake set to %s\n", minimum)
				return err
			})
		},
	}
}

type roleTransfer func(ctx context.Context, s *session, caller, next domain.AccountID) error

func newAdminRoleCmd(app *app, use, short string, role domain.Role, transfer roleTransfer) *cobra.Command {
	return &cobra.Command{
		Use:   use,
		Short: short,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			caller, err := app.caller()
			if err != nil {
				return err
			}
			next := domain.AccountID(args[0])

			return app.update(cmd.Context(), func(s *session) error {
				if err := transfer(cmd.Context(), s, caller, next); err != nil {
					return err
				}
				_, err := fmt.Fprintf(cmd.OutOrStdout(), "%s role transferred to %s\n", role, next)
				return err
			})
		},
	}
}
