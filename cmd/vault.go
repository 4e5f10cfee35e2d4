package cmd

import (
	"fmt"
	"time"

	"github.com/bnema/stakevault/internal/application"
	"github.com/bnema/stakevault/internal/domain"
	"github.com/spf13/cobra"
)

func newInitCmd(app *app) *cobra.Command {
	var (
		era          time.Duration
		cooldown     time.Duration
		fee          uint16
		incentive    uint16
		minimumStake uint64
	)

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Initialize the vault with the caller as owner",
		Long:  "Initialize the vault. Parameters not given as flags come from config (vault.*) or the built-in defaults.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			owner, err := app.caller()
			if err != nil {
				return err
			}
			params, err := app.defaultParams()
			if err != nil {
				return err
			}

			flags := cmd.Flags()
			if flags.Changed("era") {
				params.Era = era
			}
			if flags.Changed("cooldown") {
				params.CooldownPeriod = cooldown
			}
			if flags.Changed("fee") {
				params.FeePercentage = domain.Bips(fee)
			}
			if flags.Changed("incentive") {
				params.IncentivePercentage = domain.Bips(incentive)
			}
			if flags.Changed("minimum-stake") {
				params.MinimumStake = domain.Amount(minimumStake)
			}

			return app.update(cmd.Context(), func(s *session) error {
				state, err := s.service.Initialize(cmd.Context(), application.InitializeCommand{Owner: owner, Params: params})
				if err != nil {
					return err
				}
				_, err = fmt.Fprintf(cmd.OutOrStdout(), "initialized vault %s owned by %s (era %s, cooldown %s)\n",
					s.service.Vault(), state.Roles.Owner, state.Pool.Era, state.Pool.CooldownPeriod)
				return err
			})
		},
	}

	cmd.Flags().DurationVar(&era, "era", 0, "Batch window length")
	cmd.Flags().DurationVar(&cooldown, "cooldown", 0, "Wait between batch send and redemption")
	cmd.Flags().Uint16Var(&fee, "fee", 0, "Annual protocol fee in bips")
	cmd.Flags().Uint16Var(&incentive, "incentive", 0, "Compound incentive in bips")
	cmd.Flags().Uint64Var(&minimumStake, "minimum-stake", 0, "Minimum stake amount")

	return cmd
}

func newStakeCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "stake <amount>",
		Short: "Stake base asset and receive receipt shares",
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
				result, err := s.service.Stake(cmd.Context(), caller, amount)
				if err != nil {
					return err
				}
				_, err = fmt.Fprintf(cmd.OutOrStdout(), "staked %s: minted %s shares to %s\n", amount, result.Shares, caller)
				return err
			})
		},
	}
}

func newRedeemCmd(app *app) *cobra.Command {
	var withdraw bool

	cmd := &cobra.Command{
		Use:   "redeem <user> <unlock-id>",
		Short: "Pay out a finalized unlock request after cooldown",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			user := domain.AccountID(args[0])
			id, err := parseUintArg("unlock id", args[1])
			if err != nil {
				return err
			}

			return app.update(cmd.Context(), func(s *session) error {
				redeem := s.service.Redeem
				if withdraw {
					redeem = s.service.RedeemWithWithdraw
				}

				result, err := redeem(cmd.Context(), user, domain.UnlockID(id))
				if err != nil {
					return err
				}
				out := cmd.OutOrStdout()
				if withdraw {
					if _, err := fmt.Fprintf(out, "withdrew %s unbonded\n", result.Withdrawn); err != nil {
						return err
					}
				}
				_, err = fmt.Fprintf(out, "redeemed unlock %d from batch %d: paid %s to %s\n", id, result.BatchID, result.Payout, user)
				return err
			})
		},
	}

	cmd.Flags().BoolVar(&withdraw, "withdraw", false, "Withdraw matured unbonding funds before paying out")
	return cmd
}

func newWithdrawUnbondedCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "withdraw-unbonded",
		Short: "Pull matured unbonding funds from all agents into the vault",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return app.update(cmd.Context(), func(s *session) error {
				withdrawn, err := s.service.DelegateWithdrawUnbonded(cmd.Context())
				if err != nil {
					return err
				}
				_, err = fmt.Fprintf(cmd.OutOrStdout(), "withdrew %s unbonded\n", withdrawn)
				return err
			})
		},
	}
}

func newCompoundCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "compound",
		Short: "Restake agent rewards and pay the caller's incentive",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			caller, err := app.caller()
			if err != nil {
				return err
			}

			return app.update(cmd.Context(), func(s *session) error {
				result, err := s.service.Compound(cmd.Context(), caller)
				if err != nil {
					return err
				}
				_, err = fmt.Fprintf(cmd.OutOrStdout(), "compounded %s, incentive %s paid to %s\n", result.Compounded, result.Incentive, caller)
				return err
			})
		},
	}
}

func newFeesCmd(app *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "fees",
		Short: "Manage accrued protocol fees",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "withdraw",
		Short: "Mint accrued fee shares to the owner",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			caller, err := app.caller()
			if err != nil {
				return err
			}

			return app.update(cmd.Context(), func(s *session) error {
				shares, err := s.service.WithdrawFees(cmd.Context(), caller)
				if err != nil {
					return err
				}
				_, err = fmt.Fprintf(cmd.OutOrStdout(), "withdrew %s fee shares to %s\n", shares, caller)
				return err
			})
		},
	})

	return cmd
}
