package cmd

import (
	"fmt"

	"github.com/bnema/stakevault/internal/domain"
	"github.com/spf13/cobra"
)

func newAgentCmd(app *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "agent",
		Short: "Manage delegation agents on the local chain",
	}

	cmd.AddCommand(
		newAgentAddCmd(app),
		newAgentUpdateCmd(app),
		newAgentRemoveCmd(app),
		newAgentRewardCmd(app),
		newAgentListCmd(app),
	)

	return cmd
}

func newAgentAddCmd(app *app) *cobra.Command {
	var weight uint64

	cmd := &cobra.Command{
		Use:   "add <agent>",
		Short: "Register an agent with a delegation weight",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			account := domain.AccountID(args[0])
			return app.update(cmd.Context(), func(s *session) error {
				if err := s.chain.AddAgent(account, weight); err != nil {
					return err
				}
				_, err := fmt.Fprintf(cmd.OutOrStdout(), "agent %s registered with weight %d\n", account, weight)
				return err
			})
		},
	}

	cmd.Flags().Uint64Var(&weight, "weight", 1, "Delegation weight")
	return cmd
}

func newAgentUpdateCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "update <agent> <weight>",
		Short: "Change an agent's delegation weight",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			account := domain.AccountID(args[0])
			weight, err := parseUintArg("weight", args[1])
			if err != nil {
				return err
			}

			return app.update(cmd.Context(), func(s *session) error {
				if err := s.chain.UpdateAgent(account, weight); err != nil {
					return err
				}
				_, err := fmt.Fprintf(cmd.OutOrStdout(), "agent %s weight set to %d\n", account, weight)
				return err
			})
		},
	}
}

func newAgentRemoveCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "remove <agent>",
		Short: "Unregister an agent holding no stake",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			account := domain.AccountID(args[0])
			return app.update(cmd.Context(), func(s *session) error {
				if err := s.chain.RemoveAgent(account); err != nil {
					return err
				}
				_, err := fmt.Fprintf(cmd.OutOrStdout(), "agent %s removed\n", account)
				return err
			})
		},
	}
}

func newAgentRewardCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "reward <agent> <amount>",
		Short: "Accrue validator rewards to an agent for the next compound",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			account := domain.AccountID(args[0])
			amount, err := parseAmountArg("amount", args[1])
			if err != nil {
				return err
			}

			return app.update(cmd.Context(), func(s *session) error {
				if err := s.chain.Reward(account, amount); err != nil {
					return err
				}
				_, err := fmt.Fprintf(cmd.OutOrStdout(), "agent %s rewarded %s\n", account, amount)
				return err
			})
		},
	}
}

func newAgentListCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List agents in registration order",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return app.view(cmd.Context(), func(s *session) error {
				agents := s.chain.AgentStates()
				if len(agents) == 0 {
					_, err := fmt.Fprintln(cmd.OutOrStdout(), "no agents registered")
					return err
				}
				for _, agent := range agents {
					var unbonding domain.Amount
					for _, chunk := range agent.Unbonding {
						var err error
						if unbonding, err = domain.AddAmounts(unbonding, chunk.Amount); err != nil {
							return err
						}
					}
					_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s\tweight %d\tstaked %s\trewards %s\tunbonding %s\n",
						agent.Account, agent.Weight, agent.Staked, agent.Rewards, unbonding)
				}
				return nil
			})
		},
	}
}

func newImbalancesCmd(app *app) *cobra.Command {
	var pooled string

	cmd := &cobra.Command{
		Use:   "imbalances",
		Short: "Show each agent's stake against its weighted target",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			var totalPooled *domain.Amount
			if cmd.Flags().Changed("pooled") {
				amount, err := parseAmountArg("pooled", pooled)
				if err != nil {
					return err
				}
				totalPooled = &amount
			}

			return app.view(cmd.Context(), func(s *session) error {
				imbalances, err := s.service.WeightImbalances(cmd.Context(), totalPooled)
				if err != nil {
					return err
				}
				out := cmd.OutOrStdout()
				_, _ = fmt.Fprintf(out, "total weight %d, total pooled %s\n", imbalances.TotalWeight, imbalances.TotalPooled)
				for _, agent := range imbalances.Agents {
					_, _ = fmt.Fprintf(out, "%s\tweight %d\tstaked %s\ttarget %s\timbalance %+d\n",
						agent.Account, agent.Weight, agent.Staked, agent.Target, agent.Imbalance)
				}
				return nil
			})
		},
	}

	cmd.Flags().StringVar(&pooled, "pooled", "", "Price targets against this total instead of the vault's pooled value")
	return cmd
}
