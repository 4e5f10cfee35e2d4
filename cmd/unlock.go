package cmd

import (
	"fmt"
	"time"

	"github.com/bnema/stakevault/internal/application"
	"github.com/bnema/stakevault/internal/domain"
	"github.com/spf13/cobra"
)

func newUnlockCmd(app *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "unlock",
		Short: "Queue, cancel and list unlock requests",
	}

	cmd.AddCommand(
		newUnlockRequestCmd(app),
		newUnlockCancelCmd(app),
		newUnlockListCmd(app),
	)

	return cmd
}

func newUnlockRequestCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "request <shares>",
		Short: "Place receipt shares into the current batch window",
		Long:  "Place receipt shares into the current batch window. The vault must be approved to move the shares first (sv token approve).",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			caller, err := app.caller()
			if err != nil {
				return err
			}
			shares, err := parseAmountArg("shares", args[0])
			if err != nil {
				return err
			}

			return app.update(cmd.Context(), func(s *session) error {
				result, err := s.service.RequestUnlock(cmd.Context(), caller, shares)
				if err != nil {
					return err
				}
				_, err = fmt.Fprintf(cmd.OutOrStdout(), "unlock %d: %s shares queued in batch %d\n", result.UnlockID, shares, result.BatchID)
				return err
			})
		},
	}
}

func newUnlockCancelCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "cancel <unlock-id>",
		Short: "Cancel an unlock request while its batch window is open",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			caller, err := app.caller()
			if err != nil {
				return err
			}
			id, err := parseUintArg("unlock id", args[0])
			if err != nil {
				return err
			}

			return app.update(cmd.Context(), func(s *session) error {
				if err := s.service.CancelUnlockRequest(cmd.Context(), caller, domain.UnlockID(id)); err != nil {
					return err
				}
				_, err := fmt.Fprintf(cmd.OutOrStdout(), "canceled unlock %d\n", id)
				return err
			})
		},
	}
}

func newUnlockListCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "list [user]",
		Short: "List open unlock requests of a user (default: caller)",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			user, err := accountArg(args, app.caller)
			if err != nil {
				return err
			}

			return app.view(cmd.Context(), func(s *session) error {
				requests, err := s.service.UnlockRequests(cmd.Context(), user)
				if err != nil {
					return err
				}
				if len(requests) == 0 {
					_, err := fmt.Fprintf(cmd.OutOrStdout(), "no unlock requests for %s\n", user)
					return err
				}
				for _, request := range requests {
					_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%d\tbatch %d\t%s shares\t%s\n",
						request.ID, request.BatchID, request.ShareAmount, request.CreationTime.UTC().Format(time.RFC3339))
				}
				return nil
			})
		},
	}
}

func newBatchCmd(app *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "batch",
		Short: "Inspect and send unlock batches",
	}

	cmd.AddCommand(
		newBatchSendCmd(app),
		newBatchShowCmd(app),
		newBatchCurrentCmd(app),
	)

	return cmd
}

func newBatchSendCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "send <batch-id>...",
		Short: "Finalize closed batches and start unbonding their value",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ids, err := parseBatchIDs(args)
			if err != nil {
				return err
			}

			return app.update(cmd.Context(), func(s *session) error {
				result, err := s.service.SendBatchUnlockRequests(cmd.Context(), ids)
				if err != nil {
					return err
				}
				out := cmd.OutOrStdout()
				for _, batch := range result.Batches {
					_, _ = fmt.Fprintf(out, "batch %d: %s shares for %s\n", batch.ID, batch.Shares, batch.Value)
				}
				_, err = fmt.Fprintf(out, "sent %d batch(es): %s shares burned, %s unbonding\n", len(result.Batches), result.TotalShares, result.TotalValue)
				return err
			})
		},
	}
}

func newBatchShowCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "show <batch-id>",
		Short: "Show one batch",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseUintArg("batch id", args[0])
			if err != nil {
				return err
			}

			return app.view(cmd.Context(), func(s *session) error {
				info, err := s.service.BatchInfo(cmd.Context(), domain.BatchID(id))
				if err != nil {
					return err
				}
				_, err = fmt.Fprintln(cmd.OutOrStdout(), describeBatch(info))
				return err
			})
		},
	}
}

func newBatchCurrentCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "current",
		Short: "Print the id of the batch accepting requests now",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return app.view(cmd.Context(), func(s *session) error {
				id, err := s.service.CurrentBatchID(cmd.Context())
				if err != nil {
					return err
				}
				_, err = fmt.Fprintln(cmd.OutOrStdout(), id)
				return err
			})
		},
	}
}

func describeBatch(info application.BatchInfo) string {
	if info.ValueAtRedemption == nil || info.RedemptionTime == nil {
		return fmt.Sprintf("batch %d: %s shares, not sent", info.ID, info.TotalShares)
	}
	return fmt.Sprintf("batch %d: %s shares for %s, sent %s",
		info.ID, info.TotalShares, *info.ValueAtRedemption, info.RedemptionTime.UTC().Format(time.RFC3339))
}
