package cmd

import "github.com/spf13/cobra"

func Execute() error {
	return newRootCmd().Execute()
}

func newRootCmd() *cobra.Command {
	opts := &globalOptions{}

	rootCmd := &cobra.Command{
		Use:           "sv",
		Short:         "Stake Vault CLI (sv): liquid staking vault over a local chain",
		Long:          "sv runs a liquid staking vault: stake base asset for receipt shares, queue unlocks into batches, redeem after cooldown, and administer fees and delegation agents from the terminal.",
		SilenceUsage:  true,
		SilenceErrors: false,
	}
	rootCmd.PersistentFlags().StringVar(&opts.caller, "as", "", "Account performing the command (or SV_CALLER)")
	rootCmd.PersistentFlags().StringVar(&opts.at, "at", "", "Override the clock with an RFC3339 timestamp")

	app, err := wireApp(opts)
	if err != nil {
		rootCmd.RunE = func(_ *cobra.Command, _ []string) error {
			return err
		}
		return rootCmd
	}

	rootCmd.AddCommand(
		newVersionCmd(),
		newInitCmd(app),
		newStakeCmd(app),
		newUnlockCmd(app),
		newBatchCmd(app),
		newRedeemCmd(app),
		newWithdrawUnbondedCmd(app),
		newCompoundCmd(app),
		newFeesCmd(app),
		newAdminCmd(app),
		newAgentCmd(app),
		newImbalancesCmd(app),
		newAccountCmd(app),
		newTokenCmd(app),
		newConvertCmd(app),
		newStatusCmd(app),
		newMetricsCmd(app),
	)

	return rootCmd
}
