package main

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"alfredoptarigan/interview-generator/internal/repositories"
	"alfredoptarigan/interview-generator/internal/services"
)

var grantCreditsCmd = &cobra.Command{
	Use:   "grant-credits",
	Short: "Add generation credits to an owner's balance",
	RunE: func(cmd *cobra.Command, args []string) error {
		ownerFlag, _ := cmd.Flags().GetString("owner")
		amount, _ := cmd.Flags().GetInt("amount")

		ownerID, err := uuid.Parse(ownerFlag)
		if err != nil {
			return fmt.Errorf("invalid --owner: %w", err)
		}

		e, err := bootstrap()
		if err != nil {
			return err
		}

		credits := services.NewCreditService(repositories.NewCreditRepository(e.db), e.log)
		balance, err := credits.GrantCredits(cmd.Context(), ownerID, amount)
		if err != nil {
			return err
		}

		fmt.Fprintf(cmd.OutOrStdout(), "✅ %s now has %d credits (%d used)\n", ownerID, balance.Remaining, balance.TotalUsed)
		return nil
	},
}

func init() {
	grantCreditsCmd.Flags().String("owner", "", "Owner ID (UUID)")
	grantCreditsCmd.Flags().Int("amount", 0, "Number of credits to add")
	_ = grantCreditsCmd.MarkFlagRequired("owner")
	_ = grantCreditsCmd.MarkFlagRequired("amount")
}
