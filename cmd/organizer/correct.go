package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/thebearwithabite/ai-file-organizer-sub001/internal/cli"
	"github.com/thebearwithabite/ai-file-organizer-sub001/internal/learning"
)

func correctCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "correct <file>",
		Short: "Record a category correction",
		Long: `Record that a file was classified wrongly. Corrections feed the
accuracy metrics shown by 'organizer stats'.`,
		Args: cobra.ExactArgs(1),
		RunE: runCorrect,
	}

	cmd.Flags().String("from", "", "category the file was given")
	cmd.Flags().String("to", "", "category the file should have")
	cmd.Flags().Float64("confidence", 0, "confidence of the original classification")
	cmd.Flags().String("reason", "", "optional note about why")
	_ = cmd.MarkFlagRequired("to")

	return cmd
}

func runCorrect(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	from, _ := cmd.Flags().GetString("from")
	to, _ := cmd.Flags().GetString("to")
	confidence, _ := cmd.Flags().GetFloat64("confidence")
	reason, _ := cmd.Flags().GetString("reason")

	store, err := openStorage(ctx)
	if err != nil {
		return err
	}
	defer func() { _ = store.Close() }()

	tracker := learning.NewTracker(store)
	if err := tracker.RecordCorrection(ctx, args[0], from, to, confidence, reason); err != nil {
		return fmt.Errorf("failed to record correction: %w", err)
	}

	fmt.Println(cli.FormatSuccess(fmt.Sprintf("Recorded: %s → %s", args[0], to)))
	return nil
}
