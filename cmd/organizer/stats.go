package main

import (
	"fmt"
	"sort"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/thebearwithabite/ai-file-organizer-sub001/internal/cli"
	"github.com/thebearwithabite/ai-file-organizer-sub001/internal/learning"
)

func statsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Show classification accuracy over time",
		RunE:  runStats,
	}

	cmd.Flags().Int("window", 30, "window in days")

	_ = viper.BindPFlag("stats.window", cmd.Flags().Lookup("window"))

	return cmd
}

func runStats(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()
	window := viper.GetInt("stats.window")

	store, err := openStorage(ctx)
	if err != nil {
		return err
	}
	defer func() { _ = store.Close() }()

	tracker := learning.NewTracker(store)

	report, err := tracker.Accuracy(ctx, window)
	if err != nil {
		return fmt.Errorf("failed to compute accuracy: %w", err)
	}

	var b strings.Builder
	b.WriteString(fmt.Sprintf("Classifications: %d\n", report.Classifications))
	b.WriteString(fmt.Sprintf("Corrections:     %d\n", report.Corrections))
	b.WriteString(fmt.Sprintf("Accuracy:        %.0f%%\n", report.AccuracyRate*100))
	b.WriteString(fmt.Sprintf("Avg confidence:  %.0f%%\n", report.AvgConfidence))

	if len(report.PerCategory) > 0 {
		b.WriteString("\nBy category:\n")
		categories := make([]string, 0, len(report.PerCategory))
		for c := range report.PerCategory {
			categories = append(categories, c)
		}
		sort.Strings(categories)
		for _, c := range categories {
			m := report.PerCategory[c]
			b.WriteString(fmt.Sprintf("  %-24s %3d classified, %d corrected\n", c, m.Classifications, m.Corrections))
		}
	}

	milestones, err := tracker.Milestones(ctx, window)
	if err != nil {
		return fmt.Errorf("failed to compute milestones: %w", err)
	}
	for _, m := range milestones {
		switch m.Kind {
		case "accuracy":
			b.WriteString("\n" + cli.FormatSuccess(fmt.Sprintf("Accuracy improved: %.0f%% → %.0f%%", m.Before*100, m.After*100)))
		case "confidence":
			b.WriteString("\n" + cli.FormatSuccess(fmt.Sprintf("Confidence improved: %.0f%% → %.0f%%", m.Before, m.After)))
		}
	}

	fmt.Println(cli.RenderBox(fmt.Sprintf("Last %d days", window), b.String()))

	return nil
}
