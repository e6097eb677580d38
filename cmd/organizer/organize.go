package main

import (
	"fmt"
	"io/fs"
	"path/filepath"

	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/thebearwithabite/ai-file-organizer-sub001/internal/cli"
	"github.com/thebearwithabite/ai-file-organizer-sub001/internal/engine"
	"github.com/thebearwithabite/ai-file-organizer-sub001/internal/extract"
	"github.com/thebearwithabite/ai-file-organizer-sub001/internal/model"
)

func organizeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "organize <directory>",
		Short: "Classify a whole directory in bulk",
		Long: `Classify every file under a directory without asking questions.
Files the engine cannot place confidently are flagged for manual
review instead of interrupting the run.`,
		Args: cobra.ExactArgs(1),
		RunE: runOrganize,
	}

	cmd.Flags().Int("workers", 4, "concurrent classification workers")

	_ = viper.BindPFlag("organize.workers", cmd.Flags().Lookup("workers"))

	return cmd
}

func runOrganize(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	root := args[0]

	store, err := openStorage(ctx)
	if err != nil {
		return err
	}
	defer func() { _ = store.Close() }()

	cat, err := loadCatalog()
	if err != nil {
		return err
	}

	var paths []string
	err = filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() {
			paths = append(paths, path)
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("failed to walk %s: %w", root, err)
	}

	if len(paths) == 0 {
		fmt.Println(cli.FormatWarning("No files found"))
		return nil
	}

	eng := engine.New(cat, store, extract.NewLocalSource(0), nil)
	workers := viper.GetInt("organize.workers")

	bar := progressbar.Default(int64(len(paths)), "classifying")

	results := eng.ClassifyBatch(ctx, paths, workers)

	byCategory := make(map[string]int)
	review := 0
	failed := 0
	for _, r := range results {
		_ = bar.Add(1)
		switch {
		case r.Err != nil:
			failed++
		case r.Result.Outcome == model.OutcomeManualReview:
			review++
		default:
			byCategory[r.Result.Category]++
		}
	}
	_ = bar.Finish()

	var summary string
	for category, count := range byCategory {
		summary += fmt.Sprintf("%-24s %d\n", category, count)
	}
	summary += fmt.Sprintf("%-24s %d\n", "needs review", review)
	if failed > 0 {
		summary += fmt.Sprintf("%-24s %d\n", "failed", failed)
	}
	summary += fmt.Sprintf("\n%d files classified", len(paths))

	fmt.Println(cli.RenderBox("Organize summary", summary))

	return ctx.Err()
}
