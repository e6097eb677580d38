package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/thebearwithabite/ai-file-organizer-sub001/internal/cli"
	"github.com/thebearwithabite/ai-file-organizer-sub001/internal/engine"
	"github.com/thebearwithabite/ai-file-organizer-sub001/internal/extract"
	"github.com/thebearwithabite/ai-file-organizer-sub001/internal/tui"
)

func classifyCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "classify [files...]",
		Short: "Classify files interactively",
		Long: `Classify one or more files, asking a bounded number of questions
when confidence is low. Answers are remembered, so similar files
classify automatically next time.`,
		Args: cobra.MinimumNArgs(1),
		RunE: runClassify,
	}

	cmd.Flags().Float64("target", 85, "confidence target (0-100)")
	cmd.Flags().Int("max-questions", 3, "maximum questions per file")
	cmd.Flags().Bool("tui", false, "use the full-screen question picker")

	_ = viper.BindPFlag("classify.target", cmd.Flags().Lookup("target"))
	_ = viper.BindPFlag("classify.max_questions", cmd.Flags().Lookup("max-questions"))
	_ = viper.BindPFlag("classify.tui", cmd.Flags().Lookup("tui"))

	return cmd
}

func runClassify(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	store, err := openStorage(ctx)
	if err != nil {
		return err
	}
	defer func() { _ = store.Close() }()

	cat, err := loadCatalog()
	if err != nil {
		return err
	}

	var answerer engine.Answerer
	if viper.GetBool("classify.tui") {
		answerer = tui.NewAnswerer()
	} else {
		answerer = cli.NewAnswerer(nil, nil)
	}

	config := engine.DefaultConfig()
	config.TargetConfidence = viper.GetFloat64("classify.target")
	config.MaxQuestions = viper.GetInt("classify.max_questions")

	eng := engine.NewWithConfig(cat, store, extract.NewLocalSource(0), answerer, config)

	for _, path := range args {
		result, err := eng.ClassifyFile(ctx, path)
		if err != nil {
			fmt.Println(cli.FormatError(fmt.Sprintf("%s: %v", path, err)))
			continue
		}

		fmt.Println(cli.FormatResult(result))

		if ctx.Err() != nil {
			return ctx.Err()
		}
	}

	return nil
}
