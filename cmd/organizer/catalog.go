package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/thebearwithabite/ai-file-organizer-sub001/internal/cli"
)

func catalogCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "catalog",
		Short: "Show the active rule catalog",
		Long: `Print the categories, keywords, patterns and extensions the scorer
uses. Pass --catalog to validate and show a custom catalog file.`,
		RunE: runCatalog,
	}
}

func runCatalog(_ *cobra.Command, _ []string) error {
	cat, err := loadCatalog()
	if err != nil {
		return err
	}

	var b strings.Builder
	b.WriteString(fmt.Sprintf("Version %d, %d categories\n", cat.Version, len(cat.Categories)))

	for _, c := range cat.Categories {
		b.WriteString(fmt.Sprintf("\n%s\n", cli.TitleStyle.Render(c.ID)))
		b.WriteString(fmt.Sprintf("  keywords:   %d (%s ...)\n", len(c.Keywords), strings.Join(firstN(c.Keywords, 4), ", ")))
		if len(c.Patterns) > 0 {
			b.WriteString(fmt.Sprintf("  patterns:   %d\n", len(c.Patterns)))
		}
		if len(c.Extensions) > 0 {
			b.WriteString(fmt.Sprintf("  extensions: %s\n", strings.Join(c.Extensions, " ")))
		}
	}

	if len(cat.Precedence) > 0 {
		b.WriteString(fmt.Sprintf("\n%d precedence rules, %d special patterns\n", len(cat.Precedence), len(cat.Specials)))
	}

	fmt.Println(cli.RenderBox("Rule catalog", b.String()))
	return nil
}

func firstN(items []string, n int) []string {
	if len(items) <= n {
		return items
	}
	return items[:n]
}
