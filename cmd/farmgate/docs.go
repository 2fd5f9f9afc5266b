package main

import (
	_ "embed"
	"fmt"

	"github.com/charmbracelet/glamour"
	"github.com/spf13/cobra"

	"github.com/fieldworks/farmgate/pkg/report"
)

//go:embed docs/intake-workflow.md
var workflowDoc string

func newDocsCmd() *cobra.Command {
	var plain bool

	cmd := &cobra.Command{
		Use:   "docs",
		Short: "Explain the intake workflow",
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()

			if plain || !report.StylingEnabled(out) {
				fmt.Fprint(out, workflowDoc)
				return nil
			}

			fmt.Fprint(out, renderMarkdown(workflowDoc))
			return nil
		},
	}

	cmd.Flags().BoolVar(&plain, "plain", false, "Print raw markdown without terminal rendering")
	return cmd
}

// renderMarkdown converts markdown to terminal output, falling back to the
// raw content on any rendering error.
func renderMarkdown(content string) string {
	renderer, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(100),
	)
	if err != nil {
		return content
	}

	rendered, err := renderer.Render(content)
	if err != nil {
		return content
	}
	return rendered
}
