package main

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"pyfieldlint/internal/diagfmt"
	"pyfieldlint/internal/driver"
)

var classesCmd = &cobra.Command{
	Use:   "classes [flags] file.py",
	Short: "Show the classifier verdict for every class in a file",
	Long: `Classes parses one Python file and prints, for each class definition,
whether the model classifier accepted it and the rule that decided.`,
	Args: cobra.ExactArgs(1),
	RunE: runClasses,
}

func runClasses(cmd *cobra.Command, args []string) error {
	maxDiagnostics, err := cmd.Root().PersistentFlags().GetInt("max-diagnostics")
	if err != nil {
		return fmt.Errorf("failed to get max-diagnostics flag: %w", err)
	}

	res, verdicts, err := driver.ExplainClasses(args[0], maxDiagnostics)
	if err != nil {
		return err
	}

	colored := useColor(cmd, os.Stdout)
	accept := color.New(color.FgGreen, color.Bold)
	reject := color.New(color.FgRed)

	for _, v := range verdicts {
		start, _ := res.FileSet.Resolve(v.Facts.Span)
		verdict := "model"
		sprint := accept.Sprint
		if !v.Accepted {
			verdict = "skip"
			sprint = reject.Sprint
		}
		if !colored {
			sprint = fmt.Sprint
		}
		fmt.Fprintf(os.Stdout, "%s:%d:%d: %-5s %s (%s, %d fields)\n",
			res.File.Path, start.Line, start.Col,
			sprint(verdict), v.Facts.Name, v.Rule, len(v.Facts.Fields))
	}

	if res.Bag.HasErrors() || res.Bag.HasWarnings() {
		res.Bag.Sort()
		diagfmt.Pretty(os.Stderr, res.Bag, res.FileSet, diagfmt.PrettyOpts{
			Color: useColor(cmd, os.Stderr),
		})
	}
	return nil
}
