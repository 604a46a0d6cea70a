package cli

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"github.com/yaklabco/goweave/pkg/analyzer"
	"github.com/yaklabco/goweave/pkg/csslint"
	"github.com/yaklabco/goweave/pkg/langdetect"
)

func newClassesCommand() *cobra.Command {
	var reserved bool

	cmd := &cobra.Command{
		Use:   "classes [file]",
		Short: "Print the CSS class inventory of a buffer",
		Long: `Print the CSS class names a buffer defines, one per line.

For Markdown files the classes come from embedded <style> blocks; for
CSS files from the stylesheet's selectors. Reads the named file, or
standard input when no file (or "-") is given. This is the inventory
the class usage check validates against.

Examples:
  goweave classes doc.md
  goweave classes styles.css
  goweave classes --reserved doc.md`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runClasses(cmd, args, reserved)
		},
	}

	cmd.Flags().BoolVar(&reserved, "reserved", false, "include the framework-reserved class set")

	return cmd
}

func runClasses(cmd *cobra.Command, args []string, reserved bool) error {
	path, text, err := readBuffer(cmd, args)
	if err != nil {
		return err
	}

	var names []string
	if langdetect.DetectPath(path, []byte(text)) == langdetect.KindCSS {
		names = csslint.Classes(text)
	} else {
		names = analyzer.ExtractClasses(text)
	}

	if reserved {
		seen := make(map[string]struct{}, len(names))
		for _, name := range names {
			seen[name] = struct{}{}
		}
		var extra []string
		for name := range analyzer.DefaultReservedClasses() {
			if _, ok := seen[name]; !ok {
				extra = append(extra, name)
			}
		}
		sort.Strings(extra)
		names = append(names, extra...)
	}

	out := cmd.OutOrStdout()
	for _, name := range names {
		fmt.Fprintln(out, name)
	}
	return nil
}
