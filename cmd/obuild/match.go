// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/ivg/ocamlbuild/internal/issue"
	"github.com/ivg/ocamlbuild/pkg/glob"

	"github.com/spf13/cobra"
)

var (
	matchQuiet bool
	matchDir   string

	matchCmd = &cobra.Command{
		Use:   "match <pattern> <name>...",
		Short: "Test names against a boolean glob pattern",
		Long: `Test each name against a boolean glob pattern and report the result.

Patterns combine quoted literals ("text") and globs (<*.ml>) with the
operators | (or), & (and), ~ (not), and parentheses. The exit status is
0 when every name matches and 1 otherwise, so the command composes with
shell conditionals.

Examples:
  obuild match '<*.ml> | <*.mli>' main.ml util.mli
  obuild match '~<*_test.go>' handler.go
  obuild match --dir src '<*.ml>' main.ml`,
		Args: cobra.MinimumNArgs(2),
		RunE: runMatch,
	}
)

func init() {
	matchCmd.Flags().BoolVarP(&matchQuiet, "quiet", "q", false, "suppress per-name output, report via exit status only")
	matchCmd.Flags().StringVar(&matchDir, "dir", "", "resolve bare globs relative to this directory")
}

func runMatch(cmd *cobra.Command, args []string) error {
	pattern, names := args[0], args[1:]

	g, err := parsePattern(pattern)
	if err != nil {
		rendered, _ := issue.Get(issue.PatternParseErrorId).Render("dark")
		fmt.Fprint(os.Stderr, rendered)

		var parseErr *glob.ParseError
		if errors.As(err, &parseErr) {
			return fmt.Errorf("%s at position %d: %s", ErrorStyle.Render("invalid pattern"), parseErr.Pos, parseErr.Msg)
		}
		return err
	}

	allMatched := true
	for _, name := range names {
		matched := g.Eval(name)
		if !matched {
			allMatched = false
		}
		if matchQuiet {
			continue
		}
		if matched {
			fmt.Printf("%s %s\n", SuccessStyle.Render("✓"), name)
		} else {
			fmt.Printf("%s %s\n", ErrorStyle.Render("✗"), name)
		}
	}

	if !allMatched {
		return &ExitError{Code: 1}
	}
	return nil
}

func parsePattern(pattern string) (*glob.Globber, error) {
	if matchDir != "" {
		return glob.ParseInDir(pattern, matchDir)
	}
	return glob.Parse(pattern)
}
