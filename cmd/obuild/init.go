// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/ivg/ocamlbuild/internal/toolfile"

	"github.com/spf13/cobra"
)

var (
	initForce bool

	// initCmd creates a new tool file
	initCmd = &cobra.Command{
		Use:   "init [filename]",
		Short: "Create a new tool file in the current directory",
		Long: `Create a new tool file in the current directory with example entries.

This command generates a starter obuild.toml with sample flag fragments
and virtual command declarations to help you get started quickly.`,
		Args: cobra.MaximumNArgs(1),
		RunE: runInit,
	}
)

func init() {
	initCmd.Flags().BoolVarP(&initForce, "force", "f", false, "overwrite existing tool file")
}

const starterToolfile = `# obuild tool file.
# [[flag]] entries inject args into tag placeholders when every tag is active.
# [virtual] entries map a virtual command to candidate executables, tried in order.

[[flag]]
tags = ["compile", "debug"]
args = ["-g"]

[[flag]]
tags = ["compile", "warn"]
args = ["-w", "+a"]

[virtual]
cc = ["clang", "gcc", "cc"]
`

func runInit(cmd *cobra.Command, args []string) error {
	filename := toolfile.DefaultFileName
	if len(args) > 0 {
		filename = args[0]
	}

	// Check if file exists
	if _, err := os.Stat(filename); err == nil && !initForce {
		return fmt.Errorf("file '%s' already exists. Use --force to overwrite", filename)
	}

	// Make sure the starter content stays parseable.
	if _, err := toolfile.Parse([]byte(starterToolfile), filename); err != nil {
		return fmt.Errorf("internal error: starter tool file is invalid: %w", err)
	}

	if err := os.WriteFile(filename, []byte(starterToolfile), 0o644); err != nil {
		return fmt.Errorf("failed to write file: %w", err)
	}

	absPath, _ := filepath.Abs(filename)
	fmt.Printf("%s Created %s\n", SuccessStyle.Render("✓"), absPath)
	fmt.Println()
	fmt.Println(SubtitleStyle.Render("Next steps:"))
	fmt.Println("  1. Edit the tool file to declare your flags and virtuals")
	fmt.Println("  2. Run 'obuild exec --tag compile -- <cmd> <args>' to use them")
	fmt.Println("  3. Run 'obuild config init' to create a default configuration")

	return nil
}
