// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/ivg/ocamlbuild/internal/config"
	"github.com/ivg/ocamlbuild/internal/toolfile"
	"github.com/ivg/ocamlbuild/pkg/command"
	"github.com/ivg/ocamlbuild/pkg/tags"
)

func TestParseCommandWords(t *testing.T) {
	active := tags.New("compile")

	cmds, err := parseCommandWords([]string{"ocamlfind", "-o", "main", "main.ml"}, active)
	if err != nil {
		t.Fatalf("parseCommandWords() = %v", err)
	}
	if len(cmds) != 1 {
		t.Fatalf("len(cmds) = %d, want 1", len(cmds))
	}

	// The tag placeholder sits right after the first word: with a guarded
	// flag registered, its args land between the tool and its arguments.
	reg := command.NewRegistry()
	reg.Flag(tags.New("compile"), command.A("-g"))

	reduced, err := command.Reduce(reg, active, cmds[0])
	if err != nil {
		t.Fatalf("Reduce() = %v", err)
	}
	line, err := reg.StringOfCommand(reduced)
	if err != nil {
		t.Fatalf("StringOfCommand() = %v", err)
	}
	if want := "ocamlfind -g -o main main.ml"; line != want {
		t.Errorf("rendered %q, want %q", line, want)
	}
}

func TestParseCommandWordsVirtual(t *testing.T) {
	cmds, err := parseCommandWords([]string{"@cc", "-o", "main"}, tags.New())
	if err != nil {
		t.Fatalf("parseCommandWords() = %v", err)
	}

	reg := command.NewRegistry()
	reg.SetVirtual("cc", func() (command.Spec, error) {
		return command.P("/usr/bin/clang"), nil
	})

	reduced, err := command.Reduce(reg, tags.New(), cmds[0])
	if err != nil {
		t.Fatalf("Reduce() = %v", err)
	}
	line, err := reg.StringOfCommand(reduced)
	if err != nil {
		t.Fatalf("StringOfCommand() = %v", err)
	}
	if want := "/usr/bin/clang -o main"; line != want {
		t.Errorf("rendered %q, want %q", line, want)
	}
}

func TestParseCommandWordsSplitsOnSemicolon(t *testing.T) {
	cmds, err := parseCommandWords([]string{"echo", "a", ";", "echo", "b", ";"}, tags.New())
	if err != nil {
		t.Fatalf("parseCommandWords() = %v", err)
	}
	if len(cmds) != 2 {
		t.Errorf("len(cmds) = %d, want 2", len(cmds))
	}
}

func TestParseCommandWordsOnlySeparators(t *testing.T) {
	if _, err := parseCommandWords([]string{";", ";"}, tags.New()); err == nil {
		t.Error("parseCommandWords() with no words should fail")
	}
}

func TestBuildRegistryDefaultMissing(t *testing.T) {
	cfg := config.DefaultConfig()

	// No --toolfile flag, no configured path, no obuild.toml in the test's
	// working directory: an empty registry, not an error.
	reg, err := buildRegistry(cfg)
	if err != nil {
		t.Fatalf("buildRegistry() = %v", err)
	}
	if reg == nil {
		t.Fatal("buildRegistry() returned nil registry")
	}
}

func TestBuildRegistryExplicitMissing(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Toolfile = config.ToolfilePath(filepath.Join(t.TempDir(), "absent.toml"))

	if _, err := buildRegistry(cfg); err == nil {
		t.Error("buildRegistry() with a missing explicit tool file should fail")
	}
}

func TestStarterToolfileIsValid(t *testing.T) {
	// runInit validates this before writing; keep the guarantee covered here too.
	tf, err := toolfile.Parse([]byte(starterToolfile), "obuild.toml")
	if err != nil {
		t.Fatalf("starter tool file does not parse: %v", err)
	}
	if len(tf.Flags) == 0 || len(tf.Virtuals) == 0 {
		t.Error("starter tool file should declare both flags and virtuals")
	}
}

func TestGetVersionString(t *testing.T) {
	origVersion, origCommit, origDate := Version, Commit, BuildDate
	defer func() { Version, Commit, BuildDate = origVersion, origCommit, origDate }()

	Version = "dev"
	if got := getVersionString(); got != "dev (built from source)" {
		t.Errorf("getVersionString() = %q", got)
	}

	Version, Commit, BuildDate = "1.2.0", "abc123", "2026-08-29"
	if got := getVersionString(); !strings.Contains(got, "1.2.0") || !strings.Contains(got, "abc123") {
		t.Errorf("getVersionString() = %q", got)
	}
}
