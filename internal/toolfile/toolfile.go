// SPDX-License-Identifier: MPL-2.0

// Package toolfile loads tool files: TOML documents that declare
// tag-guarded flag fragments and virtual command candidates, and
// installs them into a command registry.
//
// A tool file looks like:
//
//	[[flag]]
//	tags = ["ocaml", "compile", "debug"]
//	args = ["-g"]
//
//	[[flag]]
//	tags = ["link", "profile"]
//	args = ["-p"]
//
//	[virtual]
//	cc = ["clang", "gcc", "cc"]
package toolfile

import (
	"bytes"
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"

	"github.com/ivg/ocamlbuild/internal/issue"
	"github.com/ivg/ocamlbuild/pkg/command"
	"github.com/ivg/ocamlbuild/pkg/tags"
)

// DefaultFileName is the tool file looked up in the working directory
// when no explicit path is configured.
const DefaultFileName = "obuild.toml"

type (
	// Toolfile is the decoded form of a tool file.
	Toolfile struct {
		// Flags are tag-guarded argument fragments, in declaration order.
		Flags []FlagEntry `toml:"flag"`
		// Virtuals maps a virtual command name to its candidate
		// executables, tried in order.
		Virtuals map[string][]string `toml:"virtual"`
	}

	// FlagEntry declares arguments that apply when all its tags are active.
	FlagEntry struct {
		// Tags guard the entry; every tag must be active for the
		// arguments to be injected.
		Tags []string `toml:"tags"`
		// Args are the command-line arguments to inject.
		Args []string `toml:"args"`
	}
)

// Lookup resolves a candidate executable name to a full path.
// command.SearchInPath is the production implementation; tests substitute
// their own.
type Lookup func(name string) (string, error)

// Load reads and parses the tool file at path.
func Load(path string) (*Toolfile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, issue.NewErrorContext().
				WithOperation("load tool file").
				WithResource(path).
				WithSuggestion("Run 'obuild init' to create a default tool file").
				WithSuggestion("Pass --toolfile to point at an existing one").
				Wrap(err).
				BuildError()
		}
		return nil, fmt.Errorf("failed to read tool file: %w", err)
	}
	return Parse(data, path)
}

// Parse decodes tool file data. The path is used only in error messages.
func Parse(data []byte, path string) (*Toolfile, error) {
	var tf Toolfile

	dec := toml.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&tf); err != nil {
		return nil, issue.NewErrorContext().
			WithOperation("parse tool file").
			WithResource(path).
			WithSuggestion("Check the TOML syntax near the reported line").
			WithSuggestion("Each [[flag]] table needs a tags list and an args list").
			Wrap(err).
			BuildError()
	}

	if err := tf.validate(); err != nil {
		return nil, issue.WrapWithContext(err, "validate tool file", path)
	}
	return &tf, nil
}

// validate enforces the constraints TOML decoding cannot express.
func (tf *Toolfile) validate() error {
	for i, entry := range tf.Flags {
		if len(entry.Tags) == 0 {
			return fmt.Errorf("flag[%d]: tags list must not be empty", i)
		}
		if len(entry.Args) == 0 {
			return fmt.Errorf("flag[%d]: args list must not be empty", i)
		}
		for j, tag := range entry.Tags {
			if tag == "" {
				return fmt.Errorf("flag[%d]: tags[%d] must not be empty", i, j)
			}
		}
	}
	for name, candidates := range tf.Virtuals {
		if name == "" {
			return fmt.Errorf("virtual: name must not be empty")
		}
		if len(candidates) == 0 {
			return fmt.Errorf("virtual %q: candidate list must not be empty", name)
		}
		for j, c := range candidates {
			if c == "" {
				return fmt.Errorf("virtual %q: candidates[%d] must not be empty", name, j)
			}
		}
	}
	return nil
}

// Apply installs the tool file's flags and virtuals into reg.
// Flag fragments keep their declaration order. Each virtual gets a resolver
// that tries its candidates in order with lookup and solves to the first
// hit; the resolver runs at reduction time, so missing tools only fail
// commands that actually reference them.
func (tf *Toolfile) Apply(reg *command.Registry, lookup Lookup) {
	if lookup == nil {
		lookup = command.SearchInPath
	}

	for _, entry := range tf.Flags {
		specs := make([]command.Spec, 0, len(entry.Args))
		for _, arg := range entry.Args {
			specs = append(specs, command.A(arg))
		}
		reg.Flag(tags.New(entry.Tags...), specs...)
	}

	for name, candidates := range tf.Virtuals {
		candidates := candidates
		reg.SetVirtual(name, func() (command.Spec, error) {
			var firstErr error
			for _, c := range candidates {
				path, err := lookup(c)
				if err == nil {
					return command.P(path), nil
				}
				if firstErr == nil {
					firstErr = err
				}
			}
			return nil, fmt.Errorf("no candidate found in PATH (tried %d): %w",
				len(candidates), firstErr)
		})
	}
}
