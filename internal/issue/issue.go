// SPDX-License-Identifier: MPL-2.0

package issue

import (
	"github.com/charmbracelet/glamour"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

type Id int

const (
	PatternParseErrorId Id = iota + 1
	VirtualUnresolvedId
	ToolNotFoundId
	CommandFailedId
	ToolfileNotFoundId
	ToolfileParseErrorId
	ConfigLoadFailedId
	ShellNotFoundId
)

type MarkdownMsg string

type HttpLink string

type Renderer interface {
	Render(in string, stylePath string) (string, error)
}

type Issue struct {
	id       Id          // ID used to lookup the issue
	mdMsg    MarkdownMsg // Markdown text that will be rendered
	docLinks []HttpLink  // must never be empty, because we need to have docs about all issue types
	extLinks []HttpLink  // external links that might be useful for the user
}

func (i *Issue) Id() Id {
	return i.id
}

func (i *Issue) MarkdownMsg() MarkdownMsg {
	return i.mdMsg
}

func (i *Issue) DocLinks() []HttpLink {
	return slices.Clone(i.docLinks)
}

func (i *Issue) ExtLinks() []HttpLink {
	return slices.Clone(i.extLinks)
}

func (i *Issue) Render(stylePath string) (string, error) {
	extraMd := ""
	if len(i.docLinks) > 0 || len(i.extLinks) > 0 {
		extraMd += "\n\n"
		extraMd += "## See also: "
		for _, link := range i.docLinks {
			extraMd += "- [" + string(link) + "]"
		}
		for _, link := range i.extLinks {
			extraMd += "- [" + string(link) + "]"
		}
	}
	return render(string(i.mdMsg)+extraMd, stylePath)
}

var (
	render = glamour.Render

	patternParseErrorIssue = &Issue{
		id: PatternParseErrorId,
		mdMsg: `
# Invalid pattern!

The boolean glob pattern could not be parsed.

## Pattern syntax reminder:
- ` + "`\"text\"`" + ` matches exactly that text
- ` + "`<glob>`" + ` matches with wildcards: ` + "`*`" + `, ` + "`?`" + `, ` + "`[a-z]`" + `, ` + "`{alt1,alt2}`" + `
- Combine with ` + "`|`" + ` (or), ` + "`&`" + ` (and), ` + "`~`" + ` (not), and parentheses
- ` + "`true`" + ` and ` + "`false`" + ` are constants

## Examples:
~~~
<*.ml> | <*.mli>
<src/**> & ~<src/vendor*>
"Makefile" | <*.mk>
~~~

- Check the position reported in the error message
- Quote literal text that contains operator characters`,
	}

	virtualUnresolvedIssue = &Issue{
		id: VirtualUnresolvedId,
		mdMsg: `
# Virtual command unresolved!

A command line references a virtual placeholder that has no usable
solution.

## Things you can try:
- Declare the virtual in your tool file with candidate executables:
~~~toml
[virtual]
cc = ["clang", "gcc", "cc"]
~~~

- Install one of the candidate tools and make sure it is in PATH
- Check for typos in the virtual name`,
	}

	toolNotFoundIssue = &Issue{
		id: ToolNotFoundId,
		mdMsg: `
# Tool not found!

An executable referenced by a command could not be located in PATH.

## Things you can try:
- Install the missing tool
- Check that its directory is in your PATH
- Override the lookup with an absolute path in your tool file`,
	}

	commandFailedIssue = &Issue{
		id: CommandFailedId,
		mdMsg: `
# Command failed!

A command in the sequence exited with a nonzero status. Later commands
in the same sequence were not run.

## Things you can try:
- Re-run with echoing enabled to see the exact command line:
~~~
$ obuild exec --quiet=false ...
~~~

- Run the printed command line manually in your shell
- Use --pretend to print command lines without executing them`,
	}

	toolfileNotFoundIssue = &Issue{
		id: ToolfileNotFoundId,
		mdMsg: `
# No tool file found!

We searched for a tool file but couldn't find one in the expected
locations.

## Search locations (in order of precedence):
1. The path given via --toolfile
2. The path configured in your config file
3. obuild.toml in the current directory

## Example tool file:
~~~toml
[[flag]]
tags = ["ocaml", "compile", "debug"]
args = ["-g"]

[virtual]
cc = ["clang", "gcc", "cc"]
~~~`,
	}

	toolfileParseErrorIssue = &Issue{
		id: ToolfileParseErrorId,
		mdMsg: `
# Failed to parse tool file!

Your tool file contains syntax errors or invalid entries.

## Common issues:
- Invalid TOML syntax (missing quotes, brackets, etc.)
- A [[flag]] table without a tags or args list
- A [virtual] entry whose candidate list is empty

## Things you can try:
- Check the error message above for the specific line
- Validate the file with a TOML linter`,
	}

	configLoadFailedIssue = &Issue{
		id: ConfigLoadFailedId,
		mdMsg: `
# Failed to load configuration!

Could not load the obuild configuration file.

## Configuration file locations:
- Linux: ~/.config/obuild/config.cue
- macOS: ~/Library/Application Support/obuild/config.cue
- Windows: %APPDATA%\obuild\config.cue

## Things you can try:
- Create a default configuration:
~~~
$ obuild config init
~~~

- Check the configuration syntax
- Remove the config file to use defaults

## Example configuration:
~~~cue
jobs: 4
runner: "native"

ui: {
  color_scheme: "auto"
  verbose: false
}
~~~`,
	}

	shellNotFoundIssue = &Issue{
		id: ShellNotFoundId,
		mdMsg: `
# Shell not found!

Could not find a suitable shell for the 'native' runner.

## Shells we look for:
- Linux/macOS: $SHELL, bash, sh
- Windows: pwsh, powershell, cmd

## Things you can try:
- Install bash or another POSIX shell
- Set the SHELL environment variable
- Use the 'virtual' runner instead (built-in shell):
~~~cue
runner: "virtual"
~~~`,
	}

	issues = map[Id]*Issue{
		patternParseErrorIssue.Id():  patternParseErrorIssue,
		virtualUnresolvedIssue.Id():  virtualUnresolvedIssue,
		toolNotFoundIssue.Id():       toolNotFoundIssue,
		commandFailedIssue.Id():      commandFailedIssue,
		toolfileNotFoundIssue.Id():   toolfileNotFoundIssue,
		toolfileParseErrorIssue.Id(): toolfileParseErrorIssue,
		configLoadFailedIssue.Id():   configLoadFailedIssue,
		shellNotFoundIssue.Id():      shellNotFoundIssue,
	}
)

func Values() []*Issue {
	return maps.Values(issues)
}

func Get(id Id) *Issue {
	return issues[id]
}
