// SPDX-License-Identifier: MPL-2.0

// Package command turns declarative descriptions of external-tool
// invocations into concrete command lines and runs them.
//
// A Command is a tree mixing literal fragments (A, P, Px, Sh, Quote) with
// placeholders: T(tags) expands to the flag fragments whose guards are
// satisfied by the active tag set, and V(name) is solved by a registered
// virtual-command resolver. Reduce eliminates all placeholders against a
// Registry, StringOfCommand renders the reduced tree as a POSIX shell
// line, and Executor launches it through a native system shell or an
// embedded interpreter, one command at a time or as a batch with bounded
// parallelism and no short-circuiting.
//
// Typical flow:
//
//	reg := command.NewRegistry()
//	reg.Flag(tags.New("ocaml", "debug"), command.A("-g"))
//	reg.SetVirtual("CC", func() (command.Spec, error) { ... })
//
//	exec := command.NewExecutor(reg, command.WithActiveTags(active))
//	err := exec.Execute(ctx, command.Cmd(command.S(
//		command.V("CC"),
//		command.A("-c"),
//		command.P("src/main.c"),
//		command.T(tags.New("debug")),
//	)))
package command
