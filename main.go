// SPDX-License-Identifier: MPL-2.0

package main

import cmd "github.com/ivg/ocamlbuild/cmd/obuild"

func main() {
	cmd.Execute()
}
