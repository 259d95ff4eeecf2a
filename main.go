// SPDX-License-Identifier: MPL-2.0

package main

import cmd "github.com/extkit/extkit/cmd/extkit"

func main() {
	cmd.Execute()
}
