// SPDX-License-Identifier: MPL-2.0

package main

import cmd "github.com/podlaunch/podlaunch/cmd/podlaunch"

func main() {
	cmd.Execute()
}
