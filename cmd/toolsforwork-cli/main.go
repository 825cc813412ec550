package main

import "toolsforwork/cmd/toolsforwork-cli/cmd"

func main() {
	cmd.Execute()
}
