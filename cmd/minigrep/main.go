package main

import "github.com/minigrep/minigrep/cmd"

func main() {
	cmd.Execute()
}
