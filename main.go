package main

import "github.com/aschey/vortex/cmd"

func main() {
	cmd.Execute()
}
