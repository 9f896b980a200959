package main

import "github.com/xvela/reframe/cmd"

func main() {
	cmd.Execute()
}
