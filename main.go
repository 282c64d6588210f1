package main

import "github.com/glopal/services/cmd"

func main() {
	cmd.Execute()
}
