package main

import "github.com/gaurav-prasanna/monsterdeck/cmd"

func main() {
	cmd.Execute()
}
