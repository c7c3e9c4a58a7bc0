package main

import "github.com/notargets/gofes/cmd"

func main() {
	cmd.Execute()
}
