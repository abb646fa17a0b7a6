package main

import "github.com/notargets/gorelax/cmd"

func main() {
	cmd.Execute()
}
