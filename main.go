package main

import "github.com/sbj42/hamilton/cmd"

func main() {
	cmd.Execute()
}
