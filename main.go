package main

import "github.com/docweld/docweld/cmd"

func main() {
	cmd.Execute()
}
