package main

import "blogctl/internal/cli"

func main() {
	cli.Execute()
}
