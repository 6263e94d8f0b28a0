package main

import "envsnap/internal/cli"

func main() {
	cli.Execute()
}
