package main

import "weblate-bridge/internal/cli"

func main() {
	cli.Execute()
}
