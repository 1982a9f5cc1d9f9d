package main

import "github.com/droxer/TaskMind/internal/cli"

func main() {
	cli.Execute()
}
