package main

import "github.com/Station-Manager/wrap/internal/cli"

func main() {
	cli.Execute()
}
