package main

import "github.com/flashbots/mev-builders/cli"

func main() {
	cli.Main()
}
