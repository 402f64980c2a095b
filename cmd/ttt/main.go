package main

import (
	"github.com/mcoot/tictactoe-go/internal/cli"
)

func main() {
	cli.Execute()
}
