package main

import (
	"github.com/gamesapx/gamesapx/internal/cli"
)

func main() {
	cli.Execute()
}
