package main

import (
	"github.com/raceleague/steward/internal/cli"
)

func main() {
	cli.Execute()
}
