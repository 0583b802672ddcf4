package main

import (
	"github.com/pfrenyo/legendary-replace-tool/internal/cli"
)

func main() {
	cli.Execute()
}
