package main

import (
	"github.com/dotdoc-tools/dotdoc/internal/cli"
)

func main() {
	cli.Execute()
}
