package main

import (
	"github.com/c9s/fixp/pkg/cmd"
)

func main() {
	cmd.Execute()
}
