package main

import (
	"os"

	"github.com/grovetools/navpanel/cmd"
)

func main() {
	os.Exit(cmd.Execute())
}
