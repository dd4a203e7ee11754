package main

import (
	"fmt"
	"os"

	"github.com/go-glx/usertiming/cmd/usertiming/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
