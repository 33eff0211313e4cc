package main

import (
	"fmt"
	"os"

	"github.com/roemer/gopin/internal/app/gopin"
)

func main() {
	if err := gopin.RunCmd(os.Args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %s\n", err.Error())
		os.Exit(1)
	}
}
