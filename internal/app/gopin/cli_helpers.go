package gopin

import (
	"flag"
	"fmt"
	"os"
)

// Prints the help for the command
func printUsage(flagSet *flag.FlagSet) {
	fmt.Fprintf(os.Stderr, "gopin v%s", Version)
	fmt.Fprintln(os.Stderr, "")
	fmt.Fprintln(os.Stderr, "")
	fmt.Fprintln(os.Stderr, "Usage:")
	fmt.Fprintln(os.Stderr, "  gopin [flags]")
	fmt.Fprintln(os.Stderr, "")
	fmt.Fprintln(os.Stderr, "Flags:")
	flagSet.PrintDefaults()
}
