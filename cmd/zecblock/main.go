// Command zecblock looks up a Zcash block on a Blockbook explorer and prints
// a summary of the block, its transactions and their outputs.
//
// Usage:
//
//	zecblock                      prompt for a block hash or height
//	zecblock 2500000              look up by height
//	zecblock 0000000001a2b3...    look up by hash
//	zecblock 2500000 --no-color --config config/zecblock.yaml
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
)

func main() {
	os.Exit(execute(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

// execute runs the root command and maps its outcome to an exit code. Any
// failure is reported as a single line on stderr.
func execute(args []string, in io.Reader, out, errOut io.Writer) int {
	opts := &options{}
	cmd := rootCmd(opts)
	cmd.SetArgs(args)
	cmd.SetIn(in)
	cmd.SetOut(out)
	cmd.SetErr(errOut)

	if err := cmd.Execute(); err != nil {
		red := color.New(color.FgRed)
		if opts.noColor {
			red.DisableColor()
		}
		fmt.Fprintln(errOut, red.Sprintf("Error: %v", err))
		return 1
	}
	return 0
}
