// mygrep reports where a pattern matches in each line of a file.
//
//	mygrep <pattern> [input-file.txt]
//
// Without an input file it prints a demonstration over a few sample lines.
package main

import (
	goflag "flag"
	"os"

	flag "github.com/spf13/pflag"
)

func init() {
	// Expose glog's -v, -logtostderr and friends as pflags.
	flag.CommandLine.AddGoFlagSet(goflag.CommandLine)
}

func main() {
	os.Exit(execute(os.Args[1:], os.Stdout, os.Stderr))
}
