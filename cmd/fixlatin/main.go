// Command fixlatin repairs text that mixes ASCII, UTF-8, ISO-8859-1 and
// Windows-1252 into UTF-8.
//
// Usage:
//
//	fixlatin [flags] [FILE...]
//
// With no FILE, or when FILE is -, standard input is read. Output goes to
// standard output unless -o is given.
package main

import (
	"os"

	"github.com/golang/glog"
)

func main() {
	err := newRootCmd().Execute()
	glog.Flush()
	if err != nil {
		os.Exit(1)
	}
}
