// Command scribe-manpage writes the scribe man pages. With a directory
// argument it writes one page per command into it, otherwise the root page
// goes to stdout.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra/doc"

	"github.com/sshaaf/scribe/internal/cli"
	"github.com/sshaaf/scribe/internal/version"
)

func main() {
	rootCmd := cli.NewRootCmd()

	header := &doc.GenManHeader{
		Title:   "SCRIBE",
		Section: "1",
		Source:  "scribe " + version.Version,
		Manual:  "scribe manual",
	}

	var err error
	if len(os.Args) > 1 {
		dir := os.Args[1]
		if err = os.MkdirAll(dir, 0755); err == nil {
			err = doc.GenManTree(rootCmd, header, dir)
		}
	} else {
		err = doc.GenMan(rootCmd, header, os.Stdout)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error generating man page: %v\n", err)
		os.Exit(1)
	}
}
