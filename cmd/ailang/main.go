// Command ailang is the AILang front-end tool: it checks, tokenizes, and
// dumps the AST of AILang source files.
package main

import (
	"os"

	"github.com/ailang-lang/ailang/internal/cli"
)

// Overridden at link time with -ldflags "-X main.version=... -X main.commit=...".
var (
	version = ""
	commit  = ""
)

func main() {
	if version != "" {
		cli.Version = version
	}
	if commit != "" {
		cli.Commit = commit
	}
	os.Exit(cli.Run(os.Args[1:], os.Stdout, os.Stderr))
}
