package app

import (
	"fmt"
	"io"
)

// Version is the application version, overridden at build time with
// -ldflags "-X github.com/agbru/bigcalc/internal/app.Version=...".
var Version = "dev"

// HasVersionFlag reports whether the arguments request the version.
func HasVersionFlag(args []string) bool {
	for _, a := range args {
		if a == "--version" || a == "-version" {
			return true
		}
	}
	return false
}

// PrintVersion writes the version banner.
func PrintVersion(w io.Writer) {
	fmt.Fprintf(w, "bigcalc %s\n", Version)
}
