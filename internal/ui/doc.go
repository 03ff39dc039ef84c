// Package ui provides theme and color support for the calculator's user
// interfaces. It defines color schemes and ANSI escape code accessors for
// consistent styling across the CLI, the TUI and the stress harness.
//
// This package is designed to be a shared dependency for packages that need
// color output, reducing coupling between business logic and presentation.
package ui
