package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// Version information set at build time.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

const banner = `
  ╔╗ ╦  ╦╔═╗╔═╗╔═╗╦═╗╔╦╗
  ╠╩╗║  ║╔═╝╔═╝╠═╣╠╦╝ ║║
  ╚═╝╩═╝╩╚═╝╚═╝╩ ╩╩╚══╩╝
`

func main() {
	rootCmd := &cobra.Command{
		Use:   "blizzard",
		Short: "Build HTML documents as Go values",
		Long: `Blizzard renders HTML pages built from plain Go function calls.

Pages are trees of nodes assembled with typed element and attribute
constructors, rendered to minified markup with no whitespace between
tags. The CLI operates on a site of registered pages:

  • Preview server with live reload
  • Static build to an output directory
  • Publishing to an S3 bucket`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.AddCommand(
		serveCmd(),
		buildCmd(),
		publishCmd(),
		versionCmd(),
	)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "\033[31mError:\033[0m %s\n", err)
		os.Exit(1)
	}
}

// printBanner prints the Blizzard ASCII art banner.
func printBanner() {
	fmt.Print(banner)
}

// success prints a success message.
func success(format string, args ...any) {
	fmt.Printf("\033[32m✓\033[0m %s\n", fmt.Sprintf(format, args...))
}

// info prints an info message.
func info(format string, args ...any) {
	fmt.Printf("  %s\n", fmt.Sprintf(format, args...))
}
