package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/blizzard-html/blizzard/internal/config"
	"github.com/blizzard-html/blizzard/internal/demo"
)

func buildCmd() *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "build",
		Short: "Build the site to static files",
		Long: `Build the site to static files.

Every registered page is rendered and written under the output
directory, with each page path mapped to <path>/index.html.

Examples:
  blizzard build
  blizzard build --output=public`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBuild(output)
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "Output directory (default from blizzard.json)")

	return cmd
}

func runBuild(output string) error {
	cfg, err := config.LoadFromWorkingDir()
	if err != nil {
		return err
	}
	if output != "" {
		cfg.Build.Output = output
	}

	printBanner()
	fmt.Println("  build")
	fmt.Println()

	s := demo.Site()
	start := time.Now()
	if err := s.Build(cfg.Build.Output); err != nil {
		return err
	}

	success("Built %d pages to %s in %s", s.Len(), cfg.Build.Output, time.Since(start).Round(time.Millisecond))
	return nil
}
