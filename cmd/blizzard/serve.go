package main

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/blizzard-html/blizzard/internal/config"
	"github.com/blizzard-html/blizzard/internal/demo"
	"github.com/blizzard-html/blizzard/pkg/preview"
)

func serveCmd() *cobra.Command {
	var (
		addr     string
		noReload bool
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the preview server",
		Long: `Start the preview server.

Pages are rendered on every request, so edits to page functions show
up after a rebuild. Connected browsers refresh automatically when a
reload is triggered via POST /_blizzard/reload.

Examples:
  blizzard serve
  blizzard serve --addr=:8080
  blizzard serve --no-reload`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(addr, noReload)
		},
	}

	cmd.Flags().StringVarP(&addr, "addr", "a", "", "Listen address (default from blizzard.json)")
	cmd.Flags().BoolVar(&noReload, "no-reload", false, "Disable live-reload script injection")

	return cmd
}

func runServe(addr string, noReload bool) error {
	cfg, err := config.LoadFromWorkingDir()
	if err != nil {
		return err
	}

	// Apply command-line overrides
	if addr != "" {
		cfg.Serve.Address = addr
	}
	if noReload {
		cfg.Serve.DisableReload = true
	}

	printBanner()
	fmt.Println("  serve")
	fmt.Println()

	srvCfg := preview.DefaultConfig()
	srvCfg.Address = cfg.Serve.Address
	srvCfg.EnableReload = !cfg.Serve.DisableReload

	s := demo.Site()
	server := preview.New(s, srvCfg)

	info("Serving %d pages on http://localhost%s", s.Len(), cfg.Serve.Address)
	if srvCfg.EnableReload {
		info("Live reload enabled")
	}
	fmt.Println()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	return server.Start(ctx)
}
