package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/studentcoach/alpsbench/internal/benchmark"
	mcpserver "github.com/studentcoach/alpsbench/internal/mcp"
	"github.com/studentcoach/alpsbench/internal/profile"
)

// cmdMCP starts the MCP server on stdio for editor integration
func cmdMCP() error {
	store, err := loadStore()
	if err != nil {
		return err
	}

	mcpSrv := mcpserver.NewServer(mcpserver.Config{
		Store:      store,
		Benchmarks: benchmark.New(store),
		Summarizer: profile.NewSummarizer(store, nil),
	})

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigCh
		cancel()
	}()

	return mcpSrv.ServeStdio(ctx)
}
