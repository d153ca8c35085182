// Command canvas-mcp is an MCP server exposing the Canvas LMS REST API as
// read-only tools over stdio.
//
// Configuration comes from the environment, optionally via a .env file:
//
//	CANVAS_BASE_URL  Canvas API base URL (e.g. https://canvas.example.edu/api/v1), required
//	CANVAS_TOKEN     Canvas access token, required
//	LOG_LEVEL        zerolog level (default: info)
//	LOG_FORMAT       "json" or "pretty" (default: json)
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/mark3labs/mcp-go/server"

	"github.com/aviklund/canvasmcp/canvas"
	"github.com/aviklund/canvasmcp/tools"
)

const version = "0.1.0"

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "canvas-mcp: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// .env is optional; real deployments set the environment directly.
	_ = godotenv.Load()

	log := newLogger(os.Getenv("LOG_LEVEL"), os.Getenv("LOG_FORMAT"))

	client, err := canvas.New(os.Getenv("CANVAS_BASE_URL"), os.Getenv("CANVAS_TOKEN"),
		canvas.WithLogger(log))
	if err != nil {
		return fmt.Errorf("configuration: %w (set CANVAS_BASE_URL and CANVAS_TOKEN in the environment or a .env file)", err)
	}

	srv := server.NewMCPServer("Canvas-LMS-MCP", version,
		server.WithToolCapabilities(false),
		server.WithRecovery(),
	)
	tools.Register(srv, client)

	log.Info().Str("base_url", os.Getenv("CANVAS_BASE_URL")).Msg("serving Canvas tools over stdio")
	if err := server.ServeStdio(srv); err != nil {
		return fmt.Errorf("serve: %w", err)
	}
	return nil
}
