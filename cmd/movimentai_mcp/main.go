// Package main runs the MovimentAI MCP server over stdio (for local assistant clients).
// The same server is mounted on the backend at /mcp for the admin account.
package main

import (
	"context"
	"flag"
	"log"

	"github.com/2beens/movimentai/internal/calendar"
	"github.com/2beens/movimentai/internal/config"
	"github.com/2beens/movimentai/internal/db"
	movimentaimcp "github.com/2beens/movimentai/internal/mcp"
	"github.com/2beens/movimentai/internal/workouts"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

func main() {
	env := flag.String("env", "development", "environment [prod | production | dev | development | ddev | dockerdev]")
	configPath := flag.String("config", "./config.toml", "path to TOML config file")
	flag.Parse()

	cfg, err := config.Load(*env, *configPath)
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	ctx := context.Background()
	dbPool, err := db.NewDBPool(ctx, db.NewDBPoolParams{
		DBHost:         cfg.PostgresHost,
		DBPort:         cfg.PostgresPort,
		DBName:         cfg.PostgresDBName,
		TracingEnabled: false,
	})
	if err != nil {
		log.Fatalf("db pool: %v", err)
	}
	defer dbPool.Close()

	server := movimentaimcp.NewServer(workouts.NewRepo(dbPool), calendar.NewRepo(dbPool))
	if err := server.Run(ctx, &mcp.StdioTransport{}); err != nil {
		log.Fatal(err)
	}
}
