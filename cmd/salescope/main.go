package main

import (
	"github.com/bwmarrin/snowflake"
	"github.com/smallbiznis/salescope/internal/clock"
	"github.com/smallbiznis/salescope/internal/config"
	"github.com/smallbiznis/salescope/internal/observability"
	"github.com/smallbiznis/salescope/internal/server"
	"github.com/smallbiznis/salescope/pkg/db"
	"go.uber.org/fx"
)

func main() {
	app := fx.New(
		config.Module,
		observability.Module,
		fx.Provide(RegisterSnowflake),
		db.Module,
		clock.Module,
		server.Module,
	)
	app.Run()
}

func RegisterSnowflake() *snowflake.Node {
	node, err := snowflake.NewNode(1)
	if err != nil {
		panic(err)
	}
	return node
}
