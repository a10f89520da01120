package main

import (
	"context"
	"os"

	"teamspace/internal/buildinfo"
	"teamspace/internal/client/cli"
	"teamspace/internal/client/config"
)

func main() {
	buildinfo.PrintBuildData(os.Stdout)

	ctx := context.Background()
	cfg := config.LoadConfig()
	app := cli.NewApp(cfg)
	defer app.Close()

	app.Start(ctx)
	app.Run(ctx)
}
