package main

import (
	"context"
	"log"
	"os"

	"github.com/dmitrijs2005/userserver/internal/server"
	"github.com/dmitrijs2005/userserver/internal/server/config"
)

// exitConfig follows sysexits EX_USAGE.
const exitConfig = 64

func main() {

	ctx := context.Background()

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Printf("config error: %v", err)
		os.Exit(exitConfig)
	}

	app, err := server.NewApp(ctx, cfg)
	if err != nil {
		log.Printf("%v", err)
		os.Exit(1)
	}

	app.Run(ctx)

}
