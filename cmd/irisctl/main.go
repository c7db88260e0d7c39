package main

import (
	"context"
	"log"
	"os"

	"github.com/irisrec/irisctl/internal/buildinfo"
	"github.com/irisrec/irisctl/internal/cli"
	"github.com/irisrec/irisctl/internal/config"
)

func main() {

	buildinfo.PrintBuildData(os.Stdout)

	ctx := context.Background()
	cfg := config.LoadConfig()
	app, err := cli.NewApp(cfg)

	if err != nil {
		log.Fatalf("%v", err)
		return
	}

	app.Run(ctx)

}
