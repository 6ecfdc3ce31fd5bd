package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/remirami/RecipeBank/internal/cli"
	recipeClientFactory "github.com/remirami/RecipeBank/internal/factories/recipe-client-factory"
	"github.com/remirami/RecipeBank/pkg/config/env"
)

func main() {
	config, err := env.NewConfig()
	if err != nil {
		log.Fatalf("could not load config: %v", err)
	}

	factory := recipeClientFactory.New(config)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go factory.Session.Run(ctx)

	if err := cli.New(factory).ExecuteContext(ctx); err != nil {
		os.Exit(1)
	}
}
