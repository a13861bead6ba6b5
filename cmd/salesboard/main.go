package main

import (
	"context"
	"errors"
	"os"

	"github.com/fsdevblog/salesboard/internal/app"
	"github.com/fsdevblog/salesboard/internal/config"
	"github.com/fsdevblog/salesboard/internal/logger"
)

func main() {
	conf := config.MustLoadConfig(os.Args[1:])
	l := logger.New(os.Stdout)

	if err := app.New(conf, l).Run(); err != nil {
		if errors.Is(err, context.Canceled) {
			l.Info("graceful shutdown")
			os.Exit(0)
		}
		panic(err)
	}
}
