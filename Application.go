package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"TermPong/client"
	"TermPong/config"
	"TermPong/logger"

	"github.com/google/uuid"
)

func main() {
	cfg, err := config.Load(os.Args[1:])
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}

	if err := logger.Log.Init(cfg.LoggerConfig); err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}
	logger.Log.SetMatch(uuid.NewString())
	logger.Log.WatchLevel()
	logger.Log.Info(fmt.Sprintf(logger.ConfigLoadedMsg, cfg.ConfigFile))

	screen, err := client.OpenScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}
	// the screen owns stdout from here on
	logger.Log.SetConsole(false)

	game, err := client.New(screen, cfg, nil)
	if err != nil {
		screen.Fini()
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err = game.Run(ctx)
	stop()
	screen.Fini()

	if err != nil {
		logger.Log.Fatal(err.Error())
	}
}
