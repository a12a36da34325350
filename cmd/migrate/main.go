package main

import (
	"lavender/config"
	"lavender/helper"
	"lavender/shared/logger"
	"os"

	"github.com/rs/zerolog/log"
)

const (
	argLength = 2
)

func main() {
	logger.InitLogger()

	if len(os.Args) < argLength {
		log.Fatal().Msg("Migration action (up, down, step-up, drop or version) is required")
	}

	cfg := config.Get()

	logger.SetLogLevel(cfg)

	if err := helper.Run(cfg, helper.Action(os.Args[1])); err != nil {
		log.Fatal().Err(err).Msg("Migration failed")
	}
}
