package main

import (
	"os"

	"github.com/danmuck/hello/internal/emitter"
	"github.com/danmuck/hello/internal/logging"
	"github.com/rs/zerolog/log"
)

func main() {
	logging.ConfigureRuntime()
	if err := emitter.Run(os.Stdout); err != nil {
		log.Error().Msgf("cmd.hello.main emit failed err=%v", err)
		os.Exit(1)
	}
}
