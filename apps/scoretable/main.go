package main

import (
	"log"
	"os"

	"github.com/google/uuid"

	"github.com/trezcool/scoretable/core"
	"github.com/trezcool/scoretable/services/logger"
)

func main() {
	std := log.New(os.Stderr, "SCORETABLE : ", log.LstdFlags|log.Lmicroseconds|log.Lshortfile)

	conf, err := core.NewConfig()
	if err != nil {
		std.Fatal(err)
	}

	logger := logsvc.NewRollbarLogger(std, conf)
	logger.SetRunID(uuid.New().String())

	cli := commandLine{
		conf:   conf,
		log:    logger,
		stdin:  os.Stdin,
		stdout: os.Stdout,
	}
	if err := cli.run(os.Args); err != nil {
		switch {
		case err == errHelp:
		case core.IsInputExhausted(err):
			logger.Error("input ended before all scores were entered, no report produced", err)
		default:
			logger.Error("scoretable failed", err)
		}
		logger.Close()
		os.Exit(1)
	}
	logger.Close()
}
