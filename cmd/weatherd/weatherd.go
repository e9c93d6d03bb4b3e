package main

import (
	"os"

	_ "go.uber.org/automaxprocs"

	"github.com/kestrelworks/kestrel/internal/weatherd"
	"github.com/kestrelworks/kestrel/pkg/logger"
)

func main() {
	err := weatherd.NewCommand().Execute()
	if err != nil {
		logger.Error("%v", err)
	}
	logger.FlushLog()
	if err != nil {
		os.Exit(1)
	}
}
