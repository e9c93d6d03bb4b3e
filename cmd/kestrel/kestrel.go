package main

import (
	"os"

	"github.com/kestrelworks/kestrel/internal/kestrel/cmd"
	"github.com/kestrelworks/kestrel/pkg/logger"
)

func main() {
	command := cmd.NewDefaultKestrelCommand()
	err := command.Execute()
	if err != nil {
		logger.Error("%v", err)
	}
	logger.FlushLog()
	if err != nil {
		os.Exit(1)
	}
}
