package main

import (
	"context"
	"io"
	"os"

	"github.com/bjaus/lines/internal/command"
	"github.com/bjaus/lines/internal/log"
)

func main() {
	os.Exit(realMain(os.Args, os.Stdout, os.Stderr))
}

// realMain runs the albums command and maps its outcome to an exit code.
func realMain(args []string, stdout, stderr io.Writer) int {
	log.InitLogger()
	log.Debugf("args: %v", args)

	if err := command.Run(context.Background(), args, stdout, stderr); err != nil {
		log.WithError(err).Error("albums failed")
		return 1
	}
	return 0
}
