package main

import (
	"os"

	"github.com/Norgate-AV/scopedir/cmd"
	"github.com/Norgate-AV/scopedir/internal/logging"
)

func main() {
	err := cmd.RootCmd.Execute()

	// Flush before exiting; os.Exit skips deferred calls
	logging.Close()

	if err != nil {
		os.Exit(1)
	}
}
