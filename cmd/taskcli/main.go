// Package main implements taskcli, an offline front end to the task
// analysis engine: it reads a task batch from a file and prints the
// same results the HTTP API would return.
package main

import (
	"fmt"
	"os"

	"github.com/phrazzld/task-analyzer-api/internal/cli"
)

func main() {
	if err := cli.NewRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
