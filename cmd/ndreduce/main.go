// MODUL: ndreduce/main
// ZWECK: Einstiegspunkt der ndreduce CLI
// ABHAENGIGKEITEN: cmd, envconfig, logutil
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/7blacky7/ndreduce/cmd"
	"github.com/7blacky7/ndreduce/envconfig"
	"github.com/7blacky7/ndreduce/logutil"
)

func main() {
	slog.SetDefault(logutil.NewLogger(os.Stderr, envconfig.LogLevel()))

	if err := cmd.NewCLI().ExecuteContext(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
