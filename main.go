package main

import (
	"log/slog"
	"os"

	"github.com/meghashyamc/curlplanet/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		slog.Error("error running curlplanet", "err", err)
		os.Exit(1)
	}
}
