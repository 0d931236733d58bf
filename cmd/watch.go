package cmd

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/pseudolint/plint/formatter"
	"github.com/pseudolint/plint/internal/types"
	"github.com/pseudolint/plint/lint"
)

var watchCmd = &cobra.Command{
	Use:   "watch [paths...]",
	Short: "Watch files and re-lint them on change",
	Run: func(cmd *cobra.Command, args []string) {
		if len(args) == 0 {
			fmt.Println("error: Please provide file or directory paths")
			os.Exit(1)
		}

		engine, err := lint.New(cfgFile)
		if err != nil {
			logger.Fatal("Failed to initialize lint engine", zap.Error(err))
		}

		err = engine.StartWatching(args, func(filename string, flags []types.Flag) {
			fmt.Print(formatter.GenerateFileHeader(filename, len(flags)))
			fmt.Print(formatter.GenerateFormattedFlags(flags))
		})
		if err != nil {
			logger.Fatal("Failed to start watching", zap.Error(err))
		}

		sig := make(chan os.Signal, 1)
		signal.Notify(sig, os.Interrupt, syscall.SIGTERM)
		<-sig

		if err := engine.StopWatching(); err != nil {
			logger.Error("Error stopping watcher", zap.Error(err))
		}
	},
}
