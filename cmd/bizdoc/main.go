package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/erpwebapps247-cloud/BT-Thu-hoach-P3-5APP/internal/common"
)

var (
	cfg    *common.Config
	logger *slog.Logger

	flagVerbose bool
)

func main() {
	root := &cobra.Command{
		Use:   "bizdoc",
		Short: "Extract structured data from Vietnamese invoices and citizen ID cards",
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
				fmt.Fprintf(os.Stderr, "warning: could not load .env: %v\n", err)
			}

			level := slog.LevelInfo
			if flagVerbose {
				level = slog.LevelDebug
			}
			logger = slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
			slog.SetDefault(logger)

			cfg = common.LoadConfig()
			return cfg.Validate()
		},
		SilenceUsage: true,
	}
	root.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "enable debug logging")

	root.AddCommand(newExtractCmd())
	root.AddCommand(newBatchCmd())
	root.AddCommand(newExportCmd())
	root.AddCommand(newContractCmd())

	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}
