// cmd/resolver/main.go
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/bethropolis/resolver/internal/app"
	"github.com/bethropolis/resolver/internal/config"
	"github.com/bethropolis/resolver/internal/logger"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	flags := &config.Flags{}

	rootCmd := &cobra.Command{
		Use:   config.AppName + " [file]",
		Short: "RESOLVER. The 'Soulver' in your terminal.",
		Long: `A notepad that evaluates every line as you type.

Write arithmetic, unit conversions and assignments in plain text; results
appear in a column to the right. The file is created on first save if it
does not exist yet.`,
		Args:         cobra.MaximumNArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			var filePath string
			if len(args) > 0 {
				filePath = args[0]
			}

			cfg, closer, err := setup(flags)
			if err != nil {
				return err
			}
			defer closer.Close()

			return runEditor(cfg, filePath)
		},
	}

	flags.DefineFlags(rootCmd.PersistentFlags())

	rootCmd.AddCommand(newEvalCmd(flags))
	rootCmd.AddCommand(newVersionCmd())
	return rootCmd
}

// setup loads the configuration and starts the logger. The closer
// releases the log file.
func setup(flags *config.Flags) (*config.Config, io.Closer, error) {
	cfg, unknown, err := config.Load(flags.ConfigFilePath, flags)
	if err != nil {
		return nil, nil, err
	}

	closer, err := logger.Init(cfg.Logger, config.AppName)
	if err != nil {
		return nil, nil, fmt.Errorf("logger: %w", err)
	}
	for _, key := range unknown {
		logger.Warnf("config: unknown key '%s' ignored", key)
	}
	logger.Debugf("Log level set to: %s", cfg.Logger.LogLevel)
	return cfg, closer, nil
}

func runEditor(cfg *config.Config, filePath string) error {
	logger.Infof("Starting %s %s...", config.AppName, config.Version)
	if filePath != "" {
		logger.Debugf("File path specified: %s", filePath)
	} else {
		logger.Debugf("No file specified, starting empty.")
	}

	resolverApp, err := app.NewApp(cfg, filePath)
	if err != nil {
		logger.Errorf("Error initializing application: %v", err)
		return err
	}

	if err := resolverApp.Run(); err != nil {
		logger.Errorf("Application exited with error: %v", err)
		return err
	}

	logger.Infof("%s finished.", config.AppName)
	return nil
}
