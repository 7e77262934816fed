// Package root contains the root command for the application
package root

import (
	"fmt"
	"sync"

	"fjacquet/tdstatement/internal/config"
	"fjacquet/tdstatement/internal/container"
	"fjacquet/tdstatement/internal/currencyutils"
	"fjacquet/tdstatement/internal/dateutils"
	"fjacquet/tdstatement/internal/logging"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	// Log is the shared logger instance for commands. It is replaced once
	// the configuration has been loaded.
	Log logging.Logger = logging.NewLogrusAdapter("info", "json")

	// Cmd is the root command
	Cmd = &cobra.Command{
		Use:   "tdstatement",
		Short: "A CLI tool to parse TD Bank statements into structured records.",
		Long: `tdstatement is a CLI tool that parses TD Bank account and credit card
statements into structured activity records. Parsed documents are written
to stdout as JSON lines; diagnostics go to stderr.`,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: initialize,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	cfgFile      string
	v            = viper.New()
	appContainer *container.Container
	initOnce     sync.Once
)

// flagBindings maps persistent flags to configuration keys.
var flagBindings = map[string]string{
	"log-level":  "log.level",
	"log-format": "log.format",
	"engine":     "extraction.engine",
	"pdftotext":  "extraction.pdftotext_path",
	"workers":    "processing.workers",
	"delimiter":  "export.csv_delimiter",
}

// Init initializes the root command and all flags. It is safe to call more
// than once.
func Init() {
	initOnce.Do(func() {
		pf := Cmd.PersistentFlags()
		pf.StringVar(&cfgFile, "config", "", "config file (default searches $HOME/.tdstatement, .tdstatement and .)")
		pf.String("log-level", "info", "log level (trace, debug, info, warn, error)")
		pf.String("log-format", "json", "log format (json or text)")
		pf.String("engine", "auto", "text extraction engine (auto, pdftotext, native, text)")
		pf.String("pdftotext", "pdftotext", "path to the pdftotext binary")
		pf.IntP("workers", "w", 1, "number of documents parsed in parallel")
		pf.String("delimiter", ",", "CSV delimiter used by export")

		for flag, key := range flagBindings {
			if err := v.BindPFlag(key, pf.Lookup(flag)); err != nil {
				panic(fmt.Sprintf("failed to bind flag %s: %v", flag, err))
			}
		}
	})
}

func initialize(cmd *cobra.Command, args []string) error {
	if _, err := config.LoadEnv(); err != nil {
		return fmt.Errorf("failed to load .env file: %w", err)
	}

	cfg, err := config.Load(v, cfgFile)
	if err != nil {
		return err
	}

	Log = config.NewLogger(cfg).WithField(logging.FieldRunID, uuid.NewString())
	dateutils.SetLogger(Log)
	currencyutils.SetLogger(Log)

	c, err := container.NewContainer(cfg, container.WithLogger(Log))
	if err != nil {
		return fmt.Errorf("failed to initialize: %w", err)
	}
	appContainer = c
	return nil
}

// GetContainer returns the container built for the running command, or nil
// before the command has been initialized.
func GetContainer() *container.Container {
	return appContainer
}

// GetLogger returns the configured logger.
func GetLogger() logging.Logger {
	return Log
}
