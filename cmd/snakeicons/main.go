// snakeicons renders the snake game icon at a fixed set of sizes and writes
// them as PNG files.
//
// Usage:
//
//	snakeicons                - Write images/icon16.png, icon48.png, icon128.png
//	snakeicons styles         - List available icon styles
//	snakeicons preview        - Show icons in the terminal
//	snakeicons verify         - Check written icons against a fresh render
//	snakeicons ico            - Write a favicon.ico
//	snakeicons history        - Show previously recorded generations
//
// Global flags:
//
//	--config <path> - YAML config (default: embedded, classic style to ./images)
//	--db <path>     - Record generated files in this SQLite database
//	--verbose       - Debug logging
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/snake-icons/internal/config"
	"github.com/vovakirdan/snake-icons/internal/generate"
	"github.com/vovakirdan/snake-icons/internal/icon"
	"github.com/vovakirdan/snake-icons/internal/registry"
	"github.com/vovakirdan/snake-icons/internal/storage"

	// Import styles to register them
	_ "github.com/vovakirdan/snake-icons/internal/styles/canvas"
	_ "github.com/vovakirdan/snake-icons/internal/styles/classic"
)

var (
	// Global flags
	flagConfig  string
	flagDBPath  string
	flagVerbose bool
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		stop()
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "snakeicons",
	Short: "Generate the snake game icons",
	Long: `snakeicons draws the snake game icon (green snake, red food on a 4x4 grid)
and writes it at every configured size.

With no arguments it writes images/icon16.png, images/icon48.png and
images/icon128.png. The images directory must already exist.

Examples:
  snakeicons
  snakeicons --config icons.yaml --db ~/.snakeicons/history.db
  snakeicons preview --size 48
  snakeicons verify`,
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runGenerate,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to YAML config (default: embedded)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "", "Record generated files in this SQLite database")
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "Enable debug logging")

	// Add subcommands
	rootCmd.AddCommand(stylesCmd)
	rootCmd.AddCommand(previewCmd)
	rootCmd.AddCommand(verifyCmd)
	rootCmd.AddCommand(icoCmd)
	rootCmd.AddCommand(historyCmd)
}

func newLogger() *log.Logger {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "snakeicons",
	})
	if flagVerbose {
		logger.SetLevel(log.DebugLevel)
	}
	return logger
}

// loadSettings reads the config and resolves its style.
func loadSettings() (config.Config, icon.Style, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return cfg, icon.Style{}, err
	}
	style, err := registry.Create(cfg.Style)
	if err != nil {
		return cfg, icon.Style{}, err
	}
	return cfg, style, nil
}

func runGenerate(cmd *cobra.Command, args []string) error {
	logger := newLogger()

	cfg, style, err := loadSettings()
	if err != nil {
		return err
	}
	logger.Debug("loaded config", "style", cfg.Style, "output_dir", cfg.OutputDir, "sizes", cfg.Sizes)

	opts := generate.Options{
		Style:     style,
		OutputDir: cfg.OutputDir,
		Sizes:     cfg.Sizes,
		Logger:    logger,
	}

	if flagDBPath != "" {
		store, err := storage.Open(flagDBPath)
		if err != nil {
			return err
		}
		defer store.Close()
		opts.Recorder = store
	}

	_, err = generate.Run(cmd.Context(), opts)
	return err
}
