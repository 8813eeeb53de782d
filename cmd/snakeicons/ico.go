package main

import (
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/snake-icons/internal/icon"
	"github.com/vovakirdan/snake-icons/internal/output"
)

var (
	flagICOSize int
	flagICOName string
)

var icoCmd = &cobra.Command{
	Use:   "ico",
	Short: "Write a favicon.ico",
	Long: `Render one icon size and write it as a Windows .ico file into the
output directory.

Examples:
  snakeicons ico
  snakeicons ico --size 128 --name app.ico`,
	Args: cobra.NoArgs,
	RunE: runICO,
}

func init() {
	icoCmd.Flags().IntVar(&flagICOSize, "size", 48, "Icon size in pixels")
	icoCmd.Flags().StringVar(&flagICOName, "name", "favicon.ico", "File name inside the output directory")
}

func runICO(cmd *cobra.Command, args []string) error {
	logger := newLogger()

	cfg, style, err := loadSettings()
	if err != nil {
		return err
	}

	path := filepath.Join(cfg.OutputDir, flagICOName)
	f, err := output.WriteICO(path, icon.Render(style, flagICOSize))
	if err != nil {
		return err
	}
	logger.Info("wrote icon", "size", flagICOSize, "path", f.Path, "bytes", f.Bytes)
	return nil
}
