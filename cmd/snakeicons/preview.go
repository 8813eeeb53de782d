package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/snake-icons/internal/icon"
	"github.com/vovakirdan/snake-icons/internal/preview"
	"github.com/vovakirdan/snake-icons/internal/registry"
)

var (
	flagPreviewSize        int
	flagPreviewStyle       string
	flagPreviewInteractive bool
)

var previewCmd = &cobra.Command{
	Use:   "preview",
	Short: "Show icons in the terminal",
	Long: `Render icons with half-block characters, two pixels per character row.
Icons wider than the terminal are scaled down.

Controls (interactive mode):
  Left/Right - Previous/next size
  Tab        - Next style
  Q/Esc      - Quit

Examples:
  snakeicons preview
  snakeicons preview --size 48 --style canvas
  snakeicons preview -i`,
	Args: cobra.NoArgs,
	RunE: runPreview,
}

func init() {
	previewCmd.Flags().IntVar(&flagPreviewSize, "size", 0, "Icon size to show (default: every configured size)")
	previewCmd.Flags().StringVar(&flagPreviewStyle, "style", "", "Style to show (default: configured style)")
	previewCmd.Flags().BoolVarP(&flagPreviewInteractive, "interactive", "i", false, "Browse sizes and styles interactively")
}

func runPreview(cmd *cobra.Command, args []string) error {
	cfg, style, err := loadSettings()
	if err != nil {
		return err
	}
	if flagPreviewStyle != "" {
		if style, err = registry.Create(flagPreviewStyle); err != nil {
			return err
		}
	}

	sizes := cfg.Sizes
	if flagPreviewSize > 0 {
		sizes = []int{flagPreviewSize}
	}

	// Get terminal size
	width, height := 80, 24
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width, height = w, h
	}

	if flagPreviewInteractive {
		m := preview.NewModel(style.ID, sizes, width, height)
		_, err := tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(cmd.Context())).Run()
		return err
	}

	out := cmd.OutOrStdout()
	for _, size := range sizes {
		fmt.Fprintf(out, "%s %dx%d\n", style.ID, size, size)
		fmt.Fprintln(out, preview.Render(icon.Render(style, size), width))
		fmt.Fprintln(out)
	}
	return nil
}
