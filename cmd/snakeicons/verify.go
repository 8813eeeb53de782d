package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/snake-icons/internal/output"
	"github.com/vovakirdan/snake-icons/internal/verify"
)

var verifyCmd = &cobra.Command{
	Use:   "verify",
	Short: "Check written icons against a fresh render",
	Long: `Decode every configured icon from the output directory and compare it
pixel by pixel with what the generator would draw now.

Exits non-zero if any file is missing, unreadable or different.`,
	Args: cobra.NoArgs,
	RunE: runVerify,
}

func runVerify(cmd *cobra.Command, args []string) error {
	logger := newLogger()

	cfg, style, err := loadSettings()
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	failed := 0
	for _, size := range cfg.Sizes {
		path := output.IconPath(cfg.OutputDir, size)

		report, err := verify.File(path, style, size)
		if err != nil {
			logger.Error("cannot verify icon", "size", size, "error", err)
			failed++
			continue
		}
		fmt.Fprintln(out, report)
		if !report.OK() {
			failed++
		}
	}

	if failed > 0 {
		return fmt.Errorf("verify: %d of %d icons failed", failed, len(cfg.Sizes))
	}
	return nil
}
