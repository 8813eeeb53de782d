package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/snake-icons/internal/storage"
)

var (
	flagHistorySize  int
	flagHistoryLimit int
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show recorded icon generations",
	Long: `Display files recorded by earlier runs that used --db.

Examples:
  snakeicons history --db ~/.snakeicons/history.db
  snakeicons history --db ~/.snakeicons/history.db --size 16`,
	Args: cobra.NoArgs,
	RunE: runHistory,
}

func init() {
	historyCmd.Flags().IntVar(&flagHistorySize, "size", 0, "Only show this icon size")
	historyCmd.Flags().IntVar(&flagHistoryLimit, "limit", 20, "Maximum number of entries")
}

func runHistory(cmd *cobra.Command, args []string) error {
	if flagDBPath == "" {
		return errors.New("history: --db is required")
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		return err
	}
	defer store.Close()

	var assets []storage.Asset
	if flagHistorySize > 0 {
		assets, err = store.AssetsBySize(flagHistorySize, flagHistoryLimit)
	} else {
		assets, err = store.RecentAssets(flagHistoryLimit)
	}
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if len(assets) == 0 {
		fmt.Fprintln(out, "No generations recorded yet.")
		return nil
	}

	fmt.Fprintf(out, "  %-16s  %-8s  %-5s  %-8s  %-12s  %s\n", "Date", "Style", "Size", "Bytes", "SHA256", "Path")
	fmt.Fprintf(out, "  %-16s  %-8s  %-5s  %-8s  %-12s  %s\n", "----", "-----", "----", "-----", "------", "----")
	for _, a := range assets {
		sum := a.SHA256
		if len(sum) > 12 {
			sum = sum[:12]
		}
		fmt.Fprintf(out, "  %-16s  %-8s  %-5d  %-8d  %-12s  %s\n",
			a.CreatedAt.Format("2006-01-02 15:04"), a.Style, a.Size, a.Bytes, sum, a.Path)
	}
	return nil
}
