package cmd

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/zhubert/pdfzen/internal/config"
	"github.com/zhubert/pdfzen/internal/history"
	"github.com/zhubert/pdfzen/internal/logger"
)

var skipConfirm bool

var cleanCmd = &cobra.Command{
	Use:   "clean",
	Short: "Remove operation history, recent files, and log files",
	Long: `Clears the operation history, forgets recently used files, and removes
log files. Output PDFs produced by past operations are not touched.

It will prompt for confirmation before proceeding unless the --yes flag
is used.`,
	RunE: runClean,
}

func init() {
	cleanCmd.Flags().BoolVarP(&skipConfirm, "yes", "y", false, "Skip confirmation prompt")
	rootCmd.AddCommand(cleanCmd)
}

func runClean(cmd *cobra.Command, args []string) error {
	return runCleanWithReader(os.Stdin)
}

// runCleanWithReader allows injecting a reader for testing
func runCleanWithReader(input io.Reader) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("error loading config: %w", err)
	}

	historyPath, err := config.HistoryPath()
	if err != nil {
		return fmt.Errorf("error resolving history path: %w", err)
	}
	hist := history.Load(historyPath)

	entryCount := len(hist.Entries())
	recentCount := len(cfg.GetRecentFiles())

	if entryCount == 0 && recentCount == 0 {
		fmt.Println("Nothing to clean besides log files.")
	} else {
		fmt.Println("This will clean:")
		if entryCount > 0 {
			fmt.Printf("  - %d history entry(ies)\n", entryCount)
		}
		if recentCount > 0 {
			fmt.Printf("  - %d recent file(s)\n", recentCount)
		}
	}
	fmt.Println("  - The debug log in /tmp")

	if !skipConfirm {
		if !confirm(input, "Continue?") {
			fmt.Println("Aborted.")
			return nil
		}
	}

	if err := hist.Clear(); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: error clearing history: %v\n", err)
	}

	cfg.ClearRecentFiles()
	if err := cfg.Save(); err != nil {
		return fmt.Errorf("error saving config: %w", err)
	}

	logsCleared, err := logger.ClearLogs()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: error clearing logs: %v\n", err)
	}

	fmt.Println()
	fmt.Println("Cleaned:")
	if entryCount > 0 {
		fmt.Printf("  - %d history entry(ies) cleared\n", entryCount)
	}
	if recentCount > 0 {
		fmt.Printf("  - %d recent file(s) forgotten\n", recentCount)
	}
	if logsCleared > 0 {
		fmt.Printf("  - %d log file(s) removed\n", logsCleared)
	}

	return nil
}

// confirm prompts the user for y/n confirmation
func confirm(input io.Reader, prompt string) bool {
	reader := bufio.NewReader(input)
	fmt.Printf("%s [y/N]: ", prompt)
	response, err := reader.ReadString('\n')
	if err != nil {
		return false
	}
	response = strings.ToLower(strings.TrimSpace(response))
	return response == "y" || response == "yes"
}
