package cmd

import (
	"context"
	"fmt"
	"os"
	"sort"

	"github.com/spf13/cobra"

	"github.com/zhubert/pdfzen/internal/backend"
	"github.com/zhubert/pdfzen/internal/config"
)

var installDeps bool

var checkDepsCmd = &cobra.Command{
	Use:   "check-deps",
	Short: "Check the image rendering helper and its dependencies",
	Long: `Checks whether the image rendering helper is available and which of its
Python dependencies are installed. PDF-to-images conversion needs the
helper; every other tool works without it.`,
	RunE: runCheckDeps,
}

func init() {
	checkDepsCmd.Flags().BoolVar(&installDeps, "install", false, "Install missing dependencies via pip")
	rootCmd.AddCommand(checkDepsCmd)
}

func runCheckDeps(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("error loading config: %w", err)
	}

	b, err := backend.Discover(cfg.GetBackendPath())
	if err != nil {
		fmt.Println("Rendering helper: not found")
		fmt.Println()
		fmt.Println("Install it to ~/.pdfzen/backend/pdfzen_backend.py or put")
		fmt.Println("pdfzen-backend on your PATH.")
		return fmt.Errorf("rendering helper not found")
	}
	fmt.Printf("Rendering helper: %s\n", b.Command())

	if installDeps {
		ctx := context.Background()
		res, err := b.InstallDeps(ctx)
		if err != nil {
			return fmt.Errorf("installing dependencies: %w", err)
		}
		if res.Message != "" {
			fmt.Println(res.Message)
		}
	}

	deps, err := b.CheckDeps(context.Background())
	if len(deps) == 0 && err != nil {
		return fmt.Errorf("checking dependencies: %w", err)
	}

	names := make([]string, 0, len(deps))
	for name := range deps {
		names = append(names, name)
	}
	sort.Strings(names)

	missing := 0
	for _, name := range names {
		dep := deps[name]
		if dep.Installed {
			if dep.Version != "" {
				fmt.Printf("  ✓ %s (%s)\n", name, dep.Version)
			} else {
				fmt.Printf("  ✓ %s\n", name)
			}
		} else {
			fmt.Printf("  ✗ %s\n", name)
			missing++
		}
	}

	if missing > 0 {
		fmt.Fprintf(os.Stderr, "\n%d dependency(ies) missing. Run 'pdfzen check-deps --install' to install them.\n", missing)
		return fmt.Errorf("%d missing dependencies", missing)
	}
	fmt.Println("\nAll dependencies installed.")
	return nil
}
