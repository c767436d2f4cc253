package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/zhubert/pdfzen/internal/pdf"
)

var mergeOutput string

var mergeCmd = &cobra.Command{
	Use:   "merge <file.pdf> <file.pdf> [more.pdf...]",
	Short: "Merge PDFs into one file without opening the interface",
	Args:  cobra.MinimumNArgs(2),
	RunE:  runMerge,
}

func init() {
	mergeCmd.Flags().StringVarP(&mergeOutput, "output", "o", "", "Output path (default: <first input>_merged.pdf)")
	rootCmd.AddCommand(mergeCmd)
}

func runMerge(cmd *cobra.Command, args []string) error {
	out := mergeOutput
	if out == "" {
		out = pdf.EnsureUnique(pdf.OutputPath(args[0], "merged", ""))
	}
	if err := pdf.Merge(args, out); err != nil {
		return err
	}
	fmt.Printf("Merged %d files into %s\n", len(args), out)
	return nil
}
