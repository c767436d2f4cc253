package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/zhubert/pdfzen/internal/pdf"
)

var compressOutput string

var compressCmd = &cobra.Command{
	Use:   "compress <file.pdf>",
	Short: "Compress a PDF without opening the interface",
	Args:  cobra.ExactArgs(1),
	RunE:  runCompress,
}

func init() {
	compressCmd.Flags().StringVarP(&compressOutput, "output", "o", "", "Output path (default: <input>_compressed.pdf)")
	rootCmd.AddCommand(compressCmd)
}

func runCompress(cmd *cobra.Command, args []string) error {
	out := compressOutput
	if out == "" {
		out = pdf.EnsureUnique(pdf.OutputPath(args[0], "compressed", ""))
	}
	res, err := pdf.Compress(args[0], out)
	if err != nil {
		return err
	}
	fmt.Printf("Compressed %s\n", args[0])
	fmt.Printf("  %s -> %s (%s)\n", pdf.FormatSize(res.OriginalSize), pdf.FormatSize(res.CompressedSize), res.Ratio())
	fmt.Printf("  wrote %s\n", out)
	return nil
}
