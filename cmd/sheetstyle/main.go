// Package main provides the CLI entry point for sheetstyle-go.
package main

import (
	"fmt"
	"log"
	"os"

	"github.com/spf13/cobra"
	"github.com/ukaji3/sheetstyle-go/pkg/sheetstyle/output"
	"github.com/ukaji3/sheetstyle-go/pkg/sheetstyle/theme"
)

var (
	outputPath string
	pretty     bool
	prefix     string
	themePath  string
	verbose    bool
)

var logger = log.New(os.Stderr, "sheetstyle: ", 0)

func main() {
	rootCmd := &cobra.Command{
		Use:   "sheetstyle",
		Short: "Build and inspect spreadsheet styling XML",
		Long: `sheetstyle-go renders DrawingML shape properties from the Office gallery
presets and reads workbook metadata and theme colors from xlsx files.`,
		SilenceUsage: true,
	}

	rootCmd.PersistentFlags().StringVarP(&outputPath, "output", "o", "", "Output file path (default: stdout)")
	rootCmd.PersistentFlags().BoolVar(&pretty, "pretty", false, "Pretty-print output")
	rootCmd.PersistentFlags().StringVar(&themePath, "theme", "", "Resolve theme colors against the theme of this xlsx file")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Log skipped parts and fallbacks")

	rootCmd.AddCommand(
		newGradientCmd(),
		newShadowCmd(),
		newReflectionCmd(),
		newCameraCmd(),
		newPaletteCmd(),
		newInspectCmd(),
	)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// loadPalette returns the palette of --theme, or the default Office palette.
func loadPalette() (theme.Palette, error) {
	if themePath == "" {
		return theme.DefaultPalette(), nil
	}
	if _, err := os.Stat(themePath); os.IsNotExist(err) {
		return nil, fmt.Errorf("file not found: %s", themePath)
	}
	p, err := theme.Load(themePath)
	if err != nil {
		return nil, fmt.Errorf("failed to load theme: %w", err)
	}
	if verbose {
		logger.Printf("theme colors from %s", themePath)
	}
	return p, nil
}

// writeXML serializes an element and writes it to --output or stdout.
func writeXML(v any) error {
	data, err := output.ToXML(v, pretty)
	if err != nil {
		return fmt.Errorf("serialization failed: %w", err)
	}
	return write(data)
}

func write(data []byte) error {
	if outputPath != "" {
		if err := os.WriteFile(outputPath, data, 0644); err != nil {
			return fmt.Errorf("failed to write output: %w", err)
		}
		return nil
	}
	fmt.Println(string(data))
	return nil
}
