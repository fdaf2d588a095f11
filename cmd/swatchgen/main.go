// swatchgen — headless swatch card generation.
//
// Usage:
//
//	swatchgen -o <file.png> [--color "#AABBCC"] [--font path.ttf]
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/xob0t/hexswatch/pkg/applog"
	"github.com/xob0t/hexswatch/pkg/colormodel"
	"github.com/xob0t/hexswatch/pkg/swatch"
)

func main() {
	applog.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, nil)))

	if err := run(os.Args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string) error {
	fs := flag.NewFlagSet("swatchgen", flag.ExitOnError)

	var (
		output   string
		colorStr string
		fontPath string
	)

	fs.StringVar(&output, "o", "", "Output file path (.png)")
	fs.StringVar(&output, "output", "", "Output file path (.png)")
	fs.StringVar(&colorStr, "color", "#7F7F7F", "Swatch color as 6-digit hex")
	fs.StringVar(&fontPath, "font", "", "Custom TTF for the hex label (default: embedded)")

	fs.Usage = printUsage
	if err := fs.Parse(args); err != nil {
		return err
	}

	if output == "" {
		printUsage()
		return fmt.Errorf("output file is required (-o)")
	}

	model := colormodel.New()
	if !model.SetFromHex(colorStr) {
		return fmt.Errorf("invalid color %q: expected 6-digit hex", colorStr)
	}

	exporter, err := swatch.NewExporter(swatch.WithFontPath(fontPath))
	if err != nil {
		return err
	}
	defer exporter.Close()

	snap := model.Snapshot()
	fmt.Printf("Generating: %s (%s)\n", output, snap.Hex)
	if err := exporter.WriteFile(output, snap); err != nil {
		return err
	}
	fmt.Printf("Done: %s\n", output)
	return nil
}

func printUsage() {
	fmt.Print(`swatchgen — Headless Swatch Card Generation

USAGE:
    swatchgen -o <file.png> [options]

OPTIONS:
    -o, --output <path>    Output PNG file (required)
    --color <hex>          Swatch color, e.g. "#AABBCC" (default: #7F7F7F)
    --font <path>          Custom TTF for the hex label

EXAMPLES:
    swatchgen -o gray.png
    swatchgen -o lime.png --color "#00FF00"
    swatchgen -o AB12CD_ExportedColor.png --color AB12CD
`)
}
