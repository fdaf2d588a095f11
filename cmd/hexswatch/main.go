// HexSwatch — color picker with PNG swatch export.
//
// Usage:
//
//	hexswatch                 Open the picker window
//	hexswatch serve [--port 8080]
//	hexswatch help
package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/xob0t/hexswatch/clients/picker"
	"github.com/xob0t/hexswatch/clients/server"
	"github.com/xob0t/hexswatch/pkg/applog"
)

func main() {
	applog.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, nil)))

	if len(os.Args) > 1 {
		switch os.Args[1] {
		case "serve":
			if err := server.RunServe(os.Args[2:]); err != nil {
				fatal(err)
			}
		case "help", "-h", "--help":
			printUsage()
		default:
			printUsage()
			os.Exit(1)
		}
		return
	}

	app, err := picker.NewApp()
	if err != nil {
		fatal(err)
	}
	app.Run()
}

func fatal(err error) {
	fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	os.Exit(1)
}

func printUsage() {
	fmt.Print(`HexSwatch — Color Picker & Swatch Export

USAGE:
    hexswatch                   Open the picker window
    hexswatch serve [--port N]  Start the web preview UI
    hexswatch help              Show this help

The picker window adjusts a color with RGB sliders or a HEX field,
copies the HEX value to the clipboard, and exports a rendered swatch
card as PNG. Only one picker window exists at a time.

For headless swatch generation, see the swatchgen command.
`)
}
