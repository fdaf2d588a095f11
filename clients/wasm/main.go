//go:build js

// HexSwatch WASM — client-side swatch renderer.
// Compiled with: GOOS=js GOARCH=wasm go build -o hexswatch.wasm ./clients/wasm/
package main

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"syscall/js"

	"github.com/xob0t/hexswatch/pkg/colormodel"
	"github.com/xob0t/hexswatch/pkg/swatch"
)

var exporter *swatch.Exporter

func main() {
	var err error
	exporter, err = swatch.NewExporter()
	if err != nil {
		fmt.Println("HexSwatch WASM: exporter init failed:", err)
		return
	}

	js.Global().Set("goRenderSwatch", js.FuncOf(renderSwatch))
	js.Global().Set("goSuggestedFileName", js.FuncOf(suggestedFileName))
	js.Global().Set("goReady", js.ValueOf(true))

	// Block forever (WASM must not exit).
	select {}
}

// goRenderSwatch(hex) — render the export card and return it as a base64
// PNG string, or "error: ..." on failure. Malformed hex is an error here
// because the browser caller has no prior state to fall back to.
func renderSwatch(this js.Value, args []js.Value) interface{} {
	if len(args) < 1 {
		return js.ValueOf("error: need hex string")
	}

	model := colormodel.New()
	if !model.SetFromHex(args[0].String()) {
		return js.ValueOf("error: invalid hex color")
	}

	var buf bytes.Buffer
	if err := exporter.EncodePNG(&buf, model.Snapshot()); err != nil {
		return js.ValueOf("error: " + err.Error())
	}
	return js.ValueOf(base64.StdEncoding.EncodeToString(buf.Bytes()))
}

// goSuggestedFileName(hex) — default download name for a hex color.
func suggestedFileName(this js.Value, args []js.Value) interface{} {
	if len(args) < 1 {
		return js.ValueOf("error: need hex string")
	}
	return js.ValueOf(swatch.SuggestedFileName(args[0].String()))
}
