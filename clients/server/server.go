// Package server provides the HexSwatch web preview: a single-page picker
// UI plus an HTTP endpoint that renders the export card as PNG.
package server

import (
	"bytes"
	"embed"
	"fmt"
	"io/fs"
	"net/http"
	"os/exec"
	"runtime"

	"github.com/xob0t/hexswatch/pkg/applog"
	"github.com/xob0t/hexswatch/pkg/colormodel"
	"github.com/xob0t/hexswatch/pkg/swatch"
)

//go:embed web/*
var webContent embed.FS

type srv struct {
	exporter *swatch.Exporter
}

// RunServe starts the web preview server on the given port.
func RunServe(args []string) error {
	port := "8080"
	for i, a := range args {
		if (a == "--port" || a == "-p") && i+1 < len(args) {
			port = args[i+1]
		}
	}

	exporter, err := swatch.NewExporter()
	if err != nil {
		return fmt.Errorf("create exporter: %w", err)
	}
	defer exporter.Close()

	s := &srv{exporter: exporter}

	webFS, err := fs.Sub(webContent, "web")
	if err != nil {
		return fmt.Errorf("embed web: %w", err)
	}

	mux := http.NewServeMux()
	mux.HandleFunc("GET /swatch.png", s.handleSwatch)
	mux.Handle("/", http.FileServer(http.FS(webFS)))

	addr := ":" + port
	applog.Logger().Info("HexSwatch preview", "url", "http://localhost"+addr)

	go openBrowser("http://localhost" + addr)

	return http.ListenAndServe(addr, mux)
}

// handleSwatch renders the export card for ?hex=RRGGBB (with or without
// the leading #). Malformed hex is a 400; the model default is never used
// as a fallback here.
func (s *srv) handleSwatch(w http.ResponseWriter, r *http.Request) {
	model := colormodel.New()
	if !model.SetFromHex(r.URL.Query().Get("hex")) {
		http.Error(w, "invalid hex color: expected 6 hex digits", http.StatusBadRequest)
		return
	}
	snap := model.Snapshot()

	var buf bytes.Buffer
	if err := s.exporter.EncodePNG(&buf, snap); err != nil {
		applog.Logger().Error("render swatch", "hex", snap.Hex, "err", err)
		http.Error(w, "render failed", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "image/png")
	w.Header().Set("Content-Disposition",
		fmt.Sprintf("inline; filename=%q", swatch.SuggestedFileName(snap.Hex)))
	w.Write(buf.Bytes())
}

// openBrowser opens url in the default browser, best effort.
func openBrowser(url string) {
	var cmd *exec.Cmd
	switch runtime.GOOS {
	case "darwin":
		cmd = exec.Command("open", url)
	case "windows":
		cmd = exec.Command("rundll32", "url.dll,FileProtocolHandler", url)
	default:
		cmd = exec.Command("xdg-open", url)
	}
	if err := cmd.Start(); err != nil {
		applog.Logger().Warn("open browser", "err", err)
	}
}
