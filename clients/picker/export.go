// export.go — PNG export flow: render + encode in memory, then hand the
// bytes to a save dialog. The exporter never writes to disk itself here.
package picker

import (
	"bytes"
	"os"

	"cogentcore.org/core/core"
	"cogentcore.org/core/events"

	"github.com/xob0t/hexswatch/pkg/applog"
	"github.com/xob0t/hexswatch/pkg/colormodel"
	"github.com/xob0t/hexswatch/pkg/swatch"
)

// export renders the card for snap and opens a save dialog seeded with
// the suggested file name. Render and encode failures abort the export
// with a log entry only; cancellation is a normal outcome with no side
// effects. Write failures are logged, never surfaced as dialogs.
func (a *App) export(ctx core.Widget, snap colormodel.Snapshot) {
	var buf bytes.Buffer
	if err := a.exporter.EncodePNG(&buf, snap); err != nil {
		applog.Logger().Error("render export card", "hex", snap.Hex, "err", err)
		return
	}

	d := core.NewBody("Export color")
	fp := core.NewFilePicker(d).SetFilename(swatch.SuggestedFileName(snap.Hex))
	fp.SetExtensions(".png")
	d.AddBottomBar(func(bar *core.Frame) {
		d.AddCancel(bar)
		d.AddOK(bar).SetText("Save").OnClick(func(e events.Event) {
			dest := fp.SelectedFile()
			if dest == "" {
				return
			}
			if err := os.WriteFile(dest, buf.Bytes(), 0o644); err != nil {
				applog.Logger().Error("write export file", "path", dest, "err", err)
			}
		})
	})
	d.RunWindowDialog(ctx)
}
