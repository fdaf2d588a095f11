// window.go — picker window lifecycle. The registry in App tracks at most
// one live window; closing it clears the slot so the next OpenOrFocus
// recreates the window at the default color.
package picker

import (
	"cogentcore.org/core/core"
	"cogentcore.org/core/events"

	"github.com/xob0t/hexswatch/pkg/colormodel"
	"github.com/xob0t/hexswatch/pkg/windowreg"
)

// window is the live picker window handle held by the registry.
type window struct {
	body *core.Body
}

// Raise brings the picker window to the foreground.
func (w *window) Raise() {
	if rw := w.body.Scene.RenderWindow(); rw != nil {
		rw.Raise()
	}
}

// newWindow builds a fresh picker window around a new default-gray model,
// registers the close notification that clears the registry slot, and
// shows it.
func (a *App) newWindow() windowreg.Handle {
	w := &window{}
	w.body = a.buildBody(colormodel.New())
	w.body.OnClose(func(e events.Event) {
		a.reg.Clear(w)
	})
	w.body.RunWindow()
	return w
}
