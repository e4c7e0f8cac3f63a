package dispatcher

import (
	"fmt"

	"github.com/atomicstack/wirecalc/internal/backend"
	"github.com/atomicstack/wirecalc/internal/state"
)

type Result struct {
	PreferencesUpdated bool
	Err                error
}

type Dispatcher struct {
	prefs state.PreferenceStore
}

func New(p state.PreferenceStore) *Dispatcher {
	return &Dispatcher{prefs: p}
}

// Handle applies a backend event to the stores. Failed reloads leave the
// stores untouched and surface the error in the result.
func (d *Dispatcher) Handle(evt backend.Event) Result {
	var res Result
	if evt.Err != nil {
		res.Err = evt.Err
		return res
	}
	switch evt.Kind {
	case backend.KindPreferences:
		prefs, ok := evt.Data.(state.Preferences)
		if !ok {
			res.Err = fmt.Errorf("unexpected %s payload %T", evt.Kind, evt.Data)
			return res
		}
		res.PreferencesUpdated = d.prefs.Apply(prefs)
	}
	return res
}
