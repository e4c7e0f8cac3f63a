package dispatcher

import (
	"errors"
	"testing"

	"github.com/atomicstack/wirecalc/internal/backend"
	"github.com/atomicstack/wirecalc/internal/state"
)

func TestHandlePreferences(t *testing.T) {
	store := state.NewPreferenceStore(state.Preferences{Breakpoint: 100, DrawerWidth: 30})
	d := New(store)

	res := d.Handle(backend.Event{Kind: backend.KindPreferences, Data: state.Preferences{Breakpoint: 80, DrawerWidth: 30}})
	if !res.PreferencesUpdated || res.Err != nil {
		t.Fatalf("expected update, got %#v", res)
	}
	if store.Snapshot().Breakpoint != 80 {
		t.Fatalf("expected breakpoint 80, got %d", store.Snapshot().Breakpoint)
	}

	res = d.Handle(backend.Event{Kind: backend.KindPreferences, Data: state.Preferences{Breakpoint: 80, DrawerWidth: 30}})
	if res.PreferencesUpdated {
		t.Fatalf("unchanged preferences should not report an update")
	}
}

func TestHandleErrorLeavesStore(t *testing.T) {
	store := state.NewPreferenceStore(state.Preferences{Breakpoint: 100})
	d := New(store)
	boom := errors.New("parse failed")

	res := d.Handle(backend.Event{Kind: backend.KindPreferences, Err: boom})
	if !errors.Is(res.Err, boom) || res.PreferencesUpdated {
		t.Fatalf("unexpected result %#v", res)
	}
	res = d.Handle(backend.Event{Kind: backend.KindPreferences, Data: "junk"})
	if res.Err == nil {
		t.Fatalf("expected payload type error")
	}
	if store.Snapshot().Breakpoint != 100 {
		t.Fatalf("store modified on failure")
	}
}
