package state

// Preferences are the layout settings that may change while the program runs.
type Preferences struct {
	Breakpoint  int
	DrawerWidth int
	ShowFooter  bool
}

type PreferenceStore interface {
	Snapshot() Preferences
	Apply(Preferences) bool
	ShowFooter() bool
}

type preferenceStore struct {
	prefs Preferences
}

func NewPreferenceStore(initial Preferences) PreferenceStore {
	return &preferenceStore{prefs: initial}
}

func (s *preferenceStore) Snapshot() Preferences {
	return s.prefs
}

// Apply replaces every preference and reports whether anything changed.
func (s *preferenceStore) Apply(p Preferences) bool {
	if p == s.prefs {
		return false
	}
	s.prefs = p
	return true
}

func (s *preferenceStore) ShowFooter() bool {
	return s.prefs.ShowFooter
}
