package store

// SetPreferences merges the patch into the user preferences. Any subset
// of fields may be patched independently.
func (s *Store) SetPreferences(p PreferencesPatch) {
	s.mu.Lock()
	defer s.mu.Unlock()

	applyPreferencesPatch(&s.prefs, p)

	s.markPendingLocked()
	s.scheduleLocked()
}
