package repository

// WordlistRepository loads the known-common password list. Implementations
// must collapse duplicates and return an empty set, not an error, when the
// backing source is absent.
type WordlistRepository interface {
	Load() (map[string]struct{}, error)
}
