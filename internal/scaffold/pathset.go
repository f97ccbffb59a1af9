package scaffold

// pathSet is an insertion-ordered set of paths. The first Add of a path
// fixes its position; later Adds are ignored.
type pathSet struct {
	order []string
	seen  map[string]struct{}
}

func newPathSet() *pathSet {
	return &pathSet{order: []string{}, seen: make(map[string]struct{})}
}

// Add appends p unless already present and reports whether it was added.
func (s *pathSet) Add(p string) bool {
	if _, ok := s.seen[p]; ok {
		return false
	}
	s.seen[p] = struct{}{}
	s.order = append(s.order, p)
	return true
}

func (s *pathSet) Paths() []string { return s.order }
