package app

import "github.com/grimportent/fronts/pkg/front"

// Snapshot is a point-in-time copy of everything a renderer needs. UIs
// that run round-trips on background goroutines render from snapshots,
// so the frame being drawn can never be the document a mutation is
// still rewriting.
type Snapshot struct {
	Doc             *front.Document
	ExpandedFronts  map[string]bool
	ExpandedDangers map[string]bool
	Err             string
	Dirty           bool
}

// Snapshot copies the document and view state under the in-flight lock.
func (s *Service) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return Snapshot{
		Doc:             s.doc.Clone(),
		ExpandedFronts:  copySet(s.State.ExpandedFronts),
		ExpandedDangers: copySet(s.State.ExpandedDangers),
		Err:             s.State.Err,
		Dirty:           s.State.Dirty,
	}
}

func copySet(in map[string]bool) map[string]bool {
	out := make(map[string]bool, len(in))
	for id := range in {
		out[id] = true
	}
	return out
}
