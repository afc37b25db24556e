package seeder

// Tally counts the operations attempted for one entity type.
type Tally struct {
	Attempted int
	Created   int
	Failed    int
}

// Summary keeps per-entity tallies in the order entities were first seen.
type Summary struct {
	order   []string
	tallies map[string]*Tally
}

func NewSummary() *Summary {
	return &Summary{tallies: make(map[string]*Tally)}
}

func (s *Summary) add(entity string, ok bool) {
	t := s.tally(entity)
	t.Attempted++
	if ok {
		t.Created++
	} else {
		t.Failed++
	}
}

func (s *Summary) tally(entity string) *Tally {
	t, exists := s.tallies[entity]
	if !exists {
		t = new(Tally)
		s.tallies[entity] = t
		s.order = append(s.order, entity)
	}
	return t
}

// Get returns a copy of the tally for entity; unseen entities are all zero.
func (s *Summary) Get(entity string) Tally {
	if t, ok := s.tallies[entity]; ok {
		return *t
	}
	return Tally{}
}

func (s *Summary) Created(entity string) int {
	return s.Get(entity).Created
}

// Entities lists every entity with at least one attempt, first seen first.
func (s *Summary) Entities() []string {
	out := make([]string, len(s.order))
	copy(out, s.order)
	return out
}
