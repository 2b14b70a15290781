package widget

// CollapseStore records the collapsed flag per item position when one
// widget instance is recycled across many logical rows, the classic
// list-recycling pattern. The list collaborator owns the store; the widget
// reads and writes only the flag at its bound position.
type CollapseStore struct {
	flags map[int]bool
}

// NewCollapseStore creates an empty store.
func NewCollapseStore() *CollapseStore {
	return &CollapseStore{flags: make(map[int]bool)}
}

// Get returns the collapsed flag for position. Positions never written
// default to collapsed.
func (s *CollapseStore) Get(position int) bool {
	if v, ok := s.flags[position]; ok {
		return v
	}
	return true
}

// Put records the collapsed flag for position.
func (s *CollapseStore) Put(position int, collapsed bool) {
	s.flags[position] = collapsed
}

// Remove forgets the flag for position, restoring the collapsed default.
func (s *CollapseStore) Remove(position int) {
	delete(s.flags, position)
}

// Clear forgets all recorded flags.
func (s *CollapseStore) Clear() {
	clear(s.flags)
}
