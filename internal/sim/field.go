package sim

import "iter"

// Field is the set of live rocks. It is the only code path that adds or
// removes them.
type Field struct {
	live  []*Obstacle
	index map[*Obstacle]struct{}
}

// NewField creates an empty field.
func NewField() *Field {
	return &Field{
		live:  make([]*Obstacle, 0, 16),
		index: make(map[*Obstacle]struct{}),
	}
}

// Add inserts a rock. The same instance cannot be added twice.
func (f *Field) Add(o *Obstacle) error {
	if o == nil {
		return ErrNilObstacle
	}
	if _, ok := f.index[o]; ok {
		return ErrDuplicateObstacle
	}
	f.index[o] = struct{}{}
	f.live = append(f.live, o)
	return nil
}

// Advance prunes rocks that are no longer visible and moves the rest left by
// their speed. Visibility is checked before moving, so a rock that leaves the
// screen this tick is pruned on the next one. It returns the number pruned.
func (f *Field) Advance() int {
	removed := 0
	kept := f.live[:0]
	for _, o := range f.live {
		if !o.Visible() {
			delete(f.index, o)
			removed++
			continue
		}
		o.move()
		kept = append(kept, o)
	}
	clear(f.live[len(kept):])
	f.live = kept
	return removed
}

// All returns the live rocks as copies. Each range over the result starts a
// fresh traversal of the current set.
func (f *Field) All() iter.Seq[Obstacle] {
	return func(yield func(Obstacle) bool) {
		for _, o := range f.live {
			if !yield(*o) {
				return
			}
		}
	}
}

// Len returns the number of live rocks.
func (f *Field) Len() int {
	return len(f.live)
}
