package domain

// IDGenerator hands out monotonically increasing task IDs. Each generation
// run owns exactly one generator, threaded through every phase generator,
// so IDs are unique plan-wide and reproducible across runs. This replaces
// the hidden shared-counter pattern: there is no package-level state.
type IDGenerator struct {
	next int
}

// NewIDGenerator returns a generator starting at 1.
func NewIDGenerator() *IDGenerator {
	return &IDGenerator{next: 1}
}

// Next returns the current ID and advances the counter.
func (g *IDGenerator) Next() int {
	id := g.next
	g.next++
	return id
}

// Peek returns the ID the next call to Next would produce.
func (g *IDGenerator) Peek() int {
	return g.next
}
