package link

import "math"

// Enumerator hands out the strategies for one request a page at a time. It
// only stores a cursor into Kinds, so strategies are built as they are
// fetched and cloning is cheap.
type Enumerator struct {
	factory *Factory
	request Request
	cursor  uint
}

// Next returns up to count strategies from the cursor and advances past
// them. full reports whether exactly count were returned.
func (e *Enumerator) Next(count uint) (strategies []Strategy, full bool) {
	for uint(len(strategies)) < count && e.cursor < uint(len(Kinds)) {
		strategies = append(strategies, e.factory.New(Kinds[e.cursor], e.request))
		e.cursor++
	}

	return strategies, uint(len(strategies)) == count
}

// Skip moves the cursor forward without building anything. The cursor may
// go past the end, after which Next returns nothing.
func (e *Enumerator) Skip(count uint) {
	if count > math.MaxUint-e.cursor {
		e.cursor = math.MaxUint
		return
	}

	e.cursor += count
}

func (e *Enumerator) Reset() {
	e.cursor = 0
}

// Clone returns an independent enumerator at the same position.
func (e *Enumerator) Clone() *Enumerator {
	clone := *e
	return &clone
}

func (e *Enumerator) Request() Request {
	return e.request
}
