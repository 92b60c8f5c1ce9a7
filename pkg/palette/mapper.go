package palette

import "github.com/matzehuels/genogrid/pkg/colour"

// Mapper assigns palette colours to categorical values in first-seen order.
// When there are more categories than colours the assignment wraps around.
// A Mapper is not safe for concurrent use.
type Mapper struct {
	colors []colour.RGB
	index  map[string]int
}

// NewMapper creates a mapper over the colours of p.
func NewMapper(p Palette) *Mapper {
	return &Mapper{colors: p.Colors(), index: make(map[string]int)}
}

// Color returns the colour for value, assigning the next free colour to
// values not seen before.
func (m *Mapper) Color(value string) colour.RGB {
	i, ok := m.index[value]
	if !ok {
		i = len(m.index)
		m.index[value] = i
	}
	return m.colors[i%len(m.colors)]
}

// Categories returns the number of distinct values seen so far.
func (m *Mapper) Categories() int {
	return len(m.index)
}
