package game

import "fmt"

// Source names where a move takes its card(s) from: the waste top, or a
// column starting at a given card index.
type Source struct {
	waste  bool
	column int
	index  int
}

// FromWaste addresses the top card of the waste
func FromWaste() Source {
	return Source{waste: true}
}

// FromColumn addresses the card at index in column col
func FromColumn(col, index int) Source {
	return Source{column: col, index: index}
}

func (s Source) IsWaste() bool { return s.waste }
func (s Source) Column() int   { return s.column }
func (s Source) Index() int    { return s.index }

func (s Source) String() string {
	if s.waste {
		return "waste"
	}
	return fmt.Sprintf("column %d card %d", s.column, s.index)
}
