package validator

import (
	"fmt"

	"github.com/u9djfgoj/gigathon-project/internal/card"
	"github.com/u9djfgoj/gigathon-project/internal/deck"
	"github.com/u9djfgoj/gigathon-project/internal/game"
)

type ValidationResults struct {
	Errors   []string
	Warnings []string
}

// Valid reports whether no errors were found. Warnings do not count.
func (r ValidationResults) Valid() bool {
	return len(r.Errors) == 0
}

type Validator struct {
	Snapshot game.Snapshot
	Results  ValidationResults
}

func NewValidator(s game.Snapshot) *Validator {
	return &Validator{
		Snapshot: s,
		Results:  ValidationResults{},
	}
}

// Validate checks a table against the rules every reachable game keeps
func Validate(s game.Snapshot) ValidationResults {
	return NewValidator(s).Validate()
}

func (v *Validator) Validate() ValidationResults {
	v.validatePartition()
	v.validateFoundations()
	v.validateStock()
	v.validateWaste()
	v.validateColumns()

	return v.Results
}

func (v *Validator) errorf(format string, args ...any) {
	v.Results.Errors = append(v.Results.Errors, fmt.Sprintf(format, args...))
}

func (v *Validator) warnf(format string, args ...any) {
	v.Results.Warnings = append(v.Results.Warnings, fmt.Sprintf(format, args...))
}

// validatePartition checks every one of the 52 cards is on the table exactly once
func (v *Validator) validatePartition() {
	type identity struct {
		rank card.Rank
		suit card.Suit
	}
	seen := map[identity]string{}
	total := 0

	record := func(where string, cards []card.Card) {
		for i := range cards {
			c := &cards[i]
			id := identity{c.Rank(), c.Suit()}
			total++
			if prev, ok := seen[id]; ok {
				v.errorf("%s appears in both %s and %s", c.Label(), prev, where)
				continue
			}
			seen[id] = where
		}
	}

	record("stock", v.Snapshot.Stock)
	record("waste", v.Snapshot.Waste)
	for i, f := range v.Snapshot.Foundations {
		record(fmt.Sprintf("%s foundation", card.Suit(i)), f)
	}
	for i, col := range v.Snapshot.Columns {
		record(fmt.Sprintf("column %d", i), col)
	}

	if total != deck.Size {
		v.errorf("table holds %d cards, want %d", total, deck.Size)
	}
	for _, s := range card.Suits() {
		for _, r := range card.Ranks() {
			if _, ok := seen[identity{r, s}]; !ok {
				v.errorf("%s%s is missing from the table", r, s.Symbol())
			}
		}
	}
}

// validateFoundations checks each foundation is Ace, 2, 3... of its own suit
func (v *Validator) validateFoundations() {
	for i, f := range v.Snapshot.Foundations {
		suit := card.Suit(i)
		for j := range f {
			c := &f[j]
			if c.Suit() != suit {
				v.errorf("%s foundation holds %s", suit, c.Label())
			}
			if c.Rank() != card.Rank(j+1) {
				v.errorf("%s foundation position %d holds %s", suit, j, c.Label())
			}
		}
	}
}

func (v *Validator) validateStock() {
	for i := range v.Snapshot.Stock {
		if v.Snapshot.Stock[i].FaceUp() {
			v.errorf("stock card %d is face-up", i)
		}
	}
}

func (v *Validator) validateWaste() {
	for i := range v.Snapshot.Waste {
		if !v.Snapshot.Waste[i].FaceUp() {
			v.errorf("waste card %d is face-down", i)
		}
	}
}

// validateColumns checks column tops are face-up, face-down cards sit only
// beneath face-up ones, and the face-up part of each column is a run.
func (v *Validator) validateColumns() {
	for i, col := range v.Snapshot.Columns {
		if len(col) == 0 {
			continue
		}
		if !col[len(col)-1].FaceUp() {
			v.errorf("column %d top card is face-down", i)
		}

		firstUp := -1
		for j := range col {
			if col[j].FaceUp() && firstUp < 0 {
				firstUp = j
			}
			if !col[j].FaceUp() && firstUp >= 0 {
				v.errorf("column %d card %d is face-down above a face-up card", i, j)
			}
		}
		if firstUp < 0 {
			continue
		}
		for j := firstUp + 1; j < len(col); j++ {
			if col[j].FaceUp() && col[j-1].FaceUp() && !col[j].CanStackOn(&col[j-1]) {
				v.warnf("column %d card %d (%s) does not stack on %s", i, j, col[j].Label(), col[j-1].Label())
			}
		}
	}
}
