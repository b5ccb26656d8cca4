package game

import (
	"fmt"

	"github.com/minaorangina/klondike/deck"
	"github.com/minaorangina/klondike/protocol"
)

func (k *Klondike) StockCount() int {
	return k.stock.Len()
}

func (k *Klondike) WasteCount() int {
	return k.waste.Len()
}

// WasteTop returns the only playable waste card
func (k *Klondike) WasteTop() (deck.Card, bool) {
	return k.waste.Top()
}

// Column returns every card in a tableau column, bottom first
func (k *Klondike) Column(col int) []protocol.CardView {
	column := k.pile(tableauZone(col))
	views := make([]protocol.CardView, 0, column.Len())
	for _, c := range *column {
		views = append(views, k.view(c))
	}
	return views
}

func (k *Klondike) ColumnTop(col int) (deck.Card, bool) {
	return k.pile(tableauZone(col)).Top()
}

func (k *Klondike) FoundationTop(idx int) (deck.Card, bool) {
	return k.pile(foundationZone(idx)).Top()
}

func (k *Klondike) FoundationCount(idx int) int {
	return k.pile(foundationZone(idx)).Len()
}

// Selected returns the armed card, if any
func (k *Klondike) Selected() (deck.Card, bool) {
	return k.selection.armed()
}

func (k *Klondike) SelectionState() SelectionState {
	return k.selection.state
}

func (k *Klondike) IsFaceUp(c deck.Card) bool {
	return k.faceUp[c]
}

func (k *Klondike) IsSelected(c deck.Card) bool {
	return k.selection.is(c)
}

// Location returns the zone holding c
func (k *Klondike) Location(c deck.Card) (protocol.Zone, bool) {
	z, ok := k.location[c]
	return z, ok
}

// Board returns a snapshot of everything presentation needs to draw
func (k *Klondike) Board() protocol.Board {
	b := protocol.Board{
		Stock:       k.pileView(k.stock),
		Waste:       k.pileView(k.waste),
		Tableau:     make([][]protocol.CardView, NumColumns),
		Foundations: make([]protocol.PileView, NumFoundations),
		Won:         k.IsWon(),
	}
	for i := range k.tableau {
		b.Tableau[i] = k.Column(i)
	}
	for i, f := range k.foundations {
		b.Foundations[i] = k.pileView(f)
	}
	if c, ok := k.selection.armed(); ok {
		b.Selected = &c
	}
	return b
}

func (k *Klondike) view(c deck.Card) protocol.CardView {
	return protocol.CardView{
		Card:     c,
		FaceUp:   k.faceUp[c],
		Selected: k.selection.is(c),
	}
}

func (k *Klondike) pileView(p Pile) protocol.PileView {
	pv := protocol.PileView{Count: p.Len()}
	if top, ok := p.Top(); ok {
		v := k.view(top)
		pv.Top = &v
	}
	return pv
}

// CheckInvariants verifies that every card is in exactly one zone,
// faces the right way for that zone, and that any selection is legal.
func (k *Klondike) CheckInvariants() error {
	seen := map[deck.Card]protocol.Zone{}

	check := func(p Pile, z protocol.Zone) error {
		for _, c := range p {
			if prev, dup := seen[c]; dup {
				return fmt.Errorf("%w: %s in %s and %s", ErrCardDuplicated, c, prev, z)
			}
			seen[c] = z
			if loc := k.location[c]; loc != z {
				return fmt.Errorf("%w: %s is in %s but indexed in %s", ErrCardDuplicated, c, z, loc)
			}
		}
		return nil
	}

	if err := check(k.stock, stockZone()); err != nil {
		return err
	}
	if err := check(k.waste, wasteZone()); err != nil {
		return err
	}
	for i, column := range k.tableau {
		if err := check(column, tableauZone(i)); err != nil {
			return err
		}
	}
	for i, f := range k.foundations {
		if err := check(f, foundationZone(i)); err != nil {
			return err
		}
	}

	for _, c := range deck.New() {
		if _, ok := seen[c]; !ok {
			return fmt.Errorf("%w: %s", ErrCardMissing, c)
		}
	}

	if err := allFacing(k.stock, k.faceUp, false); err != nil {
		return err
	}
	if err := allFacing(k.waste, k.faceUp, true); err != nil {
		return err
	}
	for _, f := range k.foundations {
		if err := allFacing(f, k.faceUp, true); err != nil {
			return err
		}
	}
	for i, column := range k.tableau {
		if top, ok := column.Top(); ok && !k.faceUp[top] {
			return fmt.Errorf("%w: top of column %d is face down", ErrWrongFace, i)
		}
	}

	if c, ok := k.selection.armed(); ok {
		z := k.location[c]
		if z.Kind == protocol.StockZone || !k.pile(z).IsTop(c) || !k.faceUp[c] {
			return fmt.Errorf("%w: %s in %s", ErrBadSelection, c, z)
		}
	}

	return nil
}
