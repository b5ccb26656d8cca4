package game

import "github.com/minaorangina/klondike/deck"

// selection tracks at most one armed card
type selection struct {
	state SelectionState
	card  deck.Card
}

func (s *selection) arm(c deck.Card) {
	s.state = Armed
	s.card = c
}

func (s *selection) clear() {
	s.state = Idle
	s.card = deck.Card{}
}

func (s selection) armed() (deck.Card, bool) {
	return s.card, s.state == Armed
}

func (s selection) is(c deck.Card) bool {
	return s.state == Armed && s.card == c
}
