package game

import "github.com/minaorangina/klondike/deck"

// Pile is an ordered sequence of cards. The last element is the top.
type Pile []deck.Card

// Len returns the number of cards in the pile
func (p Pile) Len() int {
	return len(p)
}

// Top returns the top card without removing it
func (p Pile) Top() (deck.Card, bool) {
	if len(p) == 0 {
		return deck.Card{}, false
	}
	return p[len(p)-1], true
}

func (p *Pile) Push(c deck.Card) {
	*p = append(*p, c)
}

// Pop removes and returns the top card
func (p *Pile) Pop() (deck.Card, bool) {
	top, ok := p.Top()
	if !ok {
		return top, false
	}
	*p = (*p)[:len(*p)-1]
	return top, true
}

// Remove removes c from wherever it sits in the pile
func (p *Pile) Remove(c deck.Card) bool {
	for i, card := range *p {
		if card == c {
			*p = append((*p)[:i], (*p)[i+1:]...)
			return true
		}
	}
	return false
}

func (p Pile) Contains(c deck.Card) bool {
	for _, card := range p {
		if card == c {
			return true
		}
	}
	return false
}

// IsTop reports whether c is the top card of the pile
func (p Pile) IsTop(c deck.Card) bool {
	top, ok := p.Top()
	return ok && top == c
}
