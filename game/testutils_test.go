package game

import (
	"github.com/minaorangina/klondike/deck"
)

func card(rank deck.Rank, suit deck.Suit) deck.Card {
	return deck.NewCard(rank, suit)
}

// layout builds a game from opts, putting every unused card in the stock
func layout(opts ExistingOpts) *Klondike {
	used := map[deck.Card]struct{}{}
	mark := func(p Pile) {
		for _, c := range p {
			used[c] = struct{}{}
		}
	}

	mark(opts.Stock)
	mark(opts.Waste)
	for _, p := range opts.Tableau {
		mark(p)
	}
	for _, p := range opts.Foundations {
		mark(p)
	}

	for _, c := range deck.New() {
		if _, ok := used[c]; !ok {
			opts.Stock = append(opts.Stock, c)
		}
	}

	return Existing(opts)
}

func fullSuit(suit deck.Suit) Pile {
	p := Pile{}
	for r := deck.Ace; r <= deck.King; r++ {
		p = append(p, card(r, suit))
	}
	return p
}
