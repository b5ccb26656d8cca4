package deck

import (
	"math/rand"
	"time"
)

// Size is the number of cards in a full deck
const Size = 52

// RNG is the source of randomness used to shuffle.
// *rand.Rand satisfies it.
type RNG interface {
	Intn(n int) int
}

// Seeded returns a deterministic RNG
func Seeded(seed int64) RNG {
	return rand.New(rand.NewSource(seed))
}

// Random returns an RNG seeded from the clock
func Random() RNG {
	return Seeded(time.Now().UnixNano())
}

// Deck represents a deck of cards.
// The last element is the top of the deck.
type Deck []Card

// New creates a deck of cards, one per suit and rank
func New() Deck {
	cards := make([]Card, 0, Size)
	for suit := Clubs; suit <= Spades; suit++ {
		for rank := Ace; rank <= King; rank++ {
			cards = append(cards, NewCard(rank, suit))
		}
	}
	return cards
}

// Shuffle shuffles the deck in place using a Fisher-Yates shuffle.
// On each pass a card is picked from the unshuffled front of the deck
// and swapped into the last unshuffled position.
func (d *Deck) Shuffle(rng RNG) {
	if rng == nil {
		rng = Random()
	}
	actualDeck := *d
	n := len(actualDeck)
	for i := 0; i < n; i++ {
		j, last := rng.Intn(n-i), n-1-i
		actualDeck[j], actualDeck[last] = actualDeck[last], actualDeck[j]
	}
}

// Draw removes and returns the top card of the deck
func (d *Deck) Draw() (Card, bool) {
	n := len(*d)
	if n == 0 {
		return Card{}, false
	}
	top := (*d)[n-1]
	*d = (*d)[:n-1]
	return top, true
}

// Deal takes n cards off the top of the deck in the order they are dealt,
// so the first element was the top card. It returns nil and leaves the deck
// alone if there are not n cards left.
func (d *Deck) Deal(n int) []Card {
	if n < 0 || n > len(*d) {
		return nil
	}
	dealt := make([]Card, n)
	for i := range dealt {
		dealt[i], _ = d.Draw()
	}
	return dealt
}
