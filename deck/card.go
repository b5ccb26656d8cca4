package deck

import (
	"fmt"
	"strings"
)

// Rank represents a rank in a deck of cards
type Rank int

var rankNames = []string{"", "Ace", "Two", "Three", "Four", "Five", "Six", "Seven", "Eight", "Nine", "Ten", "Jack", "Queen", "King"}

const (
	NullRank Rank = iota
	Ace
	Two
	Three
	Four
	Five
	Six
	Seven
	Eight
	Nine
	Ten
	Jack
	Queen
	King
)

func (r Rank) String() string {
	return rankNames[r]
}

// Suit represents a suit in a deck of cards
type Suit int

var suitNames = []string{"", "Clubs", "Diamonds", "Hearts", "Spades"}

const (
	NullSuit Suit = iota
	Clubs
	Diamonds
	Hearts
	Spades
)

func (s Suit) String() string {
	return suitNames[s]
}

// Colour is derived from a suit
type Colour int

const (
	Black Colour = iota
	Red
)

func (c Colour) String() string {
	if c == Red {
		return "Red"
	}
	return "Black"
}

// Colour returns the colour of the suit
func (s Suit) Colour() Colour {
	if s == Diamonds || s == Hearts {
		return Red
	}
	return Black
}

// CardBackKey is the asset key used for any face-down card
const CardBackKey = "cardback"

// Card is the identity of a playing card.
// Exactly one of each rank/suit pair exists in a game, so a Card
// can be compared with == and used as a map key.
type Card struct {
	Rank Rank `json:"rank"`
	Suit Suit `json:"suit"`
}

// NewCard constructs a card. It panics if rank or suit are out of range.
func NewCard(rank Rank, suit Suit) Card {
	if rank < Ace || rank > King || suit < Clubs || suit > Spades {
		panic(fmt.Sprintf("card out of range: rank %d, suit %d", rank, suit))
	}
	return Card{Rank: rank, Suit: suit}
}

// IsNull reports whether c is the zero Card
func (c Card) IsNull() bool {
	return c.Rank == NullRank && c.Suit == NullSuit
}

// Colour returns the card's colour
func (c Card) Colour() Colour {
	return c.Suit.Colour()
}

func (c Card) String() string {
	if c.IsNull() {
		return "no card"
	}
	return fmt.Sprintf("%s of %s", c.Rank, c.Suit)
}

// AssetKey returns the image key for a face-up card, e.g. "sevenofhearts".
// Suit names are already plural, matching the "<rank>of<suit>s" format.
func (c Card) AssetKey() string {
	return strings.ToLower(c.Rank.String()) + "of" + strings.ToLower(c.Suit.String())
}
