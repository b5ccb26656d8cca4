package game

import (
	"testing"

	"github.com/minaorangina/klondike/deck"
	"github.com/stretchr/testify/assert"
)

func TestPile(t *testing.T) {
	aceOfSpades, twoOfHearts, kingOfClubs := card(deck.Ace, deck.Spades), card(deck.Two, deck.Hearts), card(deck.King, deck.Clubs)

	t.Run("empty pile has no top", func(t *testing.T) {
		p := Pile{}
		_, ok := p.Top()
		assert.False(t, ok)
		_, ok = p.Pop()
		assert.False(t, ok)
	})

	t.Run("last in, first out", func(t *testing.T) {
		p := Pile{}
		p.Push(aceOfSpades)
		p.Push(twoOfHearts)

		top, ok := p.Top()
		assert.True(t, ok)
		assert.Equal(t, twoOfHearts, top)
		assert.True(t, p.IsTop(twoOfHearts))
		assert.False(t, p.IsTop(aceOfSpades))

		popped, _ := p.Pop()
		assert.Equal(t, twoOfHearts, popped)
		assert.Equal(t, 1, p.Len())
	})

	t.Run("removes by identity", func(t *testing.T) {
		p := Pile{aceOfSpades, twoOfHearts, kingOfClubs}

		assert.True(t, p.Remove(twoOfHearts))
		assert.Equal(t, Pile{aceOfSpades, kingOfClubs}, p)
		assert.False(t, p.Contains(twoOfHearts))

		assert.False(t, p.Remove(twoOfHearts))
		assert.Equal(t, 2, p.Len())
	})
}
