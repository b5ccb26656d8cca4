package engine

import (
	"bytes"
	"sync"

	"github.com/minaorangina/klondike/deck"
	"github.com/minaorangina/klondike/game"
)

// TestBuffer is used in tests for io
type TestBuffer struct {
	buf bytes.Buffer
	m   sync.Mutex
}

func NewTestBuffer() *TestBuffer {
	return &TestBuffer{}
}

func (tb *TestBuffer) Read(p []byte) (int, error) {
	tb.m.Lock()
	defer tb.m.Unlock()
	return tb.buf.Read(p)
}

func (tb *TestBuffer) Write(p []byte) (int, error) {
	tb.m.Lock()
	defer tb.m.Unlock()
	return tb.buf.Write(p)
}

func (tb *TestBuffer) String() string {
	tb.m.Lock()
	defer tb.m.Unlock()
	return tb.buf.String()
}

func seed(s int64) *int64 {
	return &s
}

// oneMoveFromWinning has every card on the foundations except the king of
// spades, which is on the waste
func oneMoveFromWinning() *game.Klondike {
	foundations := [game.NumFoundations]game.Pile{}
	for i, suit := range []deck.Suit{deck.Clubs, deck.Diamonds, deck.Hearts, deck.Spades} {
		for r := deck.Ace; r <= deck.King; r++ {
			if suit == deck.Spades && r == deck.King {
				continue
			}
			foundations[i] = append(foundations[i], deck.NewCard(r, suit))
		}
	}

	return game.Existing(game.ExistingOpts{
		Rules:       game.Rules{FoundationMoves: true},
		Waste:       game.Pile{deck.NewCard(deck.King, deck.Spades)},
		Foundations: foundations,
	})
}
