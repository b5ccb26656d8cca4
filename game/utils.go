package game

import (
	"fmt"

	"github.com/minaorangina/klondike/deck"
)

func allFacing(p Pile, faceUp map[deck.Card]bool, up bool) error {
	for _, c := range p {
		if faceUp[c] != up {
			return fmt.Errorf("%w: %s", ErrWrongFace, c)
		}
	}
	return nil
}
