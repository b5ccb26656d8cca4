package game

import (
	"errors"
	"fmt"

	"github.com/minaorangina/klondike/deck"
)

var (
	ErrInvalidMove      = errors.New("invalid move")
	ErrAceCannotReceive = fmt.Errorf("%w: an ace cannot take a card", ErrInvalidMove)
	ErrSameColour       = fmt.Errorf("%w: colours must alternate", ErrInvalidMove)
	ErrNotOneLower      = fmt.Errorf("%w: card must be one rank lower", ErrInvalidMove)
	ErrKingOnly         = fmt.Errorf("%w: only a king may fill an empty column", ErrInvalidMove)
	ErrAceFirst         = fmt.Errorf("%w: a foundation must start with an ace", ErrInvalidMove)
	ErrWrongSuit        = fmt.Errorf("%w: foundations are built by suit", ErrInvalidMove)
	ErrNotOneHigher     = fmt.Errorf("%w: card must be one rank higher", ErrInvalidMove)
	ErrNotDestination   = fmt.Errorf("%w: foundations do not take cards", ErrInvalidMove)
)

// Rules holds the optional rule variations.
// The zero value plays with the permissive rules: any card may be moved
// onto an empty column and foundations are never a move destination.
type Rules struct {
	// KingOnlyOnEmpty only lets a king fill an empty tableau column
	KingOnlyOnEmpty bool `json:"kingOnlyOnEmpty"`
	// FoundationMoves lets an armed card be moved onto a foundation,
	// built up from the ace by suit
	FoundationMoves bool `json:"foundationMoves"`
}

// DefaultRules returns the permissive rules
func DefaultRules() Rules {
	return Rules{}
}

// IsLegalTableauMove reports whether moving may be placed on a tableau column
// whose top card is dest. A nil dest is an empty column.
func IsLegalTableauMove(dest *deck.Card, moving deck.Card) bool {
	return CheckTableauMove(dest, moving) == nil
}

// CheckTableauMove is IsLegalTableauMove with the reason for a rejection
func CheckTableauMove(dest *deck.Card, moving deck.Card) error {
	if dest == nil {
		return nil
	}
	if dest.Rank == deck.Ace {
		return ErrAceCannotReceive
	}
	if dest.Colour() == moving.Colour() {
		return ErrSameColour
	}
	if dest.Rank != moving.Rank+1 {
		return ErrNotOneLower
	}
	return nil
}

// IsLegalFoundationMove reports whether moving may be placed on a foundation
// whose top card is dest. A nil dest is an empty foundation.
func IsLegalFoundationMove(dest *deck.Card, moving deck.Card) bool {
	return CheckFoundationMove(dest, moving) == nil
}

// CheckFoundationMove is IsLegalFoundationMove with the reason for a rejection
func CheckFoundationMove(dest *deck.Card, moving deck.Card) error {
	if dest == nil {
		if moving.Rank != deck.Ace {
			return ErrAceFirst
		}
		return nil
	}
	if dest.Suit != moving.Suit {
		return ErrWrongSuit
	}
	if moving.Rank != dest.Rank+1 {
		return ErrNotOneHigher
	}
	return nil
}

func (r Rules) checkTableauMove(dest *deck.Card, moving deck.Card) error {
	if dest == nil && r.KingOnlyOnEmpty && moving.Rank != deck.King {
		return ErrKingOnly
	}
	return CheckTableauMove(dest, moving)
}

func (r Rules) checkFoundationMove(dest *deck.Card, moving deck.Card) error {
	if !r.FoundationMoves {
		return ErrNotDestination
	}
	return CheckFoundationMove(dest, moving)
}
