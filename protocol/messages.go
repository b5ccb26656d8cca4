package protocol

import (
	"github.com/minaorangina/klondike/deck"
)

// Outcome is what happened as a result of a Command
type Outcome int

const (
	NoOp Outcome = iota
	StockTurned
	StockReset
	Selected
	Deselected
	MoveApplied
	MoveRejected
)

var outcomeNames = map[Outcome]string{
	NoOp:         "NoOp",
	StockTurned:  "StockTurned",
	StockReset:   "StockReset",
	Selected:     "Selected",
	Deselected:   "Deselected",
	MoveApplied:  "MoveApplied",
	MoveRejected: "MoveRejected",
}

func (o Outcome) String() string {
	return outcomeNames[o]
}

// Result is returned from the engine for every Command.
// It is consumed once; the next Command replaces it.
type Result struct {
	Outcome Outcome   `json:"outcome"`
	Card    deck.Card `json:"card"`
	From    Zone      `json:"from"`
	To      Zone      `json:"to"`
	Error   string    `json:"error,omitempty"`
}

// CardView is a card as presentation should draw it
type CardView struct {
	Card     deck.Card `json:"card"`
	FaceUp   bool      `json:"faceUp"`
	Selected bool      `json:"selected"`
}

// AssetKey returns the image key to draw this card with
func (v CardView) AssetKey() string {
	if !v.FaceUp {
		return deck.CardBackKey
	}
	return v.Card.AssetKey()
}

// PileView summarises a pile where only the top card is visible
type PileView struct {
	Count int       `json:"count"`
	Top   *CardView `json:"top,omitempty"`
}

// Board is a read-only snapshot of every zone
type Board struct {
	Stock       PileView     `json:"stock"`
	Waste       PileView     `json:"waste"`
	Tableau     [][]CardView `json:"tableau"`
	Foundations []PileView   `json:"foundations"`
	Selected    *deck.Card   `json:"selected,omitempty"`
	Won         bool         `json:"won"`
}
