package game

import (
	"errors"
	"fmt"

	"github.com/minaorangina/klondike/deck"
	"github.com/minaorangina/klondike/protocol"
)

const (
	NumColumns     = 7
	NumFoundations = 4
	cardsPerSuit   = 13
)

var (
	ErrCardMissing    = errors.New("card missing from every zone")
	ErrCardDuplicated = errors.New("card found in more than one place")
	ErrWrongFace      = errors.New("card is facing the wrong way")
	ErrBadSelection   = errors.New("selected card is not a face-up top card")
)

// Opts configures a new game
type Opts struct {
	Rules Rules
	// RNG shuffles the deck. A nil RNG is seeded from the clock.
	RNG deck.RNG
}

// ExistingOpts lays out a game in a given position
type ExistingOpts struct {
	Rules       Rules
	Stock       Pile
	Waste       Pile
	Tableau     [NumColumns]Pile
	Foundations [NumFoundations]Pile
	// TableauFaceDown is how many cards at the bottom of each column are face down
	TableauFaceDown [NumColumns]int
}

// Klondike holds the complete state of one game.
// It is not safe for concurrent use.
type Klondike struct {
	rules       Rules
	stock       Pile
	waste       Pile
	tableau     [NumColumns]Pile
	foundations [NumFoundations]Pile
	faceUp      map[deck.Card]bool
	location    map[deck.Card]protocol.Zone
	selection   selection
}

// New shuffles and deals a new game
func New(opts Opts) *Klondike {
	k := &Klondike{rules: opts.Rules}
	k.NewGame(opts.RNG)
	return k
}

// Existing constructs a game from a given layout
func Existing(opts ExistingOpts) *Klondike {
	k := &Klondike{rules: opts.Rules}
	k.reset()

	for _, c := range opts.Stock {
		k.place(c, stockZone())
	}
	for _, c := range opts.Waste {
		k.place(c, wasteZone())
		k.faceUp[c] = true
	}
	for i, column := range opts.Tableau {
		for j, c := range column {
			k.place(c, tableauZone(i))
			k.faceUp[c] = j >= opts.TableauFaceDown[i]
		}
	}
	for i, foundation := range opts.Foundations {
		for _, c := range foundation {
			k.place(c, foundationZone(i))
			k.faceUp[c] = true
		}
	}

	k.revealCards()
	return k
}

// NewGame discards the current cards and deals a fresh shuffled deck
func (k *Klondike) NewGame(rng deck.RNG) {
	d := deck.New()
	d.Shuffle(rng)
	k.deal(d)
	k.revealCards()
}

func (k *Klondike) Rules() Rules {
	return k.rules
}

// HandleCommand applies one command and reports what happened.
// It panics if the command names a zone that does not exist.
func (k *Klondike) HandleCommand(cmd protocol.Command) protocol.Result {
	var res protocol.Result

	switch cmd.Cmd {
	case protocol.ClickStock:
		res = k.clickStock()

	case protocol.ClickWaste:
		res = k.clickWaste()

	case protocol.ClickTableau:
		res = k.clickTableau(cmd.Column, cmd.Row)

	case protocol.ClickFoundation:
		res = k.clickFoundation(cmd.Index)

	case protocol.ClickElsewhere:
		res = k.deselect()

	default:
		panic(fmt.Sprintf("unrecognised command %s", cmd))
	}

	k.revealCards()
	return res
}

// IsWon reports whether every foundation is complete
func (k *Klondike) IsWon() bool {
	for _, f := range k.foundations {
		if f.Len() != cardsPerSuit {
			return false
		}
	}
	return true
}

func (k *Klondike) clickStock() protocol.Result {
	k.selection.clear()

	if k.stock.Len() == 0 {
		if k.waste.Len() == 0 {
			return protocol.Result{Outcome: protocol.NoOp}
		}
		k.resetStock()
		return protocol.Result{Outcome: protocol.StockReset, From: wasteZone(), To: stockZone()}
	}

	c := k.turnStock()
	return protocol.Result{Outcome: protocol.StockTurned, Card: c, From: stockZone(), To: wasteZone()}
}

func (k *Klondike) clickWaste() protocol.Result {
	top, ok := k.waste.Top()
	if !ok {
		return k.deselect()
	}
	if k.selection.is(top) {
		return k.deselect()
	}

	k.selection.arm(top)
	return protocol.Result{Outcome: protocol.Selected, Card: top, From: wasteZone()}
}

func (k *Klondike) clickTableau(col, row int) protocol.Result {
	zone := tableauZone(col)
	column := k.pile(zone)

	if column.Len() == 0 {
		if row != 0 {
			panic(fmt.Sprintf("row %d out of range for empty column %d", row, col))
		}
		if armed, ok := k.selection.armed(); ok {
			return k.attemptMove(armed, zone)
		}
		return protocol.Result{Outcome: protocol.NoOp}
	}

	if row < 0 || row >= column.Len() {
		panic(fmt.Sprintf("row %d out of range for column %d", row, col))
	}

	c := (*column)[row]
	if k.selection.is(c) {
		return k.deselect()
	}

	// Only the top card can be picked up or moved onto. A face-up card further
	// down is not armed either: runs never move, so it could not go anywhere.
	if !column.IsTop(c) || !k.faceUp[c] {
		return k.deselect()
	}

	if armed, ok := k.selection.armed(); ok {
		return k.attemptMove(armed, zone)
	}

	k.selection.arm(c)
	return protocol.Result{Outcome: protocol.Selected, Card: c, From: zone}
}

func (k *Klondike) clickFoundation(idx int) protocol.Result {
	zone := foundationZone(idx)
	top, ok := k.pile(zone).Top()

	if ok && k.selection.is(top) {
		return k.deselect()
	}

	if armed, isArmed := k.selection.armed(); isArmed && k.rules.FoundationMoves {
		return k.attemptMove(armed, zone)
	}

	if !ok {
		return protocol.Result{Outcome: protocol.NoOp}
	}

	k.selection.arm(top)
	return protocol.Result{Outcome: protocol.Selected, Card: top, From: zone}
}

func (k *Klondike) deselect() protocol.Result {
	c, wasArmed := k.selection.armed()
	k.selection.clear()
	if !wasArmed {
		return protocol.Result{Outcome: protocol.NoOp}
	}
	return protocol.Result{Outcome: protocol.Deselected, Card: c, From: k.location[c]}
}

// attemptMove tries to move the armed card onto the top of a zone.
// The selection is cleared whatever the outcome.
func (k *Klondike) attemptMove(c deck.Card, to protocol.Zone) protocol.Result {
	from := k.location[c]
	k.selection.clear()

	var dest *deck.Card
	if top, ok := k.pile(to).Top(); ok {
		dest = &top
	}

	var err error
	switch to.Kind {
	case protocol.TableauZone:
		err = k.rules.checkTableauMove(dest, c)
	case protocol.FoundationZone:
		err = k.rules.checkFoundationMove(dest, c)
	default:
		err = ErrInvalidMove
	}

	if err != nil {
		return protocol.Result{Outcome: protocol.MoveRejected, Card: c, From: from, To: to, Error: err.Error()}
	}

	k.transfer(c, to)
	return protocol.Result{Outcome: protocol.MoveApplied, Card: c, From: from, To: to}
}

// turnStock moves the top of the stock face up onto the waste
func (k *Klondike) turnStock() deck.Card {
	c, _ := k.stock.Pop()
	k.place(c, wasteZone())
	k.faceUp[c] = true
	return c
}

// resetStock turns the whole waste back over onto the stock
func (k *Klondike) resetStock() {
	for {
		c, ok := k.waste.Pop()
		if !ok {
			return
		}
		k.place(c, stockZone())
		k.faceUp[c] = false
	}
}

// revealCards turns over any face-down card on top of a tableau column
func (k *Klondike) revealCards() {
	for _, column := range k.tableau {
		if top, ok := column.Top(); ok {
			k.faceUp[top] = true
		}
	}
}

func (k *Klondike) reset() {
	k.stock = Pile{}
	k.waste = Pile{}
	for i := range k.tableau {
		k.tableau[i] = Pile{}
	}
	for i := range k.foundations {
		k.foundations[i] = Pile{}
	}
	k.faceUp = make(map[deck.Card]bool, deck.Size)
	k.location = make(map[deck.Card]protocol.Zone, deck.Size)
	k.selection.clear()
}

// deal lays out column i with i+1 cards from the top of the deck, the last
// card dealt ending up on top. The rest of the deck becomes the stock in the
// same order.
func (k *Klondike) deal(d deck.Deck) {
	k.reset()

	for i := 0; i < NumColumns; i++ {
		cards := d.Deal(i + 1)
		if cards == nil {
			panic("not enough cards to deal")
		}
		for _, c := range cards {
			k.place(c, tableauZone(i))
		}
	}

	for _, c := range d {
		k.place(c, stockZone())
	}
}

func (k *Klondike) place(c deck.Card, z protocol.Zone) {
	k.pile(z).Push(c)
	k.location[c] = z
}

func (k *Klondike) transfer(c deck.Card, to protocol.Zone) {
	from, ok := k.location[c]
	if !ok || !k.pile(from).Remove(c) {
		panic(fmt.Sprintf("%s is not on the board", c))
	}
	k.place(c, to)
}

func (k *Klondike) pile(z protocol.Zone) *Pile {
	switch z.Kind {
	case protocol.StockZone:
		return &k.stock
	case protocol.WasteZone:
		return &k.waste
	case protocol.TableauZone:
		if z.Index < 0 || z.Index >= NumColumns {
			panic(fmt.Sprintf("tableau column %d out of range", z.Index))
		}
		return &k.tableau[z.Index]
	case protocol.FoundationZone:
		if z.Index < 0 || z.Index >= NumFoundations {
			panic(fmt.Sprintf("foundation %d out of range", z.Index))
		}
		return &k.foundations[z.Index]
	}
	panic(fmt.Sprintf("unrecognised zone %s", z))
}

func stockZone() protocol.Zone { return protocol.Zone{Kind: protocol.StockZone} }
func wasteZone() protocol.Zone { return protocol.Zone{Kind: protocol.WasteZone} }

func tableauZone(i int) protocol.Zone {
	return protocol.Zone{Kind: protocol.TableauZone, Index: i}
}

func foundationZone(i int) protocol.Zone {
	return protocol.Zone{Kind: protocol.FoundationZone, Index: i}
}
