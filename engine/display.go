package engine

import (
	"fmt"
	"io"
	"strings"

	"github.com/minaorangina/klondike/deck"
	"github.com/minaorangina/klondike/protocol"
)

const (
	welcomeText      = "Let's play Klondike! (game %s, seed %d)\n"
	helpText         = "Commands:\n  s, stock         turn the stock\n  w, waste         pick up the waste card\n  t, tab C R       click column C (1-7), row R (1 is the bottom card)\n  f, found N       click foundation N (1-4)\n  b, bg            click the background\n  n, new [seed]    deal a new game\n  board            show the board\n  h, help          show this help\n  q, quit          leave the game\n"
	promptText       = "> "
	invalidMoveText  = "Invalid move!"
	wonText          = "\nYou won! 🎉\n"
	goodbyeText      = "Bye!\n"
	faceDownText     = "##"
	emptyText        = "--"
	selectedTemplate = "[%s]"
)

var rankCodes = []string{"", "A", "2", "3", "4", "5", "6", "7", "8", "9", "10", "J", "Q", "K"}

var suitCodes = []string{"", "♣", "♦", "♥", "♠"}

func SendText(w io.Writer, text string, a ...interface{}) {
	fmt.Fprintf(w, text, a...)
}

func cardCode(c deck.Card) string {
	return rankCodes[c.Rank] + suitCodes[c.Suit]
}

func cardViewText(v protocol.CardView) string {
	if !v.FaceUp {
		return faceDownText
	}
	if v.Selected {
		return fmt.Sprintf(selectedTemplate, cardCode(v.Card))
	}
	return cardCode(v.Card)
}

func pileViewText(pv protocol.PileView) string {
	if pv.Top == nil {
		return emptyText
	}
	return cardViewText(*pv.Top)
}

// BuildBoardText lays the board out one tableau column per line
func BuildBoardText(b protocol.Board) string {
	var sb strings.Builder

	stockText := emptyText
	if b.Stock.Count > 0 {
		stockText = faceDownText
	}
	fmt.Fprintf(&sb, "Stock %s (%d)   Waste %s (%d)\n", stockText, b.Stock.Count, pileViewText(b.Waste), b.Waste.Count)

	foundations := make([]string, 0, len(b.Foundations))
	for i, f := range b.Foundations {
		foundations = append(foundations, fmt.Sprintf("%d: %s", i+1, pileViewText(f)))
	}
	fmt.Fprintf(&sb, "Foundations  %s\n\n", strings.Join(foundations, "  "))

	for i, column := range b.Tableau {
		cards := make([]string, 0, len(column))
		for _, v := range column {
			cards = append(cards, cardViewText(v))
		}
		if len(cards) == 0 {
			cards = append(cards, emptyText)
		}
		fmt.Fprintf(&sb, "%d | %s\n", i+1, strings.Join(cards, " "))
	}

	return sb.String()
}

// ResultText describes a command result for a player
func ResultText(res protocol.Result) string {
	switch res.Outcome {
	case protocol.StockTurned:
		return fmt.Sprintf("Turned over the %s", res.Card)
	case protocol.StockReset:
		return "Turned the waste back over"
	case protocol.Selected:
		return fmt.Sprintf("Picked up the %s", res.Card)
	case protocol.Deselected:
		return fmt.Sprintf("Put down the %s", res.Card)
	case protocol.MoveApplied:
		return fmt.Sprintf("Moved the %s from %s to %s", res.Card, zoneText(res.From), zoneText(res.To))
	case protocol.MoveRejected:
		return fmt.Sprintf("%s (%s)", invalidMoveText, res.Error)
	}
	return ""
}

// zoneText numbers zones from 1 to match what players type
func zoneText(z protocol.Zone) string {
	switch z.Kind {
	case protocol.TableauZone:
		return fmt.Sprintf("column %d", z.Index+1)
	case protocol.FoundationZone:
		return fmt.Sprintf("foundation %d", z.Index+1)
	}
	return strings.ToLower(z.Kind.String())
}
