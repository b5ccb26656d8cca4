package protocol

import "fmt"

// Cmd represents a resolved click from the presentation layer
type Cmd int

const (
	Null Cmd = iota
	ClickStock
	ClickWaste
	ClickTableau
	ClickFoundation
	ClickElsewhere
)

var CmdNames = map[Cmd]string{
	Null:            "Null",
	ClickStock:      "ClickStock",
	ClickWaste:      "ClickWaste",
	ClickTableau:    "ClickTableau",
	ClickFoundation: "ClickFoundation",
	ClickElsewhere:  "ClickElsewhere",
}

var NameToCmd = map[string]Cmd{
	"Null":            Null,
	"ClickStock":      ClickStock,
	"ClickWaste":      ClickWaste,
	"ClickTableau":    ClickTableau,
	"ClickFoundation": ClickFoundation,
	"ClickElsewhere":  ClickElsewhere,
}

func (c Cmd) String() string {
	return CmdNames[c]
}

// Command is a single engine command.
// Column and Row are only read for ClickTableau, Index only for ClickFoundation.
type Command struct {
	Cmd    Cmd `json:"command"`
	Column int `json:"column,omitempty"`
	Row    int `json:"row,omitempty"`
	Index  int `json:"index,omitempty"`
}

func Stock() Command     { return Command{Cmd: ClickStock} }
func Waste() Command     { return Command{Cmd: ClickWaste} }
func Elsewhere() Command { return Command{Cmd: ClickElsewhere} }

func Tableau(column, row int) Command {
	return Command{Cmd: ClickTableau, Column: column, Row: row}
}

func Foundation(index int) Command {
	return Command{Cmd: ClickFoundation, Index: index}
}

func (c Command) String() string {
	switch c.Cmd {
	case ClickTableau:
		return fmt.Sprintf("%s(%d,%d)", c.Cmd, c.Column, c.Row)
	case ClickFoundation:
		return fmt.Sprintf("%s(%d)", c.Cmd, c.Index)
	}
	return c.Cmd.String()
}

// ZoneKind is one of the five kinds of card zone
type ZoneKind int

const (
	NoZone ZoneKind = iota
	StockZone
	WasteZone
	TableauZone
	FoundationZone
)

var zoneKindNames = map[ZoneKind]string{
	NoZone:         "None",
	StockZone:      "Stock",
	WasteZone:      "Waste",
	TableauZone:    "Tableau",
	FoundationZone: "Foundation",
}

func (k ZoneKind) String() string {
	return zoneKindNames[k]
}

// Zone identifies one pile. Index is the column or foundation number.
type Zone struct {
	Kind  ZoneKind `json:"kind"`
	Index int      `json:"index"`
}

func (z Zone) String() string {
	switch z.Kind {
	case TableauZone, FoundationZone:
		return fmt.Sprintf("%s %d", z.Kind, z.Index)
	}
	return z.Kind.String()
}
