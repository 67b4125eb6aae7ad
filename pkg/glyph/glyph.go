package glyph

import "fmt"

type Glyph struct {
	Key     string
	Symbol  string
	Meaning string
}

const (
	escape        = "\x1b"
	resetCode     = 0
	boldCode      = 1
	underlineCode = 4
	strikeCode    = 9
)

func Strike(in string) string {
	return fmt.Sprintf("%s[%dm%s%s[%dm", escape, strikeCode, in, escape, resetCode)
}

func Bold(in string) string {
	return fmt.Sprintf("%s[%dm%s%s[%dm", escape, boldCode, in, escape, resetCode)
}

func Underline(in string) string {
	return fmt.Sprintf("%s[%dm%s%s[%dm", escape, underlineCode, in, escape, resetCode)
}

type Mark int

const (
	Campaign Mark = iota
	Adventure
	Danger
	Portent
	PortentDone
	SecretHidden
	SecretRevealed
	Cast
	Stake
	Hook
	Location
)

func DefaultGlyphs() []Glyph {
	return []Glyph{
		{Key: "C", Symbol: "◈", Meaning: "campaign front"},
		{Key: "A", Symbol: "◇", Meaning: "adventure front"},
		{Key: "d", Symbol: "☠", Meaning: "danger"},
		{Key: ".", Symbol: "○", Meaning: "grim portent pending"},
		{Key: "x", Symbol: "●", Meaning: "grim portent come to pass"},
		{Key: "s", Symbol: "▣", Meaning: "secret still hidden"},
		{Key: "S", Symbol: "▢", Meaning: "secret revealed"},
		{Key: "c", Symbol: "♟", Meaning: "cast member"},
		{Key: "?", Symbol: "?", Meaning: "stake question"},
		{Key: "h", Symbol: "↪", Meaning: "player hook"},
		{Key: "@", Symbol: "⌖", Meaning: "location"},
	}
}

func (m Mark) Glyph() Glyph {
	return DefaultGlyphs()[m]
}

func (m Mark) String() string {
	return m.Glyph().Symbol
}
