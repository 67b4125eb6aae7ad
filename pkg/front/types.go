// Package front defines the campaign front data model and lookup helpers.
package front

import (
	"fmt"
	"strings"
	"time"
)

// Type identifies the scale of a front.
type Type string

const (
	// TypeCampaign is a long-arc front spanning the whole campaign.
	TypeCampaign Type = "campaign"
	// TypeAdventure is a short-arc front tied to a single adventure.
	TypeAdventure Type = "adventure"
)

// AllTypes returns the list of supported front types.
func AllTypes() []Type {
	return []Type{TypeCampaign, TypeAdventure}
}

// ParseType converts a string to a Type or returns an error for unknown values.
// The empty string defaults to TypeAdventure.
func ParseType(raw string) (Type, error) {
	t := Type(strings.ToLower(strings.TrimSpace(raw)))
	if t == "" {
		return TypeAdventure, nil
	}
	for _, candidate := range AllTypes() {
		if candidate == t {
			return candidate, nil
		}
	}
	return TypeAdventure, fmt.Errorf("front: unknown type %q", raw)
}

// MustType parses the input and panics on error. Intended for tests/config.
func MustType(raw string) Type {
	t, err := ParseType(raw)
	if err != nil {
		panic(err)
	}
	return t
}

// SecretXP lists the experience values a secret may carry.
var SecretXP = []int{20, 30, 50}

// ParseXP validates an experience value for a secret.
func ParseXP(xp int) (int, error) {
	for _, v := range SecretXP {
		if v == xp {
			return v, nil
		}
	}
	return 0, fmt.Errorf("front: secret xp must be one of %v, got %d", SecretXP, xp)
}

// GrimPortent is one escalation step on a danger's doom clock.
type GrimPortent struct {
	ID        string `json:"id"`
	Text      string `json:"text"`
	Completed bool   `json:"completed"`
}

// Secret is discoverable lore tied to a danger. RevealedAt is set by the
// server when the secret is revealed and cleared when it is hidden again.
type Secret struct {
	ID         string     `json:"id"`
	XP         int        `json:"xp"`
	Text       string     `json:"text"`
	Revealed   bool       `json:"revealed"`
	RevealedAt *time.Time `json:"revealedAt"`
}

// Danger is a specific threat inside a front.
type Danger struct {
	ID            string        `json:"id"`
	Name          string        `json:"name"`
	DangerType    string        `json:"dangerType"`
	Impulse       string        `json:"impulse"`
	ImpendingDoom string        `json:"impendingDoom"`
	GrimPortents  []GrimPortent `json:"grimPortents"`
	Secrets       []Secret      `json:"secrets"`
	Locations     []string      `json:"locations"`
}

// Front is an antagonistic storyline container owning its dangers.
type Front struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Type        Type     `json:"type"`
	Cast        []string `json:"cast"`
	Stakes      []string `json:"stakes"`
	PlayerHooks []string `json:"playerHooks"`
	Dangers     []Danger `json:"dangers"`
}

// Document is the root persistence unit. It is replaced wholesale after
// every write; it is never patched incrementally.
type Document struct {
	Fronts []Front `json:"fronts"`
}

// NewFront builds a front with empty (non-nil) child slices so the document
// round-trips as [] rather than null.
func NewFront(name string, t Type) Front {
	return Front{
		ID:          NewID("front"),
		Name:        name,
		Type:        t,
		Cast:        []string{},
		Stakes:      []string{},
		PlayerHooks: []string{},
		Dangers:     []Danger{},
	}
}

// NewDanger builds a danger with empty child slices.
func NewDanger(name, dangerType, impulse, doom string) Danger {
	return Danger{
		ID:            NewID("danger"),
		Name:          name,
		DangerType:    dangerType,
		Impulse:       impulse,
		ImpendingDoom: doom,
		GrimPortents:  []GrimPortent{},
		Secrets:       []Secret{},
		Locations:     []string{},
	}
}

// NewSecret builds an unrevealed secret.
func NewSecret(xp int, text string) Secret {
	return Secret{
		ID:   NewID("secret"),
		XP:   xp,
		Text: text,
	}
}

// NewPortent builds an incomplete grim portent.
func NewPortent(text string) GrimPortent {
	return GrimPortent{
		ID:   NewID("portent"),
		Text: text,
	}
}
