package front

import (
	"encoding/json"
	"strings"
	"testing"
)

func TestParseType(t *testing.T) {
	cases := []struct {
		in      string
		want    Type
		wantErr bool
	}{
		{"campaign", TypeCampaign, false},
		{"Adventure", TypeAdventure, false},
		{"  CAMPAIGN  ", TypeCampaign, false},
		{"", TypeAdventure, false},
		{"dungeon", TypeAdventure, true},
	}
	for _, tc := range cases {
		got, err := ParseType(tc.in)
		if (err != nil) != tc.wantErr {
			t.Fatalf("ParseType(%q) err = %v, wantErr %v", tc.in, err, tc.wantErr)
		}
		if got != tc.want {
			t.Fatalf("ParseType(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestParseXP(t *testing.T) {
	for _, xp := range SecretXP {
		if got, err := ParseXP(xp); err != nil || got != xp {
			t.Fatalf("ParseXP(%d) = %d, %v", xp, got, err)
		}
	}
	if _, err := ParseXP(40); err == nil {
		t.Fatalf("expected error for xp 40")
	}
}

func TestNewFrontEmptyChildrenMarshalAsArrays(t *testing.T) {
	f := NewFront("The Hollow King", TypeCampaign)
	b, err := json.Marshal(Document{Fronts: []Front{f}})
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	s := string(b)
	for _, key := range []string{`"cast":[]`, `"stakes":[]`, `"playerHooks":[]`, `"dangers":[]`} {
		if !strings.Contains(s, key) {
			t.Fatalf("expected %s in %s", key, s)
		}
	}
}

func TestSecretRevealedAtNullUntilRevealed(t *testing.T) {
	s := NewSecret(30, "The cult leader is the mayor's brother.")
	b, err := json.Marshal(s)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if !strings.Contains(string(b), `"revealedAt":null`) {
		t.Fatalf("expected explicit null revealedAt, got %s", b)
	}
}
