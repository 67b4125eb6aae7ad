package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss/v2"

	"github.com/grimportent/fronts/pkg/front"
	"github.com/grimportent/fronts/pkg/glyph"
)

type rowKind int

const (
	rowFront rowKind = iota
	rowCast
	rowStake
	rowHook
	rowDanger
	rowPortent
	rowSecret
	rowLocation
)

// row is one rendered line of the tree. Line items carry their index
// within the owning slice; lore rows carry entity ids.
type row struct {
	kind     rowKind
	frontID  string
	dangerID string
	entityID string
	index    int
	text     string
	depth    int
}

var (
	faintStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	doneStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Strikethrough(true)
	frontStyle  = lipgloss.NewStyle().Bold(true)
	revealStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("178"))
)

// flatten rebuilds the visible rows from the snapshot document and the
// snapshot expansion sets. Ids recorded for entities that no longer
// exist simply produce no rows.
func (m Model) flatten() []row {
	doc := m.view.Doc
	if doc == nil {
		return nil
	}
	rows := make([]row, 0, len(doc.Fronts)*4)
	for fi := range doc.Fronts {
		f := &doc.Fronts[fi]
		rows = append(rows, row{kind: rowFront, frontID: f.ID, entityID: f.ID, text: f.Name})
		if !m.view.ExpandedFronts[f.ID] {
			continue
		}
		for i, c := range f.Cast {
			rows = append(rows, row{kind: rowCast, frontID: f.ID, index: i, text: c, depth: 1})
		}
		for i, s := range f.Stakes {
			rows = append(rows, row{kind: rowStake, frontID: f.ID, index: i, text: s, depth: 1})
		}
		for i, h := range f.PlayerHooks {
			rows = append(rows, row{kind: rowHook, frontID: f.ID, index: i, text: h, depth: 1})
		}
		for di := range f.Dangers {
			d := &f.Dangers[di]
			rows = append(rows, row{kind: rowDanger, frontID: f.ID, dangerID: d.ID, entityID: d.ID, text: d.Name, depth: 1})
			if !m.view.ExpandedDangers[d.ID] {
				continue
			}
			for _, p := range d.GrimPortents {
				rows = append(rows, row{kind: rowPortent, frontID: f.ID, dangerID: d.ID, entityID: p.ID, text: p.Text, depth: 2})
			}
			for _, s := range d.Secrets {
				rows = append(rows, row{kind: rowSecret, frontID: f.ID, dangerID: d.ID, entityID: s.ID, text: s.Text, depth: 2})
			}
			for i, l := range d.Locations {
				rows = append(rows, row{kind: rowLocation, frontID: f.ID, dangerID: d.ID, index: i, text: l, depth: 2})
			}
		}
	}
	return rows
}

// render draws one row. Lookups run against the snapshot document so
// state like portent completion always reflects the latest adopted
// fetch.
func (m Model) render(r row, selected bool) string {
	doc := m.view.Doc
	indent := strings.Repeat("  ", r.depth)
	var line string
	switch r.kind {
	case rowFront:
		mark := glyph.Adventure.String()
		if f := doc.Front(r.frontID); f != nil && f.Type == front.TypeCampaign {
			mark = glyph.Campaign.String()
		}
		line = fmt.Sprintf("%s %s", mark, frontStyle.Render(r.text))
	case rowCast:
		line = fmt.Sprintf("%s %s", glyph.Cast.String(), r.text)
	case rowStake:
		line = fmt.Sprintf("%s %s", glyph.Stake.String(), r.text)
	case rowHook:
		line = fmt.Sprintf("%s %s", glyph.Hook.String(), r.text)
	case rowDanger:
		line = fmt.Sprintf("%s %s", glyph.Danger.String(), r.text)
		if _, d := doc.Danger(r.dangerID); d != nil && d.Impulse != "" {
			line += faintStyle.Render(" · " + d.Impulse)
		}
	case rowPortent:
		mark := glyph.Portent.String()
		text := r.text
		if _, d := doc.Danger(r.dangerID); d != nil {
			if p := d.Portent(r.entityID); p != nil && p.Completed {
				mark = glyph.PortentDone.String()
				text = doneStyle.Render(text)
			}
		}
		line = fmt.Sprintf("%s %s", mark, text)
	case rowSecret:
		mark := glyph.SecretHidden.String()
		xp := 0
		if _, d := doc.Danger(r.dangerID); d != nil {
			if s := d.Secret(r.entityID); s != nil {
				xp = s.XP
				if s.Revealed {
					mark = glyph.SecretRevealed.String()
				}
			}
		}
		line = fmt.Sprintf("%s %s %s", mark, r.text, revealStyle.Render(fmt.Sprintf("(%d xp)", xp)))
	case rowLocation:
		line = fmt.Sprintf("%s %s", glyph.Location.String(), r.text)
	}
	cursor := "  "
	if selected {
		cursor = "> "
	}
	return cursor + indent + line
}
