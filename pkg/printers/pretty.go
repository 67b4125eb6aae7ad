package printers

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"

	"github.com/grimportent/fronts/pkg/front"
	"github.com/grimportent/fronts/pkg/glyph"
)

type PrettyPrint struct {
	ShowID bool
}

var spacing = strings.Repeat(" ", len("danger-1757428163812-a1b2c3d4  "))

func (pp *PrettyPrint) NewLine() {
	fmt.Println("")
}

func (pp *PrettyPrint) Title(title string) {
	t := color.New(color.Bold, color.Underline)
	if pp.ShowID {
		_, _ = t.Print(spacing)
	}
	_, _ = t.Println(title)
}

// Document prints every front with its dangers.
func (pp *PrettyPrint) Document(doc *front.Document) {
	if doc == nil || len(doc.Fronts) == 0 {
		f := color.New(color.Faint, color.Italic)
		_, _ = f.Print(" no fronts yet\n\n")
		return
	}
	for i := range doc.Fronts {
		pp.Front(&doc.Fronts[i])
	}
}

// Front prints one front's header, line items, and dangers.
func (pp *PrettyPrint) Front(f *front.Front) {
	t := color.New(color.Bold, color.Underline)
	faint := color.New(color.Faint)

	mark := glyph.Adventure
	if f.Type == front.TypeCampaign {
		mark = glyph.Campaign
	}
	pp.id(f.ID)
	_, _ = t.Printf("%s %s", mark.String(), f.Name)
	_, _ = faint.Printf("  (%s)\n", f.Type)

	pp.lines(glyph.Cast, f.Cast)
	pp.lines(glyph.Stake, f.Stakes)
	pp.lines(glyph.Hook, f.PlayerHooks)

	for i := range f.Dangers {
		pp.Danger(&f.Dangers[i])
	}
	fmt.Println("")
}

// Danger prints one danger with its portents, secrets, and locations.
func (pp *PrettyPrint) Danger(d *front.Danger) {
	b := color.New(color.Bold)
	faint := color.New(color.Faint, color.Italic)

	pp.id(d.ID)
	_, _ = b.Printf("  %s %s", glyph.Danger.String(), d.Name)
	if d.DangerType != "" {
		_, _ = faint.Printf("  %s", d.DangerType)
	}
	fmt.Println("")
	if d.Impulse != "" {
		pp.id("")
		_, _ = faint.Printf("    impulse: %s\n", d.Impulse)
	}
	if d.ImpendingDoom != "" {
		pp.id("")
		_, _ = faint.Printf("    doom: %s\n", d.ImpendingDoom)
	}

	plain := color.New()
	for i := range d.GrimPortents {
		p := &d.GrimPortents[i]
		pp.id(p.ID)
		if p.Completed {
			_, _ = plain.Printf("    %s %s\n", glyph.PortentDone.String(), glyph.Strike(p.Text))
		} else {
			_, _ = plain.Printf("    %s %s\n", glyph.Portent.String(), p.Text)
		}
	}
	pp.secrets(d.Secrets)
	for _, loc := range d.Locations {
		pp.id("")
		_, _ = plain.Printf("    %s %s\n", glyph.Location.String(), loc)
	}
}

func (pp *PrettyPrint) secrets(secrets []front.Secret) {
	if len(secrets) == 0 {
		return
	}
	tbl := uitable.New()
	tbl.Separator = "  "
	for i := range secrets {
		s := &secrets[i]
		mark := glyph.SecretHidden
		text := s.Text
		if s.Revealed {
			mark = glyph.SecretRevealed
			text = glyph.Strike(text)
		}
		row := fmt.Sprintf("    %s %s", mark.String(), text)
		if pp.ShowID {
			tbl.AddRow(s.ID, row, fmt.Sprintf("%d xp", s.XP))
		} else {
			tbl.AddRow(row, fmt.Sprintf("%d xp", s.XP))
		}
	}
	_, _ = fmt.Fprintln(color.Output, tbl)
}

func (pp *PrettyPrint) lines(mark glyph.Mark, items []string) {
	plain := color.New()
	for _, item := range items {
		pp.id("")
		_, _ = plain.Printf("  %s %s\n", mark.String(), item)
	}
}

func (pp *PrettyPrint) id(id string) {
	if !pp.ShowID {
		return
	}
	y := color.New(color.FgHiYellow, color.Italic, color.Faint)
	if id == "" {
		_, _ = y.Print(spacing)
		return
	}
	pad := len(spacing) - len(id)
	if pad < 1 {
		pad = 1
	}
	_, _ = y.Print(id, strings.Repeat(" ", pad))
}
