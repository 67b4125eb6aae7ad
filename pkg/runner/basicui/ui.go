// Package basicui is the minimal read-only browser behind `fronts ui
// --basic`: a two-pane table of fronts and their dangers with no editing.
package basicui

import (
	"context"
	"fmt"
	"strings"

	"github.com/marcusolsson/tui-go"

	"github.com/grimportent/fronts/pkg/app"
	"github.com/grimportent/fronts/pkg/front"
	"github.com/grimportent/fronts/pkg/glyph"
)

type UI struct {
	Service *app.Service

	doc   *front.Document
	index []string

	fronts     *tui.Table
	frontTitle string
	frontView  *tui.Box

	detail      *tui.Table
	detailView  *tui.Box
	detailTitle string
	dirty       string
}

func (d *UI) Do(ctx context.Context) error {
	if err := d.Service.Refresh(ctx); err != nil {
		return err
	}
	d.doc = d.Service.Document()

	fTable := tui.NewTable(1, 0)
	frontBox := tui.NewVBox(fTable, tui.NewSpacer())
	frontBox.SetBorder(true)
	frontBox.SetSizePolicy(tui.Preferred, tui.Expanding)

	dTable := tui.NewTable(1, 0)
	dTable.SetFocused(true)
	dTable.SetSizePolicy(tui.Expanding, tui.Maximum)

	status := tui.NewStatusBar("")
	status.SetPermanentText(`Use left or right arrows to navigate, 'k' for key, ESC or 'q' to QUIT`)

	detailBox := tui.NewVBox(dTable)
	detailBox.SetBorder(true)
	detailBox.SetSizePolicy(tui.Expanding, tui.Maximum)

	selector := tui.NewHBox(frontBox, detailBox)
	root := tui.NewVBox(selector, tui.NewSpacer(), status)

	legend := legendUI()
	legend.SetBorder(true)
	legend.SetTitle("key")
	popup := tui.NewVBox(
		tui.NewHBox(legend, tui.NewSpacer()),
		tui.NewSpacer(),
		status,
	)

	ui, err := tui.New(root)
	if err != nil {
		return err
	}

	d.fronts = fTable
	d.frontTitle = "fronts"
	d.frontView = frontBox
	d.detail = dTable
	d.detailView = detailBox

	d.populateFronts()

	fTable.OnSelectionChanged(func(*tui.Table) {
		d.populateDetail()
	})

	isKey := false
	ui.SetKeybinding("k", func() {
		if isKey {
			ui.SetWidget(root)
			isKey = false
		} else {
			ui.SetWidget(popup)
			isKey = true
		}
	})
	ui.SetKeybinding("Left", func() { d.focusFronts() })
	ui.SetKeybinding("Right", func() { d.focusDetail() })
	ui.SetKeybinding("Esc", func() { ui.Quit() })
	ui.SetKeybinding("q", func() { ui.Quit() })

	d.populateDetail()
	d.focusDetail()

	return ui.Run()
}

func (d *UI) focusFronts() {
	d.fronts.SetFocused(true)
	d.frontView.SetTitle(strings.ToUpper(d.frontTitle))
	d.detail.SetFocused(false)
	d.detailView.SetTitle("")
}

func (d *UI) focusDetail() {
	d.fronts.SetFocused(false)
	d.frontView.SetTitle(d.frontTitle)
	d.detail.SetFocused(true)
	d.detailView.SetTitle(d.detailTitle)
}

func (d *UI) populateFronts() {
	d.fronts.RemoveRows()
	d.fronts.Select(0)

	d.index = make([]string, 0, len(d.doc.Fronts))
	for i := range d.doc.Fronts {
		f := &d.doc.Fronts[i]
		mark := glyph.Adventure
		if f.Type == front.TypeCampaign {
			mark = glyph.Campaign
		}
		d.index = append(d.index, f.ID)
		d.fronts.AppendRow(tui.NewLabel(fmt.Sprintf("%s %s", mark.String(), f.Name)))
	}
}

func (d *UI) populateDetail() {
	selected := ""
	if d.fronts.Selected() >= 0 && d.fronts.Selected() < len(d.index) {
		selected = d.index[d.fronts.Selected()]
	}
	if d.dirty == selected {
		return
	}

	d.detail.RemoveRows()
	f := d.doc.Front(selected)
	if f != nil {
		d.detailTitle = f.Name
		for i := range f.Dangers {
			dn := &f.Dangers[i]
			d.detail.AppendRow(tui.NewLabel(fmt.Sprintf("%s %s", glyph.Danger.String(), dn.Name)))
			for j := range dn.GrimPortents {
				p := &dn.GrimPortents[j]
				mark := glyph.Portent
				if p.Completed {
					mark = glyph.PortentDone
				}
				d.detail.AppendRow(tui.NewLabel(fmt.Sprintf("  %s %s", mark.String(), p.Text)))
			}
			for j := range dn.Secrets {
				s := &dn.Secrets[j]
				mark := glyph.SecretHidden
				if s.Revealed {
					mark = glyph.SecretRevealed
				}
				d.detail.AppendRow(tui.NewLabel(fmt.Sprintf("  %s %s (%d xp)", mark.String(), s.Text, s.XP)))
			}
		}
	}
	d.dirty = selected
}

func legendUI() *tui.Box {
	rows := make([]tui.Widget, 0)
	rows = append(rows, tui.NewLabel("Legend"))
	for _, v := range glyph.DefaultGlyphs() {
		rows = append(rows, tui.NewLabel(fmt.Sprintf("%s  %s", v.Symbol, v.Meaning)))
	}
	rows = append(rows, tui.NewSpacer())
	return tui.NewVBox(rows...)
}
