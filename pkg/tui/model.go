package tui

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	tea "github.com/charmbracelet/bubbletea/v2"
	"github.com/rs/zerolog"

	"github.com/grimportent/fronts/pkg/app"
	"github.com/grimportent/fronts/pkg/dialog"
	"github.com/grimportent/fronts/pkg/front"
)

type mode int

const (
	modeNormal mode = iota
	modeDialog
	modeConfirm
	modeHelp
)

type refreshedMsg struct {
	err  error
	view app.Snapshot
}

type mutatedMsg struct {
	status string
	err    error
	view   app.Snapshot
}

// Model drives the whole UI from a single update loop. Commands do the
// round-trip I/O and return a fresh snapshot in their result message;
// rendering only ever reads the model's own copy, so the update loop
// never touches state an in-flight save is still writing. busy blocks
// further orchestrator access until the round trip lands.
type Model struct {
	svc  *app.Service
	ctx  context.Context
	log  zerolog.Logger
	mode mode

	view   app.Snapshot
	rows   []row
	cursor int

	width  int
	height int

	status string
	busy   bool

	confirmDeletes bool
	form           *formOverlay
	confirm        *confirmOverlay
}

func New(svc *app.Service, confirmDeletes bool) Model {
	return Model{
		svc:            svc,
		ctx:            context.Background(),
		log:            zerolog.Nop(),
		confirmDeletes: confirmDeletes,
		width:          80,
		height:         24,
		status:         "loading…",
		busy:           true,
	}
}

func (m Model) Init() tea.Cmd {
	return m.refreshCmd()
}

func (m Model) refreshCmd() tea.Cmd {
	svc, ctx := m.svc, m.ctx
	return func() tea.Msg {
		err := svc.Refresh(ctx)
		return refreshedMsg{err: err, view: svc.Snapshot()}
	}
}

// mutateCmd wraps one orchestrator call so the update loop stays
// non-blocking while the save and refetch are in flight. The snapshot
// is taken after the call returns, so the message carries the
// reconciled document for the update loop to adopt.
func (m Model) mutateCmd(status string, fn func(context.Context) error) tea.Cmd {
	svc, ctx := m.svc, m.ctx
	return func() tea.Msg {
		err := fn(ctx)
		return mutatedMsg{status: status, err: err, view: svc.Snapshot()}
	}
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case refreshedMsg:
		m.busy = false
		m.view = msg.view
		if msg.err != nil {
			m.log.Error().Err(msg.err).Msg("refresh failed")
			m.status = "refresh failed: " + msg.err.Error()
		} else {
			m.status = "synced"
		}
		m.rebuild()
		return m, nil

	case mutatedMsg:
		m.busy = false
		m.view = msg.view
		switch {
		case msg.err == nil:
			m.status = msg.status
		case errors.Is(msg.err, app.ErrDeclined):
			m.status = "nothing deleted"
		case errors.Is(msg.err, app.ErrVanished):
			m.status = "that entry was removed elsewhere; view resynced"
		default:
			m.log.Error().Err(msg.err).Str("op", msg.status).Msg("mutation failed")
			m.status = msg.err.Error()
		}
		m.rebuild()
		return m, nil

	case tea.KeyPressMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

// rebuild recomputes the flattened rows and restores cursor and scroll
// against the new row set.
func (m *Model) rebuild() {
	m.rows = m.flatten()
	if m.cursor >= len(m.rows) {
		m.cursor = len(m.rows) - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
	m.clampScroll()
}

func (m *Model) clampScroll() {
	h := m.bodyHeight()
	max := len(m.rows) - h
	if max < 0 {
		max = 0
	}
	if m.svc.State.Scroll > max {
		m.svc.State.Scroll = max
	}
	if m.svc.State.Scroll < 0 {
		m.svc.State.Scroll = 0
	}
	if m.cursor < m.svc.State.Scroll {
		m.svc.State.Scroll = m.cursor
	}
	if h > 0 && m.cursor >= m.svc.State.Scroll+h {
		m.svc.State.Scroll = m.cursor - h + 1
	}
}

func (m Model) bodyHeight() int {
	h := m.height - 3
	if h < 1 {
		h = 1
	}
	return h
}

func (m Model) current() (row, bool) {
	if m.cursor < 0 || m.cursor >= len(m.rows) {
		return row{}, false
	}
	return m.rows[m.cursor], true
}

func (m Model) handleKey(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	switch m.mode {
	case modeDialog:
		return m.handleDialogKey(msg)
	case modeConfirm:
		return m.handleConfirmKey(msg)
	case modeHelp:
		m.mode = modeNormal
		return m, nil
	}

	switch msg.String() {
	case "q", "esc", "ctrl+c":
		return m, tea.Quit
	case "?":
		m.mode = modeHelp
		return m, nil
	case "j", "down":
		if m.cursor < len(m.rows)-1 {
			m.cursor++
		}
		m.clampScroll()
		return m, nil
	case "k", "up":
		if m.cursor > 0 {
			m.cursor--
		}
		m.clampScroll()
		return m, nil
	case "g":
		m.cursor = 0
		m.clampScroll()
		return m, nil
	case "G":
		m.cursor = len(m.rows) - 1
		if m.cursor < 0 {
			m.cursor = 0
		}
		m.clampScroll()
		return m, nil
	case "r":
		if m.busy {
			return m, nil
		}
		m.busy = true
		m.status = "refreshing…"
		return m, m.refreshCmd()
	case "enter", "space", "tab":
		return m.toggleExpand()
	case "x":
		return m.toggleLore()
	case "f":
		return m.addFront()
	case "d":
		return m.addDanger()
	case "p":
		return m.addPortent()
	case "s":
		return m.addSecret()
	case "c":
		return m.addLine(rowCast)
	case "S":
		return m.addLine(rowStake)
	case "h":
		return m.addLine(rowHook)
	case "l":
		return m.addLine(rowLocation)
	case "i":
		return m.editCurrent()
	case "D":
		return m.deleteCurrent()
	}
	return m, nil
}

// toggleExpand flips expansion for the row under the cursor. Deferred
// while a mutation is in flight: the in-flight command owns the
// orchestrator until its message lands.
func (m Model) toggleExpand() (tea.Model, tea.Cmd) {
	r, ok := m.current()
	if !ok || m.busy {
		return m, nil
	}
	switch r.kind {
	case rowFront:
		m.svc.State.ToggleFront(r.frontID)
	case rowDanger:
		m.svc.State.ToggleDanger(r.dangerID)
	default:
		return m, nil
	}
	m.view = m.svc.Snapshot()
	m.rebuild()
	return m, nil
}

func (m Model) toggleLore() (tea.Model, tea.Cmd) {
	r, ok := m.current()
	if !ok || m.busy {
		return m, nil
	}
	switch r.kind {
	case rowPortent:
		dangerID, id := r.dangerID, r.entityID
		svc := m.svc
		m.busy = true
		m.status = "toggling portent…"
		return m, m.mutateCmd("portent toggled", func(ctx context.Context) error {
			_, err := svc.TogglePortent(ctx, dangerID, id)
			return err
		})
	case rowSecret:
		dangerID, id := r.dangerID, r.entityID
		svc := m.svc
		m.busy = true
		m.status = "toggling secret…"
		return m, m.mutateCmd("secret toggled", func(ctx context.Context) error {
			_, err := svc.ToggleSecret(ctx, dangerID, id)
			return err
		})
	}
	return m, nil
}

// contextFront resolves which front a new child belongs to, from the
// row under the cursor.
func (m Model) contextFront() string {
	r, ok := m.current()
	if !ok {
		return ""
	}
	return r.frontID
}

func (m Model) contextDanger() string {
	r, ok := m.current()
	if !ok {
		return ""
	}
	return r.dangerID
}

// textCallback adapts a single-text handler to the dialog callback shape.
func textCallback(fn func(ctx context.Context, text string) error) dialog.Callback {
	return func(ctx context.Context, v dialog.Values) error {
		return fn(ctx, v.Get("text"))
	}
}

func validXP(v string) error {
	xp, err := strconv.Atoi(v)
	if err != nil {
		return fmt.Errorf("xp must be a number")
	}
	_, err = front.ParseXP(xp)
	return err
}

func validType(v string) error {
	_, err := front.ParseType(v)
	return err
}

func (m Model) openForm(d dialog.Dialog) (tea.Model, tea.Cmd) {
	if m.busy {
		return m, nil
	}
	f := newFormOverlay(d)
	m.form = &f
	m.mode = modeDialog
	return m, nil
}

func (m Model) addFront() (tea.Model, tea.Cmd) {
	svc := m.svc
	d := dialog.EditForm("New Front", []dialog.Field{
		{Name: "name", Label: "Name"},
		{Name: "type", Label: "Type (campaign|adventure)", Optional: true, Validate: validType},
	}, func(ctx context.Context, v dialog.Values) error {
		t, err := front.ParseType(v.Get("type"))
		if err != nil {
			return err
		}
		_, err = svc.AddFront(ctx, v.Get("name"), t)
		return err
	})
	return m.openForm(d)
}

func (m Model) addDanger() (tea.Model, tea.Cmd) {
	frontID := m.contextFront()
	if frontID == "" {
		m.status = "select a front first"
		return m, nil
	}
	svc := m.svc
	d := dialog.EditForm("New Danger", []dialog.Field{
		{Name: "name", Label: "Name"},
		{Name: "type", Label: "Danger type", Optional: true},
		{Name: "impulse", Label: "Impulse", Optional: true},
		{Name: "doom", Label: "Impending doom", Optional: true},
	}, func(ctx context.Context, v dialog.Values) error {
		_, err := svc.AddDanger(ctx, frontID, v.Get("name"), v.Get("type"), v.Get("impulse"), v.Get("doom"))
		return err
	})
	return m.openForm(d)
}

func (m Model) addPortent() (tea.Model, tea.Cmd) {
	dangerID := m.contextDanger()
	if dangerID == "" {
		m.status = "select a danger first"
		return m, nil
	}
	svc := m.svc
	d := dialog.EditText("New Grim Portent", "Text", "", textCallback(func(ctx context.Context, text string) error {
		_, err := svc.AddPortent(ctx, dangerID, text)
		return err
	}))
	return m.openForm(d)
}

func (m Model) addSecret() (tea.Model, tea.Cmd) {
	dangerID := m.contextDanger()
	if dangerID == "" {
		m.status = "select a danger first"
		return m, nil
	}
	svc := m.svc
	d := dialog.EditForm("New Secret", []dialog.Field{
		{Name: "text", Label: "Text"},
		{Name: "xp", Label: "XP (20|30|50)", Validate: validXP},
	}, func(ctx context.Context, v dialog.Values) error {
		xp, err := strconv.Atoi(v.Get("xp"))
		if err != nil {
			return fmt.Errorf("xp must be a number: %w", err)
		}
		_, err = svc.AddSecret(ctx, dangerID, xp, v.Get("text"))
		return err
	})
	return m.openForm(d)
}

var lineTitles = map[rowKind]string{
	rowCast:     "Cast Member",
	rowStake:    "Stake",
	rowHook:     "Player Hook",
	rowLocation: "Location",
}

func (m Model) addLine(kind rowKind) (tea.Model, tea.Cmd) {
	svc := m.svc
	var fn func(ctx context.Context, text string) error
	switch kind {
	case rowCast, rowStake, rowHook:
		frontID := m.contextFront()
		if frontID == "" {
			m.status = "select a front first"
			return m, nil
		}
		switch kind {
		case rowCast:
			fn = func(ctx context.Context, text string) error { return svc.AddCast(ctx, frontID, text) }
		case rowStake:
			fn = func(ctx context.Context, text string) error { return svc.AddStake(ctx, frontID, text) }
		default:
			fn = func(ctx context.Context, text string) error { return svc.AddHook(ctx, frontID, text) }
		}
	case rowLocation:
		dangerID := m.contextDanger()
		if dangerID == "" {
			m.status = "select a danger first"
			return m, nil
		}
		fn = func(ctx context.Context, text string) error { return svc.AddLocation(ctx, dangerID, text) }
	default:
		return m, nil
	}
	return m.openForm(dialog.EditText("New "+lineTitles[kind], "Text", "", textCallback(fn)))
}

func (m Model) editCurrent() (tea.Model, tea.Cmd) {
	r, ok := m.current()
	if !ok {
		return m, nil
	}
	svc := m.svc
	doc := m.view.Doc
	switch r.kind {
	case rowFront:
		id := r.frontID
		return m.openForm(dialog.EditText("Rename Front", "Name", r.text, textCallback(func(ctx context.Context, text string) error {
			return svc.EditFrontName(ctx, id, text)
		})))
	case rowDanger:
		_, dn := doc.Danger(r.dangerID)
		if dn == nil {
			return m, nil
		}
		id := dn.ID
		d := dialog.EditForm("Edit Danger", []dialog.Field{
			{Name: "name", Label: "Name", Value: dn.Name},
			{Name: "type", Label: "Danger type", Value: dn.DangerType, Optional: true},
			{Name: "impulse", Label: "Impulse", Value: dn.Impulse, Optional: true},
			{Name: "doom", Label: "Impending doom", Value: dn.ImpendingDoom, Optional: true},
		}, func(ctx context.Context, v dialog.Values) error {
			return svc.EditDanger(ctx, id, v.Get("name"), v.Get("type"), v.Get("impulse"), v.Get("doom"))
		})
		return m.openForm(d)
	case rowPortent:
		dangerID, id := r.dangerID, r.entityID
		return m.openForm(dialog.EditText("Edit Grim Portent", "Text", r.text, textCallback(func(ctx context.Context, text string) error {
			return svc.EditPortent(ctx, dangerID, id, text)
		})))
	case rowSecret:
		_, dn := doc.Danger(r.dangerID)
		if dn == nil {
			return m, nil
		}
		s := dn.Secret(r.entityID)
		if s == nil {
			return m, nil
		}
		dangerID, id := r.dangerID, s.ID
		d := dialog.EditForm("Edit Secret", []dialog.Field{
			{Name: "text", Label: "Text", Value: s.Text},
			{Name: "xp", Label: "XP (20|30|50)", Value: strconv.Itoa(s.XP), Validate: validXP},
		}, func(ctx context.Context, v dialog.Values) error {
			xp, err := strconv.Atoi(v.Get("xp"))
			if err != nil {
				return fmt.Errorf("xp must be a number: %w", err)
			}
			return svc.EditSecret(ctx, dangerID, id, xp, v.Get("text"))
		})
		return m.openForm(d)
	case rowCast:
		frontID, i := r.frontID, r.index
		return m.openForm(dialog.EditText("Edit Cast Member", "Text", r.text, textCallback(func(ctx context.Context, text string) error {
			return svc.EditCast(ctx, frontID, i, text)
		})))
	case rowStake:
		frontID, i := r.frontID, r.index
		return m.openForm(dialog.EditText("Edit Stake", "Text", r.text, textCallback(func(ctx context.Context, text string) error {
			return svc.EditStake(ctx, frontID, i, text)
		})))
	case rowHook:
		frontID, i := r.frontID, r.index
		return m.openForm(dialog.EditText("Edit Player Hook", "Text", r.text, textCallback(func(ctx context.Context, text string) error {
			return svc.EditHook(ctx, frontID, i, text)
		})))
	case rowLocation:
		dangerID, i := r.dangerID, r.index
		return m.openForm(dialog.EditText("Edit Location", "Text", r.text, textCallback(func(ctx context.Context, text string) error {
			return svc.EditLocation(ctx, dangerID, i, text)
		})))
	}
	return m, nil
}

// deleteCurrent removes the row under the cursor. Fronts and dangers go
// through the confirm overlay; line items and lore delete directly.
func (m Model) deleteCurrent() (tea.Model, tea.Cmd) {
	r, ok := m.current()
	if !ok || m.busy {
		return m, nil
	}
	svc := m.svc
	switch r.kind {
	case rowFront:
		id := r.frontID
		return m.confirmThen(
			fmt.Sprintf("Delete front %q and everything under it?", r.text),
			"front deleted",
			func(ctx context.Context) error { return svc.DeleteFront(ctx, id) },
		)
	case rowDanger:
		id := r.dangerID
		return m.confirmThen(
			fmt.Sprintf("Delete danger %q and everything under it?", r.text),
			"danger deleted",
			func(ctx context.Context) error { return svc.DeleteDanger(ctx, id) },
		)
	case rowPortent:
		dangerID, id := r.dangerID, r.entityID
		m.busy = true
		return m, m.mutateCmd("portent deleted", func(ctx context.Context) error {
			return svc.DeletePortent(ctx, dangerID, id)
		})
	case rowSecret:
		dangerID, id := r.dangerID, r.entityID
		m.busy = true
		return m, m.mutateCmd("secret deleted", func(ctx context.Context) error {
			return svc.DeleteSecret(ctx, dangerID, id)
		})
	case rowCast:
		frontID, i := r.frontID, r.index
		m.busy = true
		return m, m.mutateCmd("cast member deleted", func(ctx context.Context) error {
			return svc.DeleteCast(ctx, frontID, i)
		})
	case rowStake:
		frontID, i := r.frontID, r.index
		m.busy = true
		return m, m.mutateCmd("stake deleted", func(ctx context.Context) error {
			return svc.DeleteStake(ctx, frontID, i)
		})
	case rowHook:
		frontID, i := r.frontID, r.index
		m.busy = true
		return m, m.mutateCmd("hook deleted", func(ctx context.Context) error {
			return svc.DeleteHook(ctx, frontID, i)
		})
	case rowLocation:
		dangerID, i := r.dangerID, r.index
		m.busy = true
		return m, m.mutateCmd("location deleted", func(ctx context.Context) error {
			return svc.DeleteLocation(ctx, dangerID, i)
		})
	}
	return m, nil
}

func (m Model) confirmThen(message, status string, fn func(context.Context) error) (tea.Model, tea.Cmd) {
	if !m.confirmDeletes {
		m.busy = true
		return m, m.mutateCmd(status, fn)
	}
	m.confirm = &confirmOverlay{
		dialog: dialog.Confirm("Confirm Delete", message, nil),
		status: status,
		run:    fn,
	}
	m.mode = modeConfirm
	return m, nil
}

func (m Model) handleDialogKey(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	if m.form == nil {
		m.mode = modeNormal
		return m, nil
	}
	done, cmd := m.form.handleKey(msg, &m)
	if done {
		m.form = nil
		m.mode = modeNormal
	}
	return m, cmd
}

func (m Model) handleConfirmKey(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	c := m.confirm
	if c == nil {
		m.mode = modeNormal
		return m, nil
	}
	switch msg.String() {
	case "y", "Y", "enter":
		m.confirm = nil
		m.mode = modeNormal
		m.busy = true
		return m, m.mutateCmd(c.status, c.run)
	case "n", "N", "esc", "q":
		m.confirm = nil
		m.mode = modeNormal
		m.status = "nothing deleted"
		return m, nil
	}
	return m, nil
}
