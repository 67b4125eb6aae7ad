package tui

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"sync"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea/v2"

	"github.com/grimportent/fronts/pkg/app"
	"github.com/grimportent/fronts/pkg/front"
)

type fakeRemote struct {
	mu    sync.Mutex
	doc   front.Document
	saves int

	// saveGate, when set, parks SaveAll until the channel closes so a
	// test can hold a mutation in flight.
	saveGate chan struct{}
}

func (f *fakeRemote) clone() *front.Document {
	b, _ := json.Marshal(f.doc)
	var out front.Document
	_ = json.Unmarshal(b, &out)
	return &out
}

func (f *fakeRemote) FetchAll(context.Context) (*front.Document, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.clone(), nil
}

func (f *fakeRemote) SaveAll(_ context.Context, doc *front.Document) error {
	if f.saveGate != nil {
		<-f.saveGate
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.saves++
	b, _ := json.Marshal(doc)
	_ = json.Unmarshal(b, &f.doc)
	return nil
}

func (f *fakeRemote) ToggleSecret(_ context.Context, dangerID, secretID string) (*front.Secret, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	_, d := f.doc.Danger(dangerID)
	if d == nil {
		return nil, errors.New("no such danger")
	}
	s := d.Secret(secretID)
	if s == nil {
		return nil, errors.New("no such secret")
	}
	s.Revealed = !s.Revealed
	if s.Revealed {
		now := time.Now().UTC()
		s.RevealedAt = &now
	} else {
		s.RevealedAt = nil
	}
	out := *s
	return &out, nil
}

func (f *fakeRemote) TogglePortent(_ context.Context, dangerID, portentID string) (*front.GrimPortent, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	_, d := f.doc.Danger(dangerID)
	if d == nil {
		return nil, errors.New("no such danger")
	}
	p := d.Portent(portentID)
	if p == nil {
		return nil, errors.New("no such portent")
	}
	p.Completed = !p.Completed
	out := *p
	return &out, nil
}

func seededRemote() *fakeRemote {
	return &fakeRemote{doc: front.Document{Fronts: []front.Front{
		{
			ID:          "front-1",
			Name:        "The Hollow King",
			Type:        front.TypeCampaign,
			Cast:        []string{"Mirelle the seer"},
			Stakes:      []string{"Who holds the pass?"},
			PlayerHooks: []string{"The twins owe the king a debt"},
			Dangers: []front.Danger{{
				ID:            "danger-1",
				Name:          "Cult of Ash",
				DangerType:    "ambitious organization",
				Impulse:       "to usher in the king's return",
				ImpendingDoom: "the king walks again",
				GrimPortents: []front.GrimPortent{
					{ID: "portent-1", Text: "Ash falls on the harvest"},
				},
				Secrets: []front.Secret{
					{ID: "secret-1", XP: 30, Text: "The high priest is already dead"},
				},
				Locations: []string{"The sunken shrine"},
			}},
		},
		{ID: "front-2", Name: "Raiders of the Marsh", Type: front.TypeAdventure},
	}}}
}

func newTestModel(t *testing.T) (Model, *fakeRemote) {
	t.Helper()
	remote := seededRemote()
	svc := app.New(remote)
	m := New(svc, true)
	m.height = 10
	next := deliver(t, m, m.Init())
	return next, remote
}

// deliver runs a command synchronously and feeds its message back.
func deliver(t *testing.T, m Model, cmd tea.Cmd) Model {
	t.Helper()
	if cmd == nil {
		t.Fatalf("expected a command")
	}
	next, _ := m.Update(cmd())
	return next.(Model)
}

func press(t *testing.T, m Model, key string) (Model, tea.Cmd) {
	t.Helper()
	var msg tea.KeyPressMsg
	switch key {
	case "enter":
		msg = tea.KeyPressMsg{Code: tea.KeyEnter}
	case "esc":
		msg = tea.KeyPressMsg{Code: tea.KeyEscape}
	case "tab":
		msg = tea.KeyPressMsg{Code: tea.KeyTab}
	default:
		msg = tea.KeyPressMsg{Text: key, Code: rune(key[0])}
	}
	next, cmd := m.Update(msg)
	return next.(Model), cmd
}

func TestFlattenShowsCollapsedFrontsOnly(t *testing.T) {
	m, _ := newTestModel(t)
	if len(m.rows) != 2 {
		t.Fatalf("expected 2 front rows, got %d", len(m.rows))
	}
	for _, r := range m.rows {
		if r.kind != rowFront {
			t.Fatalf("unexpected row kind %d before expansion", r.kind)
		}
	}
}

func TestEnterExpandsAndCollapses(t *testing.T) {
	m, _ := newTestModel(t)
	m, _ = press(t, m, "enter")
	// front-1 expanded: front + cast + stake + hook + danger, then front-2
	if len(m.rows) != 6 {
		t.Fatalf("expected 6 rows after expanding front, got %d", len(m.rows))
	}
	if m.rows[4].kind != rowDanger {
		t.Fatalf("expected danger row at index 4, got kind %d", m.rows[4].kind)
	}
	m, _ = press(t, m, "enter")
	if len(m.rows) != 2 {
		t.Fatalf("expected collapse back to 2 rows, got %d", len(m.rows))
	}
}

func TestStaleExpandedIDProducesNoRows(t *testing.T) {
	m, _ := newTestModel(t)
	m.svc.State.ExpandFront("front-gone")
	m.svc.State.ExpandDanger("danger-gone")
	m.view = m.svc.Snapshot()
	m.rebuild()
	if len(m.rows) != 2 {
		t.Fatalf("stale expansion ids should not add rows, got %d", len(m.rows))
	}
}

func TestCursorScrollFollowsNavigation(t *testing.T) {
	m, _ := newTestModel(t)
	m.height = 5 // body height 2
	m, _ = press(t, m, "enter")
	for i := 0; i < 10; i++ {
		m, _ = press(t, m, "j")
	}
	if m.cursor != len(m.rows)-1 {
		t.Fatalf("cursor should clamp to last row, got %d", m.cursor)
	}
	if m.svc.State.Scroll != len(m.rows)-m.bodyHeight() {
		t.Fatalf("scroll should follow cursor, got %d", m.svc.State.Scroll)
	}
	m, _ = press(t, m, "g")
	if m.cursor != 0 || m.svc.State.Scroll != 0 {
		t.Fatalf("g should return to top, cursor=%d scroll=%d", m.cursor, m.svc.State.Scroll)
	}
}

func TestScrollClampedAfterCollapse(t *testing.T) {
	m, _ := newTestModel(t)
	m.height = 5
	m, _ = press(t, m, "enter")
	m, _ = press(t, m, "G")
	if m.svc.State.Scroll == 0 {
		t.Fatalf("expected nonzero scroll at bottom")
	}
	// jump back up and collapse; the retained offset must be clamped
	m, _ = press(t, m, "g")
	m.svc.State.Scroll = 40
	m.rebuild()
	if max := len(m.rows) - m.bodyHeight(); m.svc.State.Scroll > max {
		t.Fatalf("scroll %d exceeds max %d after rebuild", m.svc.State.Scroll, max)
	}
}

func TestTogglePortentRoundTrip(t *testing.T) {
	m, remote := newTestModel(t)
	m, _ = press(t, m, "enter") // expand front-1
	m.cursor = 4                // danger row
	m, _ = press(t, m, "enter") // expand danger
	for i, r := range m.rows {
		if r.kind == rowPortent {
			m.cursor = i
		}
	}
	m, cmd := press(t, m, "x")
	if !m.busy {
		t.Fatalf("toggle should mark the model busy")
	}
	m = deliver(t, m, cmd)
	if m.busy {
		t.Fatalf("busy should clear once the mutation lands")
	}
	_, d := remote.clone().Danger("danger-1")
	if !d.GrimPortents[0].Completed {
		t.Fatalf("portent should be completed on the remote")
	}
	if got := m.svc.Document().Fronts[0].Dangers[0].GrimPortents[0].Completed; !got {
		t.Fatalf("refetched document should show the completed portent")
	}
}

func TestFormBlankSubmitKeepsDialogOpen(t *testing.T) {
	m, remote := newTestModel(t)
	m, _ = press(t, m, "f")
	if m.mode != modeDialog || m.form == nil {
		t.Fatalf("f should open the new-front dialog")
	}
	m, _ = press(t, m, "enter") // advance to type field
	m, cmd := press(t, m, "enter")
	if cmd != nil {
		t.Fatalf("blank submit must not produce a command")
	}
	if m.mode != modeDialog || m.form == nil {
		t.Fatalf("blank submit should keep the dialog open")
	}
	if m.form.errMsg == "" {
		t.Fatalf("blank submit should surface an error message")
	}
	if remote.saves != 0 {
		t.Fatalf("nothing should have been saved")
	}
	m, _ = press(t, m, "esc")
	if m.mode != modeNormal {
		t.Fatalf("esc should dismiss the dialog")
	}
}

func TestFormSaveCreatesFront(t *testing.T) {
	m, remote := newTestModel(t)
	m, _ = press(t, m, "f")
	m.form.inputs[0].SetValue("Tide of Bone")
	m, _ = press(t, m, "enter") // to type field
	m, cmd := press(t, m, "enter")
	if m.mode != modeNormal {
		t.Fatalf("valid submit should close the dialog")
	}
	m = deliver(t, m, cmd)
	if remote.saves != 1 {
		t.Fatalf("expected one save, got %d", remote.saves)
	}
	if len(m.svc.Document().Fronts) != 3 {
		t.Fatalf("expected 3 fronts after add, got %d", len(m.svc.Document().Fronts))
	}
}

func TestDeleteFrontDeclined(t *testing.T) {
	m, remote := newTestModel(t)
	m, _ = press(t, m, "D")
	if m.mode != modeConfirm {
		t.Fatalf("D on a front should open the confirm overlay")
	}
	m, _ = press(t, m, "n")
	if m.mode != modeNormal {
		t.Fatalf("n should dismiss the confirm overlay")
	}
	if m.status != "nothing deleted" {
		t.Fatalf("decline status = %q", m.status)
	}
	if remote.saves != 0 || len(m.svc.Document().Fronts) != 2 {
		t.Fatalf("decline must not mutate anything")
	}
}

func TestDeleteFrontConfirmed(t *testing.T) {
	m, remote := newTestModel(t)
	m, _ = press(t, m, "D")
	m, cmd := press(t, m, "y")
	m = deliver(t, m, cmd)
	if remote.saves != 1 {
		t.Fatalf("expected one save, got %d", remote.saves)
	}
	if len(m.svc.Document().Fronts) != 1 {
		t.Fatalf("front should be gone, have %d", len(m.svc.Document().Fronts))
	}
	if m.rows[0].text != "Raiders of the Marsh" {
		t.Fatalf("surviving row = %q", m.rows[0].text)
	}
}

func TestDeleteLineSkipsConfirmation(t *testing.T) {
	m, remote := newTestModel(t)
	m, _ = press(t, m, "enter") // expand front-1
	m.cursor = 1                // cast row
	if m.rows[1].kind != rowCast {
		t.Fatalf("expected cast row at index 1")
	}
	m, cmd := press(t, m, "D")
	if m.mode != modeNormal {
		t.Fatalf("line delete must not open a confirm overlay")
	}
	m = deliver(t, m, cmd)
	if remote.saves != 1 {
		t.Fatalf("expected one save, got %d", remote.saves)
	}
	if len(m.svc.Document().Fronts[0].Cast) != 0 {
		t.Fatalf("cast member should be gone")
	}
}

// The update loop renders and handles keys from its own snapshot while a
// save round-trip runs on a command goroutine. Run with -race to verify
// the two sides share nothing.
func TestEventLoopIsolatedFromInFlightSave(t *testing.T) {
	m, remote := newTestModel(t)
	m, _ = press(t, m, "enter") // expand front-1
	remote.saveGate = make(chan struct{})
	m.cursor = 1 // cast row
	var cmd tea.Cmd
	m, cmd = press(t, m, "D")
	if !m.busy {
		t.Fatalf("line delete should mark the model busy")
	}
	rows := len(m.rows)
	done := make(chan tea.Msg, 1)
	go func() { done <- cmd() }()
	for i := 0; i < 25; i++ {
		_ = m.View()
		m, _ = press(t, m, "enter") // expansion is deferred while busy
		m, _ = press(t, m, "j")
		m, _ = press(t, m, "k")
	}
	if len(m.rows) != rows {
		t.Fatalf("row set changed while a save was in flight")
	}
	close(remote.saveGate)
	next, _ := m.Update(<-done)
	m = next.(Model)
	if m.busy {
		t.Fatalf("busy should clear once the delete lands")
	}
	if len(m.svc.Document().Fronts[0].Cast) != 0 {
		t.Fatalf("cast member should be gone after the save lands")
	}
}

func TestFormInvalidXPKeepsDialogOpen(t *testing.T) {
	m, remote := newTestModel(t)
	m, _ = press(t, m, "enter") // expand front-1
	m.cursor = 4                // danger row
	m, _ = press(t, m, "s")
	if m.mode != modeDialog || m.form == nil {
		t.Fatalf("s on a danger should open the new-secret dialog")
	}
	m.form.inputs[0].SetValue("The shrine was never sealed")
	m.form.inputs[1].SetValue("40")
	m, _ = press(t, m, "enter") // advance to xp field
	m, cmd := press(t, m, "enter")
	if cmd != nil {
		t.Fatalf("invalid xp must not produce a command")
	}
	if m.mode != modeDialog || m.form == nil {
		t.Fatalf("invalid xp should keep the dialog open")
	}
	if m.form.errMsg == "" {
		t.Fatalf("invalid xp should surface an error message")
	}
	if got := m.form.inputs[0].Value(); got != "The shrine was never sealed" {
		t.Fatalf("typed text should survive a rejected submit, got %q", got)
	}
	if remote.saves != 0 {
		t.Fatalf("nothing should have been saved")
	}
	m.form.inputs[1].SetValue("30")
	m, cmd = press(t, m, "enter")
	if m.mode != modeNormal {
		t.Fatalf("corrected xp should close the dialog")
	}
	m = deliver(t, m, cmd)
	if remote.saves != 1 {
		t.Fatalf("expected one save, got %d", remote.saves)
	}
	if got := len(m.svc.Document().Fronts[0].Dangers[0].Secrets); got != 2 {
		t.Fatalf("expected 2 secrets after add, got %d", got)
	}
}

func TestViewShowsStatusAndHelpHint(t *testing.T) {
	m, _ := newTestModel(t)
	out := m.View()
	if !strings.Contains(out, "The Hollow King") {
		t.Fatalf("view should list fronts:\n%s", out)
	}
	if !strings.Contains(out, "? for help") {
		t.Fatalf("view should carry the help hint")
	}
	m, _ = press(t, m, "?")
	if !strings.Contains(m.View(), "x toggle portent") {
		t.Fatalf("help view missing key legend")
	}
	m, _ = press(t, m, "q")
	if m.mode != modeNormal {
		t.Fatalf("any key should leave help mode")
	}
}
