package tui

import (
	"errors"
	"fmt"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

// Key helpers for constructing tea.KeyMsg values.
func keyRune(r rune) tea.KeyMsg { return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}} }
func keyEnter() tea.KeyMsg      { return tea.KeyMsg{Type: tea.KeyEnter} }
func keyEsc() tea.KeyMsg        { return tea.KeyMsg{Type: tea.KeyEsc} }
func keySpace() tea.KeyMsg      { return tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}} }

// seqGenerator returns "name-1", "name-2", ... and fails after limit names
// when limit is positive.
type seqGenerator struct {
	n     int
	limit int
}

func (g *seqGenerator) Generate() (string, error) {
	if g.limit > 0 && g.n >= g.limit {
		return "", errors.New("exhausted")
	}
	g.n++
	return fmt.Sprintf("name-%d", g.n), nil
}

func seedListModel() model {
	return model{
		view: viewList,
		gen:  &seqGenerator{},
		candidates: []candidate{
			{Name: "rusty-nail"},
			{Name: "pushy-pencil"},
			{Name: "imaginary-roll"},
		},
		batch:  3,
		width:  80,
		height: 24,
	}
}

func updateModel(m model, msgs ...tea.Msg) model {
	for _, msg := range msgs {
		result, _ := m.Update(msg)
		m = result.(model)
	}
	return m
}

func TestListNavigation(t *testing.T) {
	m := seedListModel()

	// j moves cursor down
	m = updateModel(m, keyRune('j'))
	if m.cursor != 1 {
		t.Errorf("after j: cursor = %d, want 1", m.cursor)
	}

	m = updateModel(m, keyRune('j'))
	if m.cursor != 2 {
		t.Errorf("after j j: cursor = %d, want 2", m.cursor)
	}

	// Clamp at bottom
	m = updateModel(m, keyRune('j'))
	if m.cursor != 2 {
		t.Errorf("after j at bottom: cursor = %d, want 2", m.cursor)
	}

	// k moves cursor up
	m = updateModel(m, keyRune('k'))
	if m.cursor != 1 {
		t.Errorf("after k: cursor = %d, want 1", m.cursor)
	}

	// Clamp at top
	m = updateModel(m, keyRune('k'), keyRune('k'))
	if m.cursor != 0 {
		t.Errorf("after k at top: cursor = %d, want 0", m.cursor)
	}
}

func TestEnterPicksCursor(t *testing.T) {
	m := seedListModel()
	m = updateModel(m, keyRune('j'))

	result, cmd := m.Update(keyEnter())
	m = result.(model)
	if cmd == nil {
		t.Fatal("enter should quit")
	}
	if len(m.picked) != 1 || m.picked[0] != "pushy-pencil" {
		t.Errorf("picked = %v, want [pushy-pencil]", m.picked)
	}
}

func TestEnterPicksMarked(t *testing.T) {
	m := seedListModel()
	m = updateModel(m, keySpace(), keyRune('j'), keyRune('j'), keySpace())

	if !m.candidates[0].Marked || m.candidates[1].Marked || !m.candidates[2].Marked {
		t.Fatalf("marks = %+v", m.candidates)
	}

	m = updateModel(m, keyEnter())
	want := []string{"rusty-nail", "imaginary-roll"}
	if len(m.picked) != len(want) {
		t.Fatalf("picked = %v, want %v", m.picked, want)
	}
	for i := range want {
		if m.picked[i] != want[i] {
			t.Errorf("picked[%d] = %q, want %q", i, m.picked[i], want[i])
		}
	}
}

func TestMarkToggles(t *testing.T) {
	m := seedListModel()
	m = updateModel(m, keySpace(), keySpace())
	if m.candidates[0].Marked {
		t.Error("second space should unmark")
	}
}

func TestEnterOnEmptyListDoesNothing(t *testing.T) {
	m := seedListModel()
	m.candidates = nil

	result, cmd := m.Update(keyEnter())
	m = result.(model)
	if cmd != nil {
		t.Error("enter on an empty list should not quit")
	}
	if len(m.picked) != 0 {
		t.Errorf("picked = %v, want none", m.picked)
	}
}

func TestQuitWithoutPicking(t *testing.T) {
	m := seedListModel()
	result, cmd := m.Update(keyRune('q'))
	m = result.(model)
	if cmd == nil {
		t.Fatal("q should quit")
	}
	if len(m.picked) != 0 {
		t.Errorf("picked = %v, want none", m.picked)
	}
}

func TestRerollReplacesBatch(t *testing.T) {
	m := seedListModel()
	m.cursor = 2

	result, cmd := m.Update(keyRune('r'))
	m = result.(model)
	if !m.loading {
		t.Error("r should start loading")
	}
	if cmd == nil {
		t.Fatal("r should return a command")
	}

	// Keys are ignored while loading.
	m = updateModel(m, keyRune('k'))
	if m.cursor != 2 {
		t.Errorf("cursor moved while loading: %d", m.cursor)
	}

	m = updateModel(m, generateCmd(m.gen, m.batch, true)())
	if m.loading {
		t.Error("loading should end after the batch arrives")
	}
	if len(m.candidates) != 3 || m.candidates[0].Name != "name-1" {
		t.Errorf("candidates = %+v, want a fresh batch", m.candidates)
	}
	if m.cursor != 0 {
		t.Errorf("cursor = %d, want 0 after replace", m.cursor)
	}
}

func TestMoreAppendsBatch(t *testing.T) {
	m := seedListModel()
	m.cursor = 1

	m = updateModel(m, keyRune('m'))
	m = updateModel(m, generateCmd(m.gen, m.batch, false)())

	if len(m.candidates) != 6 {
		t.Fatalf("got %d candidates, want 6", len(m.candidates))
	}
	if m.candidates[0].Name != "rusty-nail" || m.candidates[5].Name != "name-3" {
		t.Errorf("candidates = %+v", m.candidates)
	}
	if m.cursor != 1 {
		t.Errorf("cursor = %d, want 1 after append", m.cursor)
	}
}

func TestGenerateCmdKeepsPartialBatchOnError(t *testing.T) {
	msg := generateCmd(&seqGenerator{limit: 2}, 5, true)().(namesGeneratedMsg)
	if msg.err == nil {
		t.Fatal("expected error")
	}
	if len(msg.names) != 2 {
		t.Errorf("names = %v, want the 2 generated before the error", msg.names)
	}

	m := updateModel(seedListModel(), msg)
	if m.err == nil {
		t.Error("model should record the error")
	}
	if len(m.candidates) != 2 {
		t.Errorf("candidates = %+v, want 2", m.candidates)
	}
}

func TestHelpToggle(t *testing.T) {
	m := seedListModel()

	m = updateModel(m, keyRune('?'))
	if m.view != viewHelp {
		t.Fatalf("view = %d, want help", m.view)
	}

	m = updateModel(m, keyRune('?'))
	if m.view != viewList {
		t.Errorf("view = %d, want list after second ?", m.view)
	}

	m = updateModel(m, keyRune('?'), keyEsc())
	if m.view != viewList {
		t.Errorf("esc in help should go back, view = %d", m.view)
	}

	m = updateModel(m, keyRune('?'), keyRune('x'))
	if m.view != viewList {
		t.Errorf("any key in help should go back, view = %d", m.view)
	}
}

func TestWindowSize(t *testing.T) {
	m := updateModel(seedListModel(), tea.WindowSizeMsg{Width: 120, Height: 40})
	if m.width != 120 || m.height != 40 {
		t.Errorf("size = %dx%d, want 120x40", m.width, m.height)
	}
}

func TestNewModelClampsBatch(t *testing.T) {
	m := newModel(&seqGenerator{}, 0, nil)
	if m.batch != 1 {
		t.Errorf("batch = %d, want 1", m.batch)
	}
	if !m.loading {
		t.Error("new model should start loading")
	}
	if m.Init() == nil {
		t.Error("Init should start the first batch")
	}
}
