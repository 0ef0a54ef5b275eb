package cli

import (
	"context"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/matzehuels/treestack/pkg/session"
	"github.com/matzehuels/treestack/pkg/tree"
)

func newTestModel(opts ...session.Option) sessionModel {
	m := newSessionModel(context.Background(), session.New(opts...), 0)
	next, _ := m.Update(tea.WindowSizeMsg{Width: 100, Height: 30})
	return next.(sessionModel)
}

func typeKeys(m sessionModel, keys ...string) sessionModel {
	for _, k := range keys {
		next, _ := m.handleKey(k)
		m = next.(sessionModel)
	}
	return m
}

func TestSessionModelPush(t *testing.T) {
	m := typeKeys(newTestModel(), "-", "1", "2", "enter")

	if m.input != "" {
		t.Errorf("input = %q, want cleared after push", m.input)
	}
	entries := m.sess.Entries()
	if len(entries) != 1 || entries[0].Value != -12 {
		t.Fatalf("entries = %+v, want [-12]", entries)
	}
	if st, ok := m.sess.Status(); !ok || st.Text != "Pushed -12" {
		t.Errorf("status = %+v, %v", st, ok)
	}
}

func TestSessionModelInvalidInputKept(t *testing.T) {
	m := typeKeys(newTestModel(), "enter")
	if st, _ := m.sess.Status(); st.Text != "Enter a number" || !st.Error {
		t.Errorf("status = %+v, want error 'Enter a number'", st)
	}

	m = typeKeys(m, "-", "enter")
	if m.input != "-" {
		t.Errorf("input = %q, want kept after rejected push", m.input)
	}
	if m.sess.Len() != 0 {
		t.Error("rejected push changed the stack")
	}
}

func TestSessionModelCommands(t *testing.T) {
	m := typeKeys(newTestModel(session.WithKind(tree.KindComplete)),
		"1", "enter", "2", "enter", "3", "enter", "k", "p")

	if m.sess.Len() != 2 {
		t.Errorf("Len() = %d, want 2", m.sess.Len())
	}
	log := m.sess.Log()
	if got := log[len(log)-2:]; got[0] != "PEEK -> 3" || got[1] != "POP 3" {
		t.Errorf("log tail = %v", got)
	}

	m = typeKeys(m, "c")
	if m.sess.Len() != 0 || m.sess.Tree().Len() != 0 {
		t.Error("clear left data behind")
	}
}

func TestSessionModelEditing(t *testing.T) {
	m := typeKeys(newTestModel(), "4", "2", "backspace", "x", "7")
	if m.input != "47" {
		t.Errorf("input = %q, want 47", m.input)
	}

	m = typeKeys(m, "1", "2", "3", "4", "5", "6", "7", "8", "9", "0", "1")
	if len(m.input) != maxInputLen {
		t.Errorf("input length = %d, want capped at %d", len(m.input), maxInputLen)
	}
}

func TestSessionModelViewControls(t *testing.T) {
	m := typeKeys(newTestModel(), "5", "enter")
	if !m.follow {
		t.Fatal("model should follow the tree initially")
	}

	m = typeKeys(m, "right")
	if m.follow {
		t.Error("pan should stop following")
	}
	fitted := m.view(m.scene())
	m = typeKeys(m, "+")
	if m.sess.View.Step != 1 {
		t.Errorf("Step = %d, want 1", m.sess.View.Step)
	}
	if m.sess.View.Scale <= fitted.Scale {
		t.Error("zoom in did not increase the scale")
	}

	m = typeKeys(m, "_", "_")
	if m.sess.View.Step != -1 {
		t.Errorf("Step = %d, want -1", m.sess.View.Step)
	}

	m = typeKeys(m, "r")
	if !m.follow {
		t.Error("reset should follow the tree again")
	}
}

func TestSessionModelMinusZoomsOnceTyping(t *testing.T) {
	m := typeKeys(newTestModel(), "3", "-")
	if m.input != "3" {
		t.Errorf("input = %q, want 3", m.input)
	}
	if m.sess.View.Step != -1 {
		t.Errorf("Step = %d, want -1", m.sess.View.Step)
	}
}

func TestSessionModelQuit(t *testing.T) {
	for _, key := range []string{"q", "esc", "ctrl+c"} {
		_, cmd := newTestModel().handleKey(key)
		if cmd == nil {
			t.Fatalf("%s: no command", key)
		}
		if _, ok := cmd().(tea.QuitMsg); !ok {
			t.Errorf("%s did not quit", key)
		}
	}
}

func TestSessionModelView(t *testing.T) {
	m := newTestModel()
	v := m.View()
	for _, want := range []string{appName, "BST is empty", "Stack is empty", "Value:"} {
		if !strings.Contains(v, want) {
			t.Errorf("View() missing %q", want)
		}
	}

	m = typeKeys(m, "5", "enter", "3", "enter")
	v = m.View()
	for _, want := range []string{"(5)", "[3]", "← TOP", "PUSH 3", "Pushed 3"} {
		if !strings.Contains(v, want) {
			t.Errorf("View() missing %q:\n%s", want, v)
		}
	}
}
