package observability

import (
	"context"
	"errors"
	"testing"
	"time"
)

func TestNoopHooksDoNotPanic(t *testing.T) {
	ctx := context.Background()

	s := NoopSessionHooks{}
	s.OnCommand(ctx, "id", "push", time.Millisecond, nil)
	s.OnCommand(ctx, "id", "pop", time.Millisecond, errors.New("Stack empty"))
	s.OnLayout(ctx, "id", 7, 3, time.Millisecond)

	r := NoopRenderHooks{}
	r.OnRenderStart(ctx, []string{"svg"})
	r.OnRenderComplete(ctx, []string{"svg"}, time.Second, nil)
}

func TestGlobalHooksRegistry(t *testing.T) {
	Reset()
	defer Reset()

	if _, ok := Session().(NoopSessionHooks); !ok {
		t.Error("Session() should return NoopSessionHooks by default")
	}
	if _, ok := Render().(NoopRenderHooks); !ok {
		t.Error("Render() should return NoopRenderHooks by default")
	}

	customSession := &testSessionHooks{}
	SetSessionHooks(customSession)
	if Session() != customSession {
		t.Error("SetSessionHooks should set custom hooks")
	}

	customRender := &testRenderHooks{}
	SetRenderHooks(customRender)
	if Render() != customRender {
		t.Error("SetRenderHooks should set custom hooks")
	}

	// nil must not replace registered hooks
	SetSessionHooks(nil)
	if Session() != customSession {
		t.Error("SetSessionHooks(nil) should keep existing hooks")
	}

	Reset()
	if _, ok := Session().(NoopSessionHooks); !ok {
		t.Error("Reset() should restore NoopSessionHooks")
	}
}

func TestCustomHooksReceiveEvents(t *testing.T) {
	Reset()
	defer Reset()

	h := &testSessionHooks{}
	SetSessionHooks(h)

	Session().OnCommand(context.Background(), "abc", "push", time.Millisecond, nil)
	Session().OnLayout(context.Background(), "abc", 3, 2, time.Millisecond)

	if len(h.commands) != 1 || h.commands[0] != "push" {
		t.Errorf("commands = %v, want [push]", h.commands)
	}
	if h.layouts != 1 {
		t.Errorf("layouts = %d, want 1", h.layouts)
	}
}

type testSessionHooks struct {
	commands []string
	layouts  int
}

func (h *testSessionHooks) OnCommand(_ context.Context, _, command string, _ time.Duration, _ error) {
	h.commands = append(h.commands, command)
}

func (h *testSessionHooks) OnLayout(context.Context, string, int, int, time.Duration) {
	h.layouts++
}

type testRenderHooks struct{}

func (testRenderHooks) OnRenderStart(context.Context, []string)                          {}
func (testRenderHooks) OnRenderComplete(context.Context, []string, time.Duration, error) {}
