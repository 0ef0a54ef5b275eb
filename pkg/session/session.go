package session

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/matzehuels/treestack/pkg/errors"
	"github.com/matzehuels/treestack/pkg/layout"
	"github.com/matzehuels/treestack/pkg/observability"
	"github.com/matzehuels/treestack/pkg/stack"
	"github.com/matzehuels/treestack/pkg/tree"
	"github.com/matzehuels/treestack/pkg/viewport"
)

// DefaultStatusTTL is how long a status line stays visible.
const DefaultStatusTTL = 2 * time.Second

// Result describes a successful dispatch.
type Result struct {
	Command Command
	Entry   stack.Entry
	Log     string
	Status  string
}

// Status is the transient message shown after the last action.
type Status struct {
	Text  string
	Error bool
	At    time.Time
}

// handler runs one command against the session.
type handler func(s *Session, input string) (Result, error)

// handlers is the dispatch table.
var handlers = map[Command]handler{
	CmdPush:  (*Session).push,
	CmdPop:   (*Session).pop,
	CmdPeek:  (*Session).peek,
	CmdClear: (*Session).clear,
}

// Option configures a Session.
type Option func(*Session)

// WithKind selects the tree variant.
func WithKind(k tree.Kind) Option { return func(s *Session) { s.kind = k } }

// WithDuplicatePolicy sets how BST duplicates are pushed.
func WithDuplicatePolicy(p stack.DuplicatePolicy) Option {
	return func(s *Session) { s.dupPolicy = p }
}

// WithLayout overrides the layout constants.
func WithLayout(o layout.Options) Option { return func(s *Session) { s.layoutOpts = o } }

// WithStatusTTL sets how long status messages stay visible. Non-positive
// durations keep DefaultStatusTTL.
func WithStatusTTL(d time.Duration) Option {
	return func(s *Session) {
		if d > 0 {
			s.statusTTL = d
		}
	}
}

// WithClock replaces time.Now, for tests.
func WithClock(now func() time.Time) Option { return func(s *Session) { s.now = now } }

// Session owns the stack model, its layout, the viewport and the log.
// It is not safe for concurrent use; the caller's event loop serializes
// commands.
type Session struct {
	ID   string
	View viewport.Viewport

	kind       tree.Kind
	dupPolicy  stack.DuplicatePolicy
	layoutOpts layout.Options
	statusTTL  time.Duration
	now        func() time.Time

	model  *stack.Model
	layout layout.Layout
	log    []string
	status Status
}

// New creates a session with an empty stack. The default tree is a BST.
func New(opts ...Option) *Session {
	s := &Session{
		ID:         uuid.NewString(),
		View:       viewport.New(),
		kind:       tree.KindBST,
		layoutOpts: layout.DefaultOptions(),
		statusTTL:  DefaultStatusTTL,
		now:        time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	s.model = stack.New(s.kind, stack.WithDuplicatePolicy(s.dupPolicy))
	s.layout = layout.Compute(s.model.Tree(), s.layoutOpts)
	return s
}

// Dispatch runs cmd with the raw input field text. On failure the model is
// untouched and the error's user message becomes the status line.
func (s *Session) Dispatch(ctx context.Context, cmd Command, input string) (Result, error) {
	start := time.Now()
	res, err := s.dispatch(cmd, input)
	observability.Session().OnCommand(ctx, s.ID, string(cmd), time.Since(start), err)

	if err != nil {
		s.setStatus(errors.UserMessage(err), true)
		return Result{Command: cmd}, err
	}

	s.log = append(s.log, res.Log)
	s.setStatus(res.Status, false)
	if cmd != CmdPeek {
		s.relayout(ctx)
	}
	return res, nil
}

// Exec dispatches a parsed instruction.
func (s *Session) Exec(ctx context.Context, in Instruction) (Result, error) {
	return s.Dispatch(ctx, in.Command, in.Arg)
}

func (s *Session) dispatch(cmd Command, input string) (Result, error) {
	h, ok := handlers[cmd]
	if !ok {
		return Result{}, errors.New(errors.ErrCodeInvalidInput, "unknown command %q", cmd)
	}
	res, err := h(s, input)
	res.Command = cmd
	return res, err
}

func (s *Session) push(input string) (Result, error) {
	v, err := ParseValue(input)
	if err != nil {
		return Result{}, err
	}
	e, err := s.model.Push(v)
	if err != nil {
		if errors.Is(err, errors.ErrCodeDuplicateValue) {
			return Result{}, errors.Wrap(errors.ErrCodeDuplicateValue, err, "Duplicate value %d", v)
		}
		return Result{}, err
	}
	return Result{
		Entry:  e,
		Log:    fmt.Sprintf("PUSH %d", v),
		Status: fmt.Sprintf("Pushed %d", v),
	}, nil
}

func (s *Session) pop(string) (Result, error) {
	e, err := s.model.Pop()
	if err != nil {
		return Result{}, err
	}
	return Result{
		Entry:  e,
		Log:    fmt.Sprintf("POP %d", e.Value),
		Status: fmt.Sprintf("Popped %d", e.Value),
	}, nil
}

func (s *Session) peek(string) (Result, error) {
	e, err := s.model.Peek()
	if err != nil {
		return Result{}, err
	}
	return Result{
		Entry:  e,
		Log:    fmt.Sprintf("PEEK -> %d", e.Value),
		Status: fmt.Sprintf("Top value: %d", e.Value),
	}, nil
}

func (s *Session) clear(string) (Result, error) {
	s.model.Clear()
	return Result{Log: "CLEAR", Status: "Cleared all data"}, nil
}

func (s *Session) relayout(ctx context.Context) {
	start := time.Now()
	s.layout = layout.Compute(s.model.Tree(), s.layoutOpts)
	observability.Session().OnLayout(ctx, s.ID, s.model.Tree().Len(), s.layout.Levels, time.Since(start))
}

func (s *Session) setStatus(text string, isErr bool) {
	s.status = Status{Text: text, Error: isErr, At: s.now()}
}

// Status returns the current status line, or ok == false once it expired.
func (s *Session) Status() (Status, bool) {
	if s.status.Text == "" || s.now().Sub(s.status.At) >= s.statusTTL {
		return Status{}, false
	}
	return s.status, true
}

// Log returns a copy of the operation log.
func (s *Session) Log() []string {
	out := make([]string, len(s.log))
	copy(out, s.log)
	return out
}

// Kind returns the tree variant.
func (s *Session) Kind() tree.Kind { return s.kind }

// Tree returns the current tree. Callers must not mutate it.
func (s *Session) Tree() tree.Tree { return s.model.Tree() }

// Entries returns the stack entries, bottom first.
func (s *Session) Entries() []stack.Entry { return s.model.Entries() }

// Len returns the stack size.
func (s *Session) Len() int { return s.model.Len() }

// Layout returns the layout computed after the last structural change.
func (s *Session) Layout() layout.Layout { return s.layout }

// LayoutOptions returns the layout constants in use.
func (s *Session) LayoutOptions() layout.Options { return s.layoutOpts }
