package cli

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/matzehuels/treestack/pkg/layout"
	"github.com/matzehuels/treestack/pkg/observability"
	"github.com/matzehuels/treestack/pkg/render"
	"github.com/matzehuels/treestack/pkg/session"
	"github.com/matzehuels/treestack/pkg/viewport"
)

// tuiCommand creates the interactive session command.
func (c *CLI) tuiCommand() *cobra.Command {
	var treeKind, logFile string

	cmd := &cobra.Command{
		Use:   "tui",
		Short: "Start an interactive session",
		Long: `Start an interactive session. Type a number and press enter to push it.

Keys:
  0-9, -        edit the value (- starts a negative number)
  enter         push
  p / k / c     pop / peek / clear
  arrows        pan the tree
  + / _         zoom in / out (also the mouse wheel; - zooms out once a value is typed)
  r             reset the view
  q, esc        quit`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runTUI(cmd.Context(), treeKind, logFile)
		},
	}

	cmd.Flags().StringVar(&treeKind, "tree", "", "tree kind: bst, complete (default from config, else bst)")
	cmd.Flags().StringVar(&logFile, "log-file", "", "write debug logs to this file while the UI is running")

	return cmd
}

func (c *CLI) runTUI(ctx context.Context, treeKind, logFile string) error {
	opts, err := c.config.sessionOptions(treeKind)
	if err != nil {
		return err
	}

	// The alternate screen owns the terminal; logs go to a file or nowhere.
	observability.Reset()
	if logFile != "" {
		f, err := os.OpenFile(logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return err
		}
		defer f.Close()
		hooks := &logHooks{logger: newLogger(f, LogDebug)}
		observability.SetSessionHooks(hooks)
	}

	s := session.New(opts...)
	m := newSessionModel(ctx, s, c.config.StatusTTL)
	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseCellMotion(), tea.WithContext(ctx))
	if _, err := p.Run(); err != nil {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		return err
	}

	printInfo(os.Stdout, "Session %s: %d commands, %d on the stack", shortID(s.ID), len(s.Log()), s.Len())
	return nil
}

// =============================================================================
// sessionModel - Interactive stack/tree session
// =============================================================================

// Panel geometry in terminal cells.
const (
	stackPanelWidth = 18
	logPanelWidth   = 18
	headerRows      = 3 // title, help, blank
	footerRows      = 3 // blank, input, status
	maxInputLen     = 11
	panCells        = 4
)

var (
	tuiHelpStyle   = lipgloss.NewStyle().Foreground(colorDim)
	tuiInputStyle  = lipgloss.NewStyle().Foreground(colorWhite).Bold(true)
	tuiFrameStyle  = lipgloss.NewStyle().Foreground(colorBlue).Bold(true)
	tuiTopStyle    = lipgloss.NewStyle().Foreground(colorRed).Bold(true)
	tuiTreeStyle   = lipgloss.NewStyle().Foreground(colorOrange)
	tuiHeaderStyle = lipgloss.NewStyle().Foreground(colorGray).Bold(true)
)

// statusTickMsg re-renders the view once a status line may have expired.
type statusTickMsg struct{}

// sessionModel is the bubbletea model for an interactive session.
type sessionModel struct {
	ctx       context.Context
	sess      *session.Session
	statusTTL time.Duration

	input  string
	follow bool // keep the tree centered until the user pans or zooms
	width  int
	height int
}

func newSessionModel(ctx context.Context, s *session.Session, statusTTL time.Duration) sessionModel {
	if statusTTL <= 0 {
		statusTTL = session.DefaultStatusTTL
	}
	return sessionModel{
		ctx:       ctx,
		sess:      s,
		statusTTL: statusTTL,
		follow:    true,
		width:     80,
		height:    24,
	}
}

func (m sessionModel) Init() tea.Cmd {
	return nil
}

func (m sessionModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg.String())
	case tea.MouseMsg:
		if msg.Action != tea.MouseActionPress {
			return m, nil
		}
		switch msg.Button {
		case tea.MouseButtonWheelUp:
			m.zoom(1, m.cellPivot(msg.X, msg.Y))
		case tea.MouseButtonWheelDown:
			m.zoom(-1, m.cellPivot(msg.X, msg.Y))
		}
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
	case statusTickMsg:
		// View re-reads the status and drops it once expired.
	}
	return m, nil
}

func (m sessionModel) handleKey(key string) (tea.Model, tea.Cmd) {
	switch key {
	case "ctrl+c", "q", "esc":
		return m, tea.Quit
	case "enter":
		if _, err := m.sess.Dispatch(m.ctx, session.CmdPush, m.input); err == nil {
			m.input = ""
		}
		return m, m.statusTick()
	case "p":
		_, _ = m.sess.Dispatch(m.ctx, session.CmdPop, "")
		return m, m.statusTick()
	case "k":
		_, _ = m.sess.Dispatch(m.ctx, session.CmdPeek, "")
		return m, m.statusTick()
	case "c":
		_, _ = m.sess.Dispatch(m.ctx, session.CmdClear, "")
		return m, m.statusTick()
	case "backspace":
		if m.input != "" {
			m.input = m.input[:len(m.input)-1]
		}
	case "left":
		m.pan(-panCells*render.CellWidth, 0)
	case "right":
		m.pan(panCells*render.CellWidth, 0)
	case "up":
		m.pan(0, -render.CellHeight)
	case "down":
		m.pan(0, render.CellHeight)
	case "+", "=":
		m.zoom(1, m.centerPivot())
	case "_":
		m.zoom(-1, m.centerPivot())
	case "-":
		if m.input == "" {
			m.input = "-"
		} else {
			m.zoom(-1, m.centerPivot())
		}
	case "r":
		m.follow = true
	default:
		if len(key) == 1 && key[0] >= '0' && key[0] <= '9' && len(m.input) < maxInputLen {
			m.input += key
		}
	}
	return m, nil
}

func (m sessionModel) statusTick() tea.Cmd {
	return tea.Tick(m.statusTTL, func(time.Time) tea.Msg { return statusTickMsg{} })
}

// canvasSize returns the tree panel size in cells.
func (m sessionModel) canvasSize() (cols, rows int) {
	cols = max(m.width-stackPanelWidth-logPanelWidth-4, 10)
	rows = max(m.height-headerRows-footerRows, 3)
	return cols, rows
}

func (m sessionModel) scene() render.Scene {
	return render.NewScene(m.sess)
}

// view returns the viewport in effect, fitting the tree while following.
func (m sessionModel) view(sc render.Scene) viewport.Viewport {
	if m.follow {
		cols, rows := m.canvasSize()
		return render.TextViewport(sc, cols, rows)
	}
	return m.sess.View
}

// detach freezes the fitted view so pan and zoom start from what is shown.
func (m *sessionModel) detach() {
	if m.follow {
		m.sess.View = m.view(m.scene())
		m.follow = false
	}
}

func (m *sessionModel) pan(dx, dy float64) {
	m.detach()
	m.sess.View.Pan(dx, dy)
}

func (m *sessionModel) zoom(steps int, pivot layout.Point) {
	m.detach()
	m.sess.View.ZoomAt(steps, pivot)
}

func (m sessionModel) centerPivot() layout.Point {
	cols, rows := m.canvasSize()
	return layout.Point{X: float64(cols) * render.CellWidth / 2, Y: float64(rows) * render.CellHeight / 2}
}

// cellPivot converts a terminal cell to canvas screen units.
func (m sessionModel) cellPivot(x, y int) layout.Point {
	col := x - stackPanelWidth - 2
	row := y - headerRows
	return layout.Point{X: float64(col) * render.CellWidth, Y: float64(row) * render.CellHeight}
}

func (m sessionModel) View() string {
	var b strings.Builder

	sc := m.scene()
	cols, rows := m.canvasSize()

	b.WriteString(StyleTitle.Render(appName))
	b.WriteString(StyleDim.Render(fmt.Sprintf("  %s · %d nodes · height %d", sc.TreeLabel(), len(sc.Nodes), sc.Height)))
	b.WriteString("\n")
	b.WriteString(tuiHelpStyle.Render("⏎ push  p pop  k peek  c clear  ←↑↓→ pan  +/_ zoom  r reset  q quit"))
	b.WriteString("\n\n")

	canvas := tuiTreeStyle.Render(render.RenderText(sc, cols, rows, m.view(sc)))
	body := lipgloss.JoinHorizontal(lipgloss.Top,
		lipgloss.NewStyle().Width(stackPanelWidth).Height(rows).Render(m.stackPanel(rows)),
		"  ",
		lipgloss.NewStyle().Width(cols).Height(rows).Render(canvas),
		"  ",
		lipgloss.NewStyle().Width(logPanelWidth).Height(rows).Render(m.logPanel(rows)),
	)
	b.WriteString(body)
	b.WriteString("\n\n")

	b.WriteString(StyleDim.Render("Value: "))
	b.WriteString(tuiInputStyle.Render(m.input + "█"))
	b.WriteString("\n")
	if st, ok := m.sess.Status(); ok {
		if st.Error {
			b.WriteString(StyleError.Render(st.Text))
		} else {
			b.WriteString(StyleSuccess.Render(st.Text))
		}
	}

	return b.String()
}

// stackPanel draws the stack top first, as many frames as fit.
func (m sessionModel) stackPanel(rows int) string {
	entries := m.sess.Entries()
	if len(entries) == 0 {
		return StyleDim.Render("Stack is empty")
	}

	fit := max(rows-4, 1) // borders and header
	var data [][]string
	for i := len(entries) - 1; i >= 0 && len(data) < fit; i-- {
		marker := ""
		if i == len(entries)-1 {
			marker = "← TOP"
		}
		data = append(data, []string{strconv.Itoa(entries[i].Value), marker})
	}
	if hidden := len(entries) - len(data); hidden > 0 {
		data[len(data)-1] = []string{"…", fmt.Sprintf("+%d", hidden+1)}
	}

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers("Stack", "").
		Rows(data...).
		StyleFunc(func(row, col int) lipgloss.Style {
			switch {
			case row == -1: // header
				return tuiHeaderStyle
			case col == 1:
				return tuiTopStyle
			default:
				return tuiFrameStyle
			}
		})
	return t.Render()
}

// logPanel shows the most recent operation log lines.
func (m sessionModel) logPanel(rows int) string {
	lines := m.sess.Log()
	fit := max(rows-1, 1)
	if len(lines) > fit {
		lines = lines[len(lines)-fit:]
	}
	var b strings.Builder
	b.WriteString(tuiHeaderStyle.Render("Log"))
	for _, l := range lines {
		b.WriteString("\n")
		b.WriteString(StyleDim.Render(l))
	}
	return b.String()
}
