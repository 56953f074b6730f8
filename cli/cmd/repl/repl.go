package repl

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/lipgloss"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/ardnew/funcad/lang"
	"github.com/ardnew/funcad/log"
)

const (
	prompt       = "➜ "
	defaultWidth = 80
)

func helpMessage() string {
	return `
Enter statements to add them to the session, or an expression to inspect it.

Commands:
  :help    Print this message
  :list    List the session's statements
  :json    Print the session as JSON
  :yaml    Print the session as YAML
  :clear   Clear the session and the screen
  :quit    Exit the REPL

Keys:
  Tab / Shift-Tab   Cycle through completions
  Enter             Accept the completion, or submit the line
  Esc               Cancel completion
  Up / Down         Navigate history
  Ctrl-C            Clear the line, or exit on an empty line
  Ctrl-D            Exit on an empty line
`
}

// Styles.
var (
	promptStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("6")).
			Bold(true)
	inputStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("15"))
	resultStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	errorStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("1"))
	hintStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	suggestionStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("4"))
	matchStyle      = lipgloss.NewStyle().
			Foreground(lipgloss.Color("4")).
			Bold(true)
	selectedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("0")).
			Background(lipgloss.Color("4"))
	selectedMatchStyle = selectedStyle.Bold(true)

	signatureStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	signatureNameStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("6")).
				Bold(true)
	currentParamStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("11")).
				Bold(true)
)

// Config configures [Run].
type Config struct {
	// Source, if not nil, is parsed as a document and preloaded into the
	// session.
	Source io.Reader
	// CacheDir holds the history file. Empty disables persistent history.
	CacheDir string
	Logger   log.Logger

	// Input and Output override the terminal, mainly for tests.
	Input  io.Reader
	Output io.Writer
}

// Run starts an interactive session and blocks until the user exits or ctx
// is cancelled.
func Run(ctx context.Context, cfg Config) (err error) {
	ctx, cancel := context.WithCancelCause(ctx)

	defer func(err *error) { cancel(*err) }(&err)

	cfg.Logger.TraceContext(ctx, "repl start",
		slog.String("cache_dir", cfg.CacheDir),
		slog.Bool("has_source", cfg.Source != nil),
	)

	session := NewSession(cfg.Logger)

	if cfg.Source != nil {
		if err := session.Load(ctx, cfg.Source); err != nil {
			return err
		}
	}

	var historyPath string
	if cfg.CacheDir != "" {
		historyPath = filepath.Join(cfg.CacheDir, baseHistory)
	}

	history := NewHistory(historyPath)

	if err := history.Load(); err != nil {
		cfg.Logger.WarnContext(ctx, "history not loaded", slog.Any("error", err))
	}

	cfg.Logger.TraceContext(ctx, "repl history loaded",
		slog.Int("entry_count", history.Len()))

	opts := []tea.ProgramOption{tea.WithContext(ctx)}
	if cfg.Input != nil {
		opts = append(opts, tea.WithInput(cfg.Input))
	}

	if cfg.Output != nil {
		opts = append(opts, tea.WithOutput(cfg.Output))
	}

	_, err = tea.NewProgram(newModel(ctx, session, history, cfg.Logger), opts...).Run()

	return err
}

// model is the Bubble Tea model for the REPL.
type model struct {
	ctxFunc      func() context.Context
	input        textinput.Model
	session      *Session
	history      *History
	logger       log.Logger
	historyIdx   int
	comp         completion
	selected     int    // index into comp.matches while cycling, else -1
	preTabText   string // input before cycling began
	preTabCursor int
	width        int
	quitting     bool
}

func newModel(
	ctx context.Context,
	session *Session,
	history *History,
	logger log.Logger,
) model {
	ti := textinput.New()
	ti.Prompt = promptStyle.Render(prompt)
	ti.Focus()
	ti.CharLimit = 1024
	ti.Width = defaultWidth

	return model{
		ctxFunc:    func() context.Context { return ctx },
		input:      ti,
		session:    session,
		history:    history,
		logger:     logger,
		historyIdx: history.Len(),
		selected:   -1,
		width:      defaultWidth,
	}
}

func (m model) Init() tea.Cmd {
	return textinput.Blink
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.input.Width = max(msg.Width-lipgloss.Width(prompt)-2, 1)

		return m, nil
	}

	var cmd tea.Cmd

	m.input, cmd = m.input.Update(msg)

	return m, cmd
}

func (m model) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	b.WriteString(m.input.View())
	b.WriteString("\n")
	b.WriteString(m.hint())
	b.WriteString("\n")

	return b.String()
}

// hint renders the line under the input.
func (m model) hint() string {
	input := m.input.Value()

	if m.historyIdx < m.history.Len() {
		return hintStyle.Render(fmt.Sprintf("%s/%d",
			lipgloss.NewStyle().Bold(true).Render(strconv.Itoa(m.historyIdx+1)),
			m.history.Len()))
	}

	if strings.TrimSpace(input) == "" {
		return hintStyle.Render("Enter a statement or expression, or :help")
	}

	if m.selected < 0 {
		call := detectFunctionCall(input, byteOffset(input, m.input.Position()))
		if call.inCall {
			if params, ok := signatureOf(m.session, call.name); ok {
				return renderSignatureHint(call.name, params, call)
			}
		}
	}

	return renderCandidateBar(m.comp.matches, m.selected, m.width)
}

func (m model) handleKey(msg tea.KeyMsg) (model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyCtrlC:
		if m.input.Value() == "" {
			m.quitting = true

			return m, tea.Quit
		}

		m.input.SetValue("")
		m.historyIdx = m.history.Len()
		m.refresh()

		return m, nil

	case tea.KeyCtrlD:
		if m.input.Value() == "" {
			m.quitting = true

			return m, tea.Quit
		}

		return m, nil

	case tea.KeyEnter:
		if m.selected >= 0 {
			m.refresh()

			return m, nil
		}

		return m.execute()

	case tea.KeyTab:
		m.cycle(1)

		return m, nil

	case tea.KeyShiftTab:
		m.cycle(-1)

		return m, nil

	case tea.KeyUp:
		m.historyMove(-1)

		return m, nil

	case tea.KeyDown:
		m.historyMove(1)

		return m, nil

	case tea.KeyEsc:
		if m.selected >= 0 {
			m.input.SetValue(m.preTabText)
			m.input.SetCursor(m.preTabCursor)
			m.refresh()
		}

		return m, nil
	}

	var cmd tea.Cmd

	m.historyIdx = m.history.Len()
	m.input, cmd = m.input.Update(msg)
	m.refresh()

	return m, cmd
}

// refresh recomputes completions for the current input and stops cycling.
func (m *model) refresh() {
	v := m.input.Value()

	m.comp = complete(v, byteOffset(v, m.input.Position()), m.session.Names())
	m.selected = -1
}

// cycle moves the completion selection by dir and writes the selected
// candidate into the input. A sole candidate is accepted immediately.
func (m *model) cycle(dir int) {
	n := len(m.comp.matches)

	switch {
	case n == 0:
		return

	case n == 1:
		m.replaceWord(m.comp.matches[0].Str)
		m.comp = completion{}
		m.selected = -1

		return

	case m.selected < 0:
		m.preTabText = m.input.Value()
		m.preTabCursor = m.input.Position()
		m.selected = 0

		if dir < 0 {
			m.selected = n - 1
		}

	default:
		m.selected = (m.selected + dir + n) % n
	}

	m.replaceWord(m.comp.matches[m.selected].Str)
}

func (m *model) replaceWord(s string) {
	v := m.input.Value()

	v = v[:m.comp.start] + s + v[m.comp.end:]
	m.comp.end = m.comp.start + len(s)

	m.input.SetValue(v)
	m.input.SetCursor(runeOffset(v, m.comp.end))
}

func (m *model) historyMove(dir int) {
	n := m.history.Len()
	idx := m.historyIdx + dir

	switch {
	case idx < 0:
		return

	case idx >= n:
		m.historyIdx = n
		m.input.SetValue("")

	default:
		line, err := m.history.Entry(idx)
		if err != nil {
			return
		}

		m.historyIdx = idx
		m.input.SetValue(line)
		m.input.CursorEnd()
	}

	m.refresh()
}

func (m model) execute() (model, tea.Cmd) {
	line := strings.TrimSpace(m.input.Value())
	if line == "" {
		return m, nil
	}

	ctx := m.ctxFunc()

	if err := m.history.Add(line); err != nil {
		m.logger.WarnContext(ctx, "history not saved", slog.Any("error", err))
	}

	m.historyIdx = m.history.Len()
	m.input.SetValue("")
	m.refresh()

	echo := tea.Println(promptStyle.Render(prompt) + inputStyle.Render(line))

	if strings.HasPrefix(line, ":") {
		m.logger.TraceContext(ctx, "repl command", slog.String("input", line))

		return m.command(ctx, line, echo)
	}

	m.logger.TraceContext(ctx, "repl eval", slog.String("input", line))

	res, err := m.session.Eval(ctx, line)
	if err != nil {
		return m, tea.Sequence(echo, tea.Println(errorStyle.Render(err.Error())))
	}

	return m, tea.Sequence(echo, tea.Println(renderResult(res)))
}

func (m model) command(
	ctx context.Context,
	line string,
	echo tea.Cmd,
) (model, tea.Cmd) {
	name, _, _ := strings.Cut(line, " ")

	switch name {
	case ":q", ":quit", ":exit":
		m.quitting = true

		return m, tea.Sequence(echo, tea.Quit)

	case ":h", ":help":
		return m, tea.Sequence(echo, tea.Println(helpMessage()))

	case ":l", ":list":
		return m, tea.Sequence(echo, tea.Println(m.list()))

	case ":json", ":yaml":
		var buf bytes.Buffer

		doc := m.session.Document()

		format := doc.FormatJSON
		if name == ":yaml" {
			format = doc.FormatYAML
		}

		if err := format(ctx, &buf, 2); err != nil {
			return m, tea.Sequence(echo, tea.Println(errorStyle.Render(err.Error())))
		}

		return m, tea.Sequence(echo,
			tea.Println(strings.TrimRight(buf.String(), "\n")))

	case ":c", ":clear":
		m.session.Clear()

		return m, tea.Sequence(tea.ClearScreen,
			tea.Println(hintStyle.Render("session cleared")))

	default:
		return m, tea.Sequence(echo, tea.Println(
			errorStyle.Render("unknown command: "+name+" (try :help)")))
	}
}

func (m model) list() string {
	if m.session.Len() == 0 {
		return hintStyle.Render("(empty session)")
	}

	var b strings.Builder

	for i, st := range m.session.Document().Statements {
		if i > 0 {
			b.WriteString("\n")
		}

		b.WriteString("  ")
		b.WriteString(lang.FormatStatement(st))
		b.WriteString(hintStyle.Render("  @" + st.Pos().String()))
	}

	return b.String()
}

// renderResult renders the canonical form of an evaluated line followed by
// its tree.
func renderResult(res Result) string {
	var b strings.Builder

	if res.Expr != nil {
		b.WriteString(resultStyle.Render(lang.FormatExpr(res.Expr)))
		b.WriteString("\n")
		b.WriteString(hintStyle.Render(lang.Inspect(res.Expr)))

		return b.String()
	}

	for i, st := range res.Statements {
		if i > 0 {
			b.WriteString("\n")
		}

		b.WriteString(resultStyle.Render("✔ " + lang.FormatStatement(st)))
	}

	return b.String()
}

// IsExit reports whether err only signals that the user left the REPL.
func IsExit(err error) bool {
	return err == nil || errors.Is(err, tea.ErrProgramKilled) ||
		errors.Is(err, context.Canceled)
}
