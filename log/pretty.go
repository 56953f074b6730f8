package log

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"strconv"
	"strings"
	"sync"

	"github.com/charmbracelet/lipgloss"
)

type prettyStyles struct {
	key, str, num, muted lipgloss.Style
	level                map[slog.Level]lipgloss.Style
}

func makePrettyStyles(w io.Writer) prettyStyles {
	r := lipgloss.NewRenderer(w)

	return prettyStyles{
		key:   r.NewStyle().Foreground(lipgloss.Color("8")),
		str:   r.NewStyle().Foreground(lipgloss.Color("6")),
		num:   r.NewStyle().Foreground(lipgloss.Color("3")),
		muted: r.NewStyle().Foreground(lipgloss.Color("8")).Faint(true),
		level: map[slog.Level]lipgloss.Style{
			slog.Level(LevelTrace): r.NewStyle().Foreground(lipgloss.Color("5")),
			slog.LevelDebug:        r.NewStyle().Foreground(lipgloss.Color("4")),
			slog.LevelInfo:         r.NewStyle().Foreground(lipgloss.Color("2")),
			slog.LevelWarn:         r.NewStyle().Foreground(lipgloss.Color("3")).Bold(true),
			slog.LevelError:        r.NewStyle().Foreground(lipgloss.Color("1")).Bold(true),
		},
	}
}

// prettyHandler writes one line per record:
//
//	TIME LEVEL message key=value group.key=value
type prettyHandler struct {
	opts   slog.HandlerOptions
	styles prettyStyles
	mu     *sync.Mutex
	w      io.Writer

	// preformatted attributes from WithAttrs, and the current group prefix.
	attrs  []byte
	prefix string
}

func newPrettyHandler(w io.Writer, opts *slog.HandlerOptions) *prettyHandler {
	return &prettyHandler{
		opts:   *opts,
		styles: makePrettyStyles(w),
		mu:     &sync.Mutex{},
		w:      w,
	}
}

func (h *prettyHandler) Enabled(_ context.Context, level slog.Level) bool {
	minLevel := slog.LevelInfo
	if h.opts.Level != nil {
		minLevel = h.opts.Level.Level()
	}

	return level >= minLevel
}

func (h *prettyHandler) Handle(_ context.Context, r slog.Record) error {
	var buf bytes.Buffer

	if !r.Time.IsZero() {
		if a := h.replace(nil, slog.Time(slog.TimeKey, r.Time)); !a.Equal(slog.Attr{}) {
			buf.WriteString(h.styles.muted.Render(a.Value.String()))
			buf.WriteByte(' ')
		}
	}

	buf.WriteString(h.levelLabel(r.Level))
	buf.WriteByte(' ')
	buf.WriteString(r.Message)

	if h.opts.AddSource && r.PC != 0 {
		if src := r.Source(); src != nil {
			h.writeAttr(&buf, "", slog.String(slog.SourceKey,
				src.File+":"+strconv.Itoa(src.Line)))
		}
	}

	buf.Write(h.attrs)

	r.Attrs(func(a slog.Attr) bool {
		h.writeAttr(&buf, h.prefix, a)

		return true
	})

	buf.WriteByte('\n')

	h.mu.Lock()
	defer h.mu.Unlock()

	_, err := h.w.Write(buf.Bytes())

	return err
}

func (h *prettyHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	if len(attrs) == 0 {
		return h
	}

	var buf bytes.Buffer

	buf.Write(h.attrs)

	for _, a := range attrs {
		h.writeAttr(&buf, h.prefix, a)
	}

	clone := *h
	clone.attrs = buf.Bytes()

	return &clone
}

func (h *prettyHandler) WithGroup(name string) slog.Handler {
	if name == "" {
		return h
	}

	clone := *h
	clone.prefix = h.prefix + name + "."

	return &clone
}

func (h *prettyHandler) levelLabel(level slog.Level) string {
	label := strings.ToUpper(Level(level).String())

	style, ok := h.styles.level[level]
	if !ok {
		style = h.styles.level[slog.LevelInfo]
	}

	return style.Render(label)
}

func (h *prettyHandler) replace(groups []string, a slog.Attr) slog.Attr {
	if h.opts.ReplaceAttr == nil {
		return a
	}

	return h.opts.ReplaceAttr(groups, a)
}

func (h *prettyHandler) writeAttr(buf *bytes.Buffer, prefix string, a slog.Attr) {
	a.Value = a.Value.Resolve()

	if a.Equal(slog.Attr{}) {
		return
	}

	if a.Value.Kind() == slog.KindGroup {
		sub := prefix
		if a.Key != "" {
			sub += a.Key + "."
		}

		for _, ga := range a.Value.Group() {
			h.writeAttr(buf, sub, ga)
		}

		return
	}

	buf.WriteByte(' ')
	buf.WriteString(h.styles.key.Render(prefix + a.Key + "="))
	buf.WriteString(h.value(a.Value))
}

func (h *prettyHandler) value(v slog.Value) string {
	switch v.Kind() {
	case slog.KindInt64, slog.KindUint64, slog.KindFloat64, slog.KindDuration:
		return h.styles.num.Render(v.String())

	case slog.KindBool:
		return h.styles.num.Render(strconv.FormatBool(v.Bool()))

	default:
		s := v.String()
		if strings.ContainsAny(s, " \t\n\"=") {
			s = strconv.Quote(s)
		}

		return h.styles.str.Render(s)
	}
}
