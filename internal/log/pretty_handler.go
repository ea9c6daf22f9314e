package log

import (
	"context"
	"io"
	"log/slog"
	"strconv"
	"strings"
	"sync"
	"time"
)

// ANSI SGR sequences used by the pretty handler.
const (
	sgrReset   = "\x1b[0m"
	sgrFaint   = "\x1b[2m"
	sgrRed     = "\x1b[31m"
	sgrYellow  = "\x1b[33m"
	sgrBlue    = "\x1b[34m"
	sgrMagenta = "\x1b[35m"
)

// prettyHandler renders records as single coloured lines for interactive
// use:
//
//	12:04:05 INFO  starting docsite addr=0.0.0.0:8080
//
// Attributes added via WithAttrs are formatted once and replayed on every
// record. Groups become dotted key prefixes.
type prettyHandler struct {
	mu           *sync.Mutex
	out          io.Writer
	min          slog.Leveler
	prefix       string
	preformatted string
}

func newPrettyHandler(out io.Writer, opts *slog.HandlerOptions) *prettyHandler {
	min := slog.Leveler(slog.LevelInfo)
	if opts != nil && opts.Level != nil {
		min = opts.Level
	}
	return &prettyHandler{mu: &sync.Mutex{}, out: out, min: min}
}

func (h *prettyHandler) Enabled(_ context.Context, level slog.Level) bool {
	return level >= h.min.Level()
}

func (h *prettyHandler) Handle(_ context.Context, r slog.Record) error {
	var b strings.Builder
	b.Grow(128)

	when := r.Time
	if when.IsZero() {
		when = time.Now()
	}
	b.WriteString(sgrFaint)
	b.WriteString(when.Format(time.TimeOnly))
	b.WriteString(sgrReset)
	b.WriteByte(' ')
	b.WriteString(levelTag(r.Level))
	b.WriteByte(' ')
	b.WriteString(r.Message)
	b.WriteString(h.preformatted)
	r.Attrs(func(a slog.Attr) bool {
		writeAttr(&b, h.prefix, a)
		return true
	})
	b.WriteByte('\n')

	h.mu.Lock()
	defer h.mu.Unlock()
	_, err := io.WriteString(h.out, b.String())
	return err
}

func (h *prettyHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	if len(attrs) == 0 {
		return h
	}
	var b strings.Builder
	for _, a := range attrs {
		writeAttr(&b, h.prefix, a)
	}
	c := *h
	c.preformatted = h.preformatted + b.String()
	return &c
}

func (h *prettyHandler) WithGroup(name string) slog.Handler {
	if name == "" {
		return h
	}
	c := *h
	c.prefix = h.prefix + name + "."
	return &c
}

func levelTag(l slog.Level) string {
	switch {
	case l >= slog.LevelError:
		return sgrRed + "ERROR" + sgrReset
	case l >= slog.LevelWarn:
		return sgrYellow + "WARN " + sgrReset
	case l >= slog.LevelInfo:
		return sgrBlue + "INFO " + sgrReset
	default:
		return sgrMagenta + "DEBUG" + sgrReset
	}
}

func writeAttr(b *strings.Builder, prefix string, a slog.Attr) {
	a.Value = a.Value.Resolve()
	if a.Equal(slog.Attr{}) {
		return
	}
	if a.Value.Kind() == slog.KindGroup {
		group := prefix
		if a.Key != "" {
			group += a.Key + "."
		}
		for _, member := range a.Value.Group() {
			writeAttr(b, group, member)
		}
		return
	}

	b.WriteByte(' ')
	if a.Key == "error" {
		b.WriteString(sgrRed)
	} else {
		b.WriteString(sgrFaint)
	}
	b.WriteString(prefix)
	b.WriteString(a.Key)
	b.WriteByte('=')
	b.WriteString(sgrReset)
	b.WriteString(quoteValue(a.Value.String()))
}

func quoteValue(s string) string {
	if strings.ContainsAny(s, " \t\n\"=") {
		return strconv.Quote(s)
	}
	return s
}
