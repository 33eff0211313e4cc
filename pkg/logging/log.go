package logging

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"sync"
)

// ReadableTextHandler is a slog handler that writes log entries as single,
// pipe-separated lines which are easy to read on a console.
type ReadableTextHandler struct {
	options ReadableTextHandlerOptions
	mu      *sync.Mutex
	out     io.Writer
	groups  []attrGroup
}

type ReadableTextHandlerOptions struct {
	Level slog.Leveler
}

// A group with a name and the attributes added to it.
type attrGroup struct {
	name  string
	attrs []slog.Attr
}

func NewReadableTextHandler(out io.Writer, options *ReadableTextHandlerOptions) *ReadableTextHandler {
	handler := &ReadableTextHandler{out: out, mu: &sync.Mutex{}}
	if options != nil {
		handler.options = *options
	}
	if handler.options.Level == nil {
		handler.options.Level = slog.LevelInfo
	}
	// Create the root group
	handler.groups = []attrGroup{{name: ""}}
	return handler
}

func (h *ReadableTextHandler) Enabled(ctx context.Context, level slog.Level) bool {
	return level >= h.options.Level.Level()
}

func (h *ReadableTextHandler) Handle(ctx context.Context, record slog.Record) error {
	var sb strings.Builder
	sb.WriteString(record.Time.Format("2006.01.02"))
	sb.WriteString("|")
	sb.WriteString(record.Time.Format("15:04:05.000"))
	sb.WriteString("|")
	sb.WriteString(record.Level.String())
	sb.WriteString("|")
	sb.WriteString(record.Message)

	// Collect the attributes from the groups and from the record itself
	attrStrings := []string{}
	groupPrefix := ""
	for _, group := range h.groups {
		if group.name != "" {
			groupPrefix += group.name + "."
		}
		for _, attr := range group.attrs {
			attrStrings = append(attrStrings, formatAttr(attr, groupPrefix)...)
		}
	}
	record.Attrs(func(attr slog.Attr) bool {
		attrStrings = append(attrStrings, formatAttr(attr, groupPrefix)...)
		return true
	})
	if len(attrStrings) > 0 {
		sb.WriteString("|")
		sb.WriteString(strings.Join(attrStrings, ", "))
	}
	sb.WriteString("\n")

	// Lock and write the log entry
	h.mu.Lock()
	defer h.mu.Unlock()
	_, err := h.out.Write([]byte(sb.String()))
	return err
}

func (h *ReadableTextHandler) WithGroup(name string) slog.Handler {
	if name == "" {
		return h
	}
	h2 := h.clone()
	h2.groups = append(h2.groups, attrGroup{name: name})
	return h2
}

func (h *ReadableTextHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	if len(attrs) == 0 {
		return h
	}
	h2 := h.clone()
	lastGroup := &h2.groups[len(h2.groups)-1]
	lastGroup.attrs = append(lastGroup.attrs, attrs...)
	return h2
}

func (h *ReadableTextHandler) clone() *ReadableTextHandler {
	h2 := *h
	h2.groups = make([]attrGroup, len(h.groups))
	copy(h2.groups, h.groups)
	return &h2
}

// Converts an attribute into its string form, flattening nested groups.
func formatAttr(attr slog.Attr, groupPrefix string) []string {
	attr.Value = attr.Value.Resolve()
	if attr.Equal(slog.Attr{}) {
		return nil
	}
	if attr.Value.Kind() == slog.KindGroup {
		groupAttrs := attr.Value.Group()
		if len(groupAttrs) == 0 {
			return nil
		}
		if attr.Key != "" {
			groupPrefix += attr.Key + "."
		}
		attrStrings := []string{}
		for _, groupAttr := range groupAttrs {
			attrStrings = append(attrStrings, formatAttr(groupAttr, groupPrefix)...)
		}
		return attrStrings
	}
	return []string{fmt.Sprintf("%s%s=%s", groupPrefix, attr.Key, attr.Value.String())}
}
