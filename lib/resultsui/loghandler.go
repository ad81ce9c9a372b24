// Copyright 2026 The Venuedesk Authors
// SPDX-License-Identifier: Apache-2.0

package resultsui

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"sync"
)

// statusRingSize bounds the in-memory log tail shown by the log popup.
const statusRingSize = 64

// StatusHandler is a slog.Handler that keeps a bounded tail of
// formatted records in memory for the status bar and the log popup.
// The TUI owns the terminal, so log output cannot go to stderr while
// the program runs; it surfaces in the UI instead (and, wrapped in a
// multi-handler by the caller, in the log file).
type StatusHandler struct {
	mutex sync.Mutex
	ring  []string
	level slog.Level
}

// NewStatusHandler creates a handler recording records at or above
// level.
func NewStatusHandler(level slog.Level) *StatusHandler {
	return &StatusHandler{level: level}
}

// Enabled implements slog.Handler.
func (handler *StatusHandler) Enabled(_ context.Context, level slog.Level) bool {
	return level >= handler.level
}

// Handle implements slog.Handler.
func (handler *StatusHandler) Handle(_ context.Context, record slog.Record) error {
	var line strings.Builder
	line.WriteString(record.Message)
	record.Attrs(func(attr slog.Attr) bool {
		fmt.Fprintf(&line, " %s=%v", attr.Key, attr.Value)
		return true
	})

	handler.mutex.Lock()
	defer handler.mutex.Unlock()
	handler.ring = append(handler.ring, line.String())
	if len(handler.ring) > statusRingSize {
		handler.ring = handler.ring[len(handler.ring)-statusRingSize:]
	}
	return nil
}

// WithAttrs implements slog.Handler. The ring is shared: grouped
// loggers feed the same tail.
func (handler *StatusHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return &derivedStatusHandler{parent: handler, attrs: attrs}
}

// WithGroup implements slog.Handler. Groups are flattened; the status
// line has no room for nesting.
func (handler *StatusHandler) WithGroup(string) slog.Handler {
	return handler
}

// Last returns the most recent record, or "".
func (handler *StatusHandler) Last() string {
	handler.mutex.Lock()
	defer handler.mutex.Unlock()
	if len(handler.ring) == 0 {
		return ""
	}
	return handler.ring[len(handler.ring)-1]
}

// Tail returns up to n recent records, oldest first.
func (handler *StatusHandler) Tail(n int) []string {
	handler.mutex.Lock()
	defer handler.mutex.Unlock()
	if n > len(handler.ring) {
		n = len(handler.ring)
	}
	tail := make([]string, n)
	copy(tail, handler.ring[len(handler.ring)-n:])
	return tail
}

// derivedStatusHandler carries WithAttrs attributes while writing into
// the parent's ring.
type derivedStatusHandler struct {
	parent *StatusHandler
	attrs  []slog.Attr
}

func (handler *derivedStatusHandler) Enabled(ctx context.Context, level slog.Level) bool {
	return handler.parent.Enabled(ctx, level)
}

func (handler *derivedStatusHandler) Handle(ctx context.Context, record slog.Record) error {
	record.AddAttrs(handler.attrs...)
	return handler.parent.Handle(ctx, record)
}

func (handler *derivedStatusHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	merged := make([]slog.Attr, 0, len(handler.attrs)+len(attrs))
	merged = append(merged, handler.attrs...)
	merged = append(merged, attrs...)
	return &derivedStatusHandler{parent: handler.parent, attrs: merged}
}

func (handler *derivedStatusHandler) WithGroup(string) slog.Handler {
	return handler
}
