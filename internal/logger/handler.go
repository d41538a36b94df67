package logger

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"runtime"
	"strings"
)

const tagKey = "tag" // The slog attribute key used for filtering tags

// debugFilter dumps filter decisions to stderr; toggled by the -debug-log flag.
var debugFilter bool

// SetDebugFilter enables or disables filter decision tracing.
func SetDebugFilter(on bool) {
	debugFilter = on
}

// filteringHandler wraps a base slog.Handler to add custom filtering.
type filteringHandler struct {
	baseHandler slog.Handler
	cfg         *Config // Reference to processed config
}

// newFilteringHandler creates a handler with filtering capabilities.
func newFilteringHandler(base slog.Handler, cfg *Config) *filteringHandler {
	return &filteringHandler{
		baseHandler: base,
		cfg:         cfg,
	}
}

// Enabled checks if the level is enabled by the base handler.
func (h *filteringHandler) Enabled(ctx context.Context, level slog.Level) bool {
	return h.baseHandler.Enabled(ctx, level)
}

// Helper function for set lookup
func foundInSet(set map[string]struct{}, key string) bool {
	if set == nil {
		return false
	}
	_, found := set[key]
	return found
}

// Handle applies filtering logic before passing the record to the base handler.
func (h *filteringHandler) Handle(ctx context.Context, r slog.Record) error {
	if h.cfg == nil {
		return h.baseHandler.Handle(ctx, r)
	}

	pkg, file := recordOrigin(r)

	if dropped, why := h.filtered(pkg, file, recordTag(r)); dropped {
		if debugFilter {
			fmt.Fprintf(os.Stderr, "[FILTER] dropped (%s): %s\n", why, r.Message)
		}
		return nil
	}
	return h.baseHandler.Handle(ctx, r)
}

// filtered decides whether a record is suppressed by the configured
// package/file/tag lists. Disabled lists win over enabled lists.
func (h *filteringHandler) filtered(pkg, file, tag string) (bool, string) {
	cfg := h.cfg
	if pkg != "" {
		p := strings.ToLower(pkg)
		if foundInSet(cfg.disabledPackagesSet, p) {
			return true, "package disabled"
		}
		if cfg.enabledPackagesSet != nil && !foundInSet(cfg.enabledPackagesSet, p) {
			return true, "package not enabled"
		}
	}
	if file != "" {
		f := strings.ToLower(file)
		if foundInSet(cfg.disabledFilesSet, f) {
			return true, "file disabled"
		}
		if cfg.enabledFilesSet != nil && !foundInSet(cfg.enabledFilesSet, f) {
			return true, "file not enabled"
		}
	}
	if tag != "" {
		t := strings.ToLower(tag)
		if foundInSet(cfg.disabledTagsSet, t) {
			return true, "tag disabled"
		}
		if cfg.enabledTagsSet != nil && !foundInSet(cfg.enabledTagsSet, t) {
			return true, "tag not enabled"
		}
	} else if cfg.enabledTagsSet != nil {
		// Specific tags are enabled but this record carries none.
		return true, "untagged"
	}
	return false, ""
}

// recordOrigin extracts the package and file names of the logging call site,
// preferring the Source attribute and falling back to the record's PC.
func recordOrigin(r slog.Record) (pkg, file string) {
	r.Attrs(func(a slog.Attr) bool {
		if a.Key == slog.SourceKey {
			if source, ok := a.Value.Any().(*slog.Source); ok && source != nil {
				file = filepath.Base(source.File)
				pkg = filepath.Base(filepath.Dir(source.File))
				return false
			}
		}
		return true
	})
	if file == "" && r.PC != 0 {
		frames := runtime.CallersFrames([]uintptr{r.PC})
		if frame, more := frames.Next(); more {
			file = filepath.Base(frame.File)
			pkg = filepath.Base(filepath.Dir(frame.File))
		}
	}
	return pkg, file
}

// recordTag extracts the filter tag attribute, if present.
func recordTag(r slog.Record) string {
	var tag string
	r.Attrs(func(a slog.Attr) bool {
		if a.Key == tagKey {
			tag = a.Value.String()
			return false
		}
		return true
	})
	return tag
}

// WithAttrs returns a new handler with attributes added.
func (h *filteringHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return newFilteringHandler(h.baseHandler.WithAttrs(attrs), h.cfg)
}

// WithGroup returns a new handler with a group added.
func (h *filteringHandler) WithGroup(name string) slog.Handler {
	return newFilteringHandler(h.baseHandler.WithGroup(name), h.cfg)
}
