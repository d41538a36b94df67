// internal/utils/util.go
package utils

import (
	"sync"
	"time"
	"unicode/utf8"
)

// RuneIndexToByteOffset converts a rune index within s to a byte offset.
// Indexes past the last rune clamp to len(s).
func RuneIndexToByteOffset(s string, runeIndex int) int {
	if runeIndex <= 0 {
		return 0
	}
	offset := 0
	for i := 0; i < runeIndex && offset < len(s); i++ {
		_, size := utf8.DecodeRuneInString(s[offset:])
		offset += size
	}
	return offset
}

// ByteOffsetToRuneIndex converts a byte offset within s to a rune index.
// Offsets inside a multi-byte rune resolve to that rune's index.
func ByteOffsetToRuneIndex(s string, byteOffset int) int {
	if byteOffset <= 0 {
		return 0
	}
	if byteOffset > len(s) {
		byteOffset = len(s)
	}
	index := 0
	for offset := 0; offset < byteOffset; index++ {
		_, size := utf8.DecodeRuneInString(s[offset:])
		if offset+size > byteOffset {
			break
		}
		offset += size
	}
	return index
}

// Debouncer coalesces rapid calls into one deferred invocation.
type Debouncer struct {
	mu    sync.Mutex
	timer *time.Timer
}

// Debounce schedules fn after the given duration, canceling any previous
// pending call.
func (d *Debouncer) Debounce(duration time.Duration, fn func()) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.timer != nil {
		d.timer.Stop()
	}
	d.timer = time.AfterFunc(duration, fn)
}

// Stop cancels any pending call.
func (d *Debouncer) Stop() {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
}
