// internal/modehandler/modehandler_test.go
package modehandler

import (
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/solenne/mailwright/internal/core"
	"github.com/solenne/mailwright/internal/document"
	"github.com/solenne/mailwright/internal/event"
	"github.com/solenne/mailwright/internal/input"
	"github.com/solenne/mailwright/internal/palette"
	"github.com/solenne/mailwright/internal/statusbar"
	"github.com/solenne/mailwright/internal/types"
)

type harness struct {
	mh       *ModeHandler
	editor   *core.Editor
	events   *event.Manager
	quit     chan struct{}
	modified bool
}

func newHarness(t *testing.T) *harness {
	t.Helper()
	h := &harness{
		editor: core.NewEditor(document.New()),
		events: event.NewManager(),
		quit:   make(chan struct{}),
	}
	h.editor.SetEventManager(h.events)
	h.mh = New(Config{
		Editor:         h.editor,
		InputProcessor: input.NewInputProcessor(),
		EventManager:   h.events,
		StatusBar:      statusbar.New(statusbar.DefaultConfig()),
		Palette:        palette.New(nil),
		QuitSignal:     h.quit,
		IsModified:     func() bool { return h.modified },
	})
	return h
}

func (h *harness) key(k tcell.Key, mod tcell.ModMask) bool {
	return h.mh.HandleKeyEvent(tcell.NewEventKey(k, 0, mod))
}

func (h *harness) typeRune(r rune) bool {
	return h.mh.HandleKeyEvent(tcell.NewEventKey(tcell.KeyRune, r, tcell.ModNone))
}

func (h *harness) alt(r rune) bool {
	return h.mh.HandleKeyEvent(tcell.NewEventKey(tcell.KeyRune, r, tcell.ModAlt))
}

func (h *harness) typeText(s string) {
	for _, r := range s {
		h.typeRune(r)
	}
}

func (h *harness) quitClosed() bool {
	select {
	case <-h.quit:
		return true
	default:
		return false
	}
}

func TestComposeTyping(t *testing.T) {
	h := newHarness(t)
	h.typeText("hi there")

	if got := h.editor.Document().LeafText(0); got != "hi there" {
		t.Errorf("document text %q, want %q", got, "hi there")
	}
	if got := h.editor.GetCursor(); got != (types.Position{Line: 0, Col: 8}) {
		t.Errorf("cursor %v, want {0 8}", got)
	}
}

func TestColonAndSlashInsertAsText(t *testing.T) {
	h := newHarness(t)
	h.typeText("see: a/b")

	if h.mh.GetCurrentMode() != ModeCompose {
		t.Fatalf("mode changed while typing punctuation")
	}
	if got := h.editor.Document().LeafText(0); got != "see: a/b" {
		t.Errorf("document text %q, want %q", got, "see: a/b")
	}
}

func TestShiftMovementSelectsAndMarkApplies(t *testing.T) {
	h := newHarness(t)
	h.typeText("abc")
	h.key(tcell.KeyHome, tcell.ModNone)
	h.key(tcell.KeyRight, tcell.ModShift)
	h.key(tcell.KeyRight, tcell.ModShift)

	start, end, ok := h.editor.GetSelection()
	if !ok || start != (types.Position{Line: 0, Col: 0}) || end != (types.Position{Line: 0, Col: 2}) {
		t.Fatalf("selection (%v, %v, %v), want 0,0..0,2 active", start, end, ok)
	}

	h.alt('b')
	runs := h.editor.Document().Leaf(0).Runs
	if len(runs) != 2 || runs[0].Text != "ab" || !runs[0].Bold || runs[1].Bold {
		t.Errorf("bold not applied to selection: %+v", runs)
	}
}

func TestBareMovementClearsSelection(t *testing.T) {
	h := newHarness(t)
	h.typeText("abc")
	h.key(tcell.KeyHome, tcell.ModNone)
	h.key(tcell.KeyRight, tcell.ModShift)

	if !h.editor.HasSelection() {
		t.Fatal("expected selection after shift+right")
	}
	h.key(tcell.KeyRight, tcell.ModNone)
	if h.editor.HasSelection() {
		t.Error("bare movement should clear the selection")
	}
}

func TestAltChordsSetBlockKind(t *testing.T) {
	h := newHarness(t)
	h.typeText("title")

	h.alt('1')
	if kind := h.editor.Document().Leaf(0).Kind; kind != document.KindHeading1 {
		t.Errorf("kind %v, want heading-1", kind)
	}

	// Toggling the same kind reverts to paragraph.
	h.alt('1')
	if kind := h.editor.Document().Leaf(0).Kind; kind != document.KindParagraph {
		t.Errorf("kind %v, want paragraph after second toggle", kind)
	}

	h.alt('8')
	doc := h.editor.Document()
	if doc.Blocks[0].Kind != document.KindBulletedList {
		t.Errorf("top-level kind %v, want bulleted-list", doc.Blocks[0].Kind)
	}
	if doc.Leaf(0).Kind != document.KindListItem {
		t.Errorf("leaf kind %v, want list-item", doc.Leaf(0).Kind)
	}
}

func TestCommandModeExecutesRegisteredCommand(t *testing.T) {
	h := newHarness(t)
	var gotArgs []string
	if err := h.mh.RegisterCommand("ping", func(args []string) error {
		gotArgs = append([]string{"called"}, args...)
		return nil
	}); err != nil {
		t.Fatalf("RegisterCommand: %v", err)
	}

	h.alt('x')
	if h.mh.GetCurrentMode() != ModeCommand {
		t.Fatalf("mode %v, want ModeCommand", h.mh.GetCurrentMode())
	}
	h.typeText("ping one two")
	if h.mh.GetCommandBuffer() != "ping one two" {
		t.Fatalf("command buffer %q", h.mh.GetCommandBuffer())
	}
	h.key(tcell.KeyEnter, tcell.ModNone)

	if h.mh.GetCurrentMode() != ModeCompose {
		t.Errorf("mode %v after Enter, want ModeCompose", h.mh.GetCurrentMode())
	}
	if len(gotArgs) != 3 || gotArgs[1] != "one" || gotArgs[2] != "two" {
		t.Errorf("command args %v, want [called one two]", gotArgs)
	}
	// Command-line text must not leak into the document.
	if got := h.editor.Document().LeafText(0); got != "" {
		t.Errorf("document text %q, want empty", got)
	}
}

func TestCommandModeEscapeCancels(t *testing.T) {
	h := newHarness(t)
	h.alt('x')
	h.typeText("exp")
	h.key(tcell.KeyEscape, tcell.ModNone)

	if h.mh.GetCurrentMode() != ModeCompose {
		t.Errorf("mode %v, want ModeCompose", h.mh.GetCurrentMode())
	}
	if h.mh.GetCommandBuffer() != "" {
		t.Errorf("command buffer %q, want empty", h.mh.GetCommandBuffer())
	}
}

func TestFindModeHighlightsAndJumps(t *testing.T) {
	h := newHarness(t)
	h.typeText("alpha beta alpha")

	h.key(tcell.KeyCtrlF, tcell.ModCtrl)
	if h.mh.GetCurrentMode() != ModeFind {
		t.Fatalf("mode %v, want ModeFind", h.mh.GetCurrentMode())
	}
	h.typeText("alpha")
	h.key(tcell.KeyEnter, tcell.ModNone)

	if h.mh.GetCurrentMode() != ModeCompose {
		t.Fatalf("mode %v after Enter, want ModeCompose", h.mh.GetCurrentMode())
	}
	if !h.editor.HasHighlights() {
		t.Fatal("expected highlights after search")
	}
	// Cursor was at end of text; the search wraps to the first match.
	if got := h.editor.GetCursor(); got != (types.Position{Line: 0, Col: 0}) {
		t.Errorf("cursor %v, want {0 0}", got)
	}

	// F3 advances to the second match.
	h.key(tcell.KeyF3, tcell.ModNone)
	if got := h.editor.GetCursor(); got != (types.Position{Line: 0, Col: 11}) {
		t.Errorf("cursor after F3 %v, want {0 11}", got)
	}

	// ESC clears the highlights without quitting.
	h.key(tcell.KeyEscape, tcell.ModNone)
	if h.editor.HasHighlights() {
		t.Error("highlights should clear on ESC")
	}
	if h.quitClosed() {
		t.Error("ESC with highlights must not quit")
	}
}

func TestQuitPromptWhenNotExported(t *testing.T) {
	h := newHarness(t)
	h.typeText("draft")
	h.modified = true

	h.key(tcell.KeyEscape, tcell.ModNone)
	if h.quitClosed() {
		t.Fatal("first ESC with unexported changes must not quit")
	}
	h.key(tcell.KeyEscape, tcell.ModNone)
	if !h.quitClosed() {
		t.Fatal("second ESC should quit")
	}
}

func TestQuitImmediateWhenClean(t *testing.T) {
	h := newHarness(t)
	h.key(tcell.KeyEscape, tcell.ModNone)
	if !h.quitClosed() {
		t.Fatal("ESC with nothing to lose should quit")
	}
}

func TestForceQuitBypassesPrompt(t *testing.T) {
	h := newHarness(t)
	h.typeText("draft")
	h.modified = true
	h.key(tcell.KeyCtrlQ, tcell.ModCtrl)
	if !h.quitClosed() {
		t.Fatal("Ctrl+Q should quit unconditionally")
	}
}

func TestEscClearsSelectionBeforePrompting(t *testing.T) {
	h := newHarness(t)
	h.typeText("abc")
	h.modified = true
	h.key(tcell.KeyLeft, tcell.ModShift)

	h.key(tcell.KeyEscape, tcell.ModNone)
	if h.editor.HasSelection() {
		t.Fatal("ESC should clear the selection first")
	}
	if h.quitClosed() {
		t.Fatal("ESC that cleared a selection must not quit")
	}
}

func TestPaletteApplyColor(t *testing.T) {
	h := newHarness(t)
	h.typeText("hello")
	h.key(tcell.KeyHome, tcell.ModNone)
	for i := 0; i < 5; i++ {
		h.key(tcell.KeyRight, tcell.ModShift)
	}

	h.alt('c')
	if h.mh.GetCurrentMode() != ModePalette {
		t.Fatalf("mode %v, want ModePalette", h.mh.GetCurrentMode())
	}

	h.key(tcell.KeyDown, tcell.ModNone)
	wantHex := h.mh.palette.SelectedHex()
	h.key(tcell.KeyEnter, tcell.ModNone)

	if h.mh.GetCurrentMode() != ModeCompose {
		t.Errorf("mode %v after Enter, want ModeCompose", h.mh.GetCurrentMode())
	}
	run := h.editor.Document().Leaf(0).Runs[0]
	if run.Color != wantHex {
		t.Errorf("run color %q, want %q", run.Color, wantHex)
	}
}

func TestPaletteNeedsSelection(t *testing.T) {
	h := newHarness(t)
	h.typeText("hello")
	h.alt('c')
	if h.mh.GetCurrentMode() != ModeCompose {
		t.Errorf("palette opened without a selection")
	}
}

func TestPaletteDigitJumpAndClearColor(t *testing.T) {
	h := newHarness(t)
	h.typeText("hello")
	h.key(tcell.KeyHome, tcell.ModNone)
	for i := 0; i < 5; i++ {
		h.key(tcell.KeyRight, tcell.ModShift)
	}
	h.editor.SetColor("#ff6900")

	h.alt('c')
	if h.mh.GetCurrentMode() != ModePalette {
		t.Fatalf("mode %v, want ModePalette", h.mh.GetCurrentMode())
	}
	h.typeRune('3')
	if h.mh.palette.SelectedIndex() != 2 {
		t.Errorf("selected index %d, want 2 after pressing 3", h.mh.palette.SelectedIndex())
	}

	h.typeRune('x')
	if h.mh.GetCurrentMode() != ModeCompose {
		t.Errorf("mode %v after clear, want ModeCompose", h.mh.GetCurrentMode())
	}
	if run := h.editor.Document().Leaf(0).Runs[0]; run.Color != "" {
		t.Errorf("run color %q, want cleared", run.Color)
	}
}

func TestPreviewModeScrollsAndCloses(t *testing.T) {
	h := newHarness(t)
	h.typeText("one")
	h.key(tcell.KeyEnter, tcell.ModNone)
	h.typeText("two")
	h.editor.SetViewSize(80, 2) // content height 1 after status bar

	h.key(tcell.KeyCtrlP, tcell.ModCtrl)
	if h.mh.GetCurrentMode() != ModePreview {
		t.Fatalf("mode %v, want ModePreview", h.mh.GetCurrentMode())
	}
	if h.mh.GetCurrentModeString() != "PREVIEW" {
		t.Errorf("mode string %q", h.mh.GetCurrentModeString())
	}

	h.key(tcell.KeyDown, tcell.ModNone)
	if h.mh.PreviewOffset() != 1 {
		t.Errorf("preview offset %d, want 1", h.mh.PreviewOffset())
	}
	h.key(tcell.KeyDown, tcell.ModNone)
	if h.mh.PreviewOffset() != 1 {
		t.Errorf("preview offset %d, want clamped at 1", h.mh.PreviewOffset())
	}

	// Typing must not reach the document while previewing.
	h.typeRune('x')
	if got := h.editor.Document().LeafText(0); got != "one" {
		t.Errorf("document text %q changed in preview mode", got)
	}

	h.key(tcell.KeyEscape, tcell.ModNone)
	if h.mh.GetCurrentMode() != ModeCompose {
		t.Errorf("mode %v after ESC, want ModeCompose", h.mh.GetCurrentMode())
	}
}

func TestPreviewCopyKey(t *testing.T) {
	h := newHarness(t)
	h.typeText("note")

	var exported string
	h.events.Subscribe(event.TypeExportCopied, func(e event.Event) bool {
		exported = e.Data.(event.ExportCopiedData).Markup
		return false
	})

	h.key(tcell.KeyCtrlP, tcell.ModCtrl)
	h.typeRune('c')

	if exported != "note\n" {
		t.Errorf("exported %q, want %q", exported, "note\n")
	}
	if h.mh.GetCurrentMode() != ModePreview {
		t.Errorf("mode %v, want to stay in ModePreview", h.mh.GetCurrentMode())
	}
}

func TestExportDispatchesEvent(t *testing.T) {
	h := newHarness(t)
	h.typeText("hi & bye")
	h.alt('1')

	var exported string
	h.events.Subscribe(event.TypeExportCopied, func(e event.Event) bool {
		exported = e.Data.(event.ExportCopiedData).Markup
		return false
	})

	h.key(tcell.KeyCtrlS, tcell.ModCtrl)
	want := "<size=40>hi &amp; bye</size>\n"
	if exported != want {
		t.Errorf("exported %q, want %q", exported, want)
	}

	// The markup is now in the clipboard register.
	if text, ok := h.editor.ReadClipboardText(); !ok || text != want {
		t.Errorf("clipboard %q/%v, want exported markup", text, ok)
	}
}

func TestUndoRedoKeys(t *testing.T) {
	h := newHarness(t)
	h.typeText("abc")
	h.key(tcell.KeyCtrlZ, tcell.ModCtrl)
	if got := h.editor.Document().LeafText(0); got != "" {
		t.Errorf("after undo: %q, want empty (typing coalesced)", got)
	}
	h.key(tcell.KeyCtrlY, tcell.ModCtrl)
	if got := h.editor.Document().LeafText(0); got != "abc" {
		t.Errorf("after redo: %q, want abc", got)
	}
}

func TestCutAndPaste(t *testing.T) {
	h := newHarness(t)
	h.typeText("cut me")
	h.key(tcell.KeyHome, tcell.ModNone)
	for i := 0; i < 3; i++ {
		h.key(tcell.KeyRight, tcell.ModShift)
	}

	h.key(tcell.KeyCtrlX, tcell.ModCtrl)
	if got := h.editor.Document().LeafText(0); got != " me" {
		t.Fatalf("after cut: %q, want %q", got, " me")
	}

	h.key(tcell.KeyEnd, tcell.ModNone)
	h.key(tcell.KeyCtrlV, tcell.ModCtrl)
	if got := h.editor.Document().LeafText(0); got != " mecut" {
		t.Errorf("after paste: %q, want %q", got, " mecut")
	}
}
