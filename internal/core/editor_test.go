// internal/core/editor_test.go
package core

import (
	"testing"

	"github.com/solenne/mailwright/internal/document"
	"github.com/solenne/mailwright/internal/event"
	"github.com/solenne/mailwright/internal/types"
)

func newTestEditor(texts ...string) *Editor {
	doc := document.New()
	if len(texts) > 0 {
		doc.Blocks = nil
		for _, t := range texts {
			doc.Blocks = append(doc.Blocks, document.NewParagraph(t))
		}
	}
	e := NewEditor(doc)
	e.SetViewSize(80, 24)
	return e
}

func typeString(t *testing.T, e *Editor, s string) {
	t.Helper()
	for _, r := range s {
		if err := e.InsertRune(r); err != nil {
			t.Fatalf("InsertRune(%q) error: %v", r, err)
		}
	}
}

func TestInsertAndDelete(t *testing.T) {
	e := newTestEditor()

	typeString(t, e, "rally at noon")
	if got := e.Document().LeafText(0); got != "rally at noon" {
		t.Fatalf("leaf text = %q, want %q", got, "rally at noon")
	}
	if got := e.GetCursor(); got != (types.Position{Line: 0, Col: 13}) {
		t.Errorf("cursor = %+v, want {0 13}", got)
	}

	for i := 0; i < 5; i++ {
		if err := e.DeleteBackward(); err != nil {
			t.Fatalf("DeleteBackward error: %v", err)
		}
	}
	if got := e.Document().LeafText(0); got != "rally at" {
		t.Errorf("after deletes = %q, want %q", got, "rally at")
	}
}

func TestInsertNewLineSplitsBlock(t *testing.T) {
	e := newTestEditor("marchers")
	e.SetCursor(types.Position{Line: 0, Col: 5})

	if err := e.InsertNewLine(); err != nil {
		t.Fatalf("InsertNewLine error: %v", err)
	}

	doc := e.Document()
	if doc.LeafCount() != 2 {
		t.Fatalf("LeafCount = %d, want 2", doc.LeafCount())
	}
	if doc.LeafText(0) != "march" || doc.LeafText(1) != "ers" {
		t.Errorf("leaves = %q, %q, want %q, %q", doc.LeafText(0), doc.LeafText(1), "march", "ers")
	}
	if got := e.GetCursor(); got != (types.Position{Line: 1, Col: 0}) {
		t.Errorf("cursor = %+v, want {1 0}", got)
	}
}

func TestDeleteBackwardJoinsBlocks(t *testing.T) {
	e := newTestEditor("march", "ers")
	e.SetCursor(types.Position{Line: 1, Col: 0})

	if err := e.DeleteBackward(); err != nil {
		t.Fatalf("DeleteBackward error: %v", err)
	}

	doc := e.Document()
	if doc.LeafCount() != 1 || doc.LeafText(0) != "marchers" {
		t.Errorf("document = %d leaves, first %q; want 1 leaf %q",
			doc.LeafCount(), doc.LeafText(0), "marchers")
	}
	if got := e.GetCursor(); got != (types.Position{Line: 0, Col: 5}) {
		t.Errorf("cursor = %+v, want {0 5}", got)
	}
}

func TestDeleteAtDocumentEdgesIsNoop(t *testing.T) {
	e := newTestEditor("x")

	e.SetCursor(types.Position{Line: 0, Col: 0})
	if err := e.DeleteBackward(); err != nil {
		t.Fatalf("DeleteBackward at start: %v", err)
	}
	e.SetCursor(types.Position{Line: 0, Col: 1})
	if err := e.DeleteForward(); err != nil {
		t.Fatalf("DeleteForward at end: %v", err)
	}
	if got := e.Document().LeafText(0); got != "x" {
		t.Errorf("text = %q, want %q", got, "x")
	}
	if e.CanUndo() {
		t.Error("edge-case no-ops must not record history")
	}
}

func TestSelectionReplacedByTyping(t *testing.T) {
	e := newTestEditor("shield up")
	e.SetCursor(types.Position{Line: 0, Col: 0})
	e.StartOrUpdateSelection()
	e.SetCursor(types.Position{Line: 0, Col: 6})
	e.StartOrUpdateSelection()

	if !e.HasSelection() {
		t.Fatal("expected active selection")
	}
	typeString(t, e, "bubble")

	if got := e.Document().LeafText(0); got != "bubble up" {
		t.Errorf("text = %q, want %q", got, "bubble up")
	}
	if e.HasSelection() {
		t.Error("typing must clear the selection")
	}
}

func TestSelectAll(t *testing.T) {
	e := newTestEditor("one", "two")
	e.SelectAll()

	start, end, ok := e.GetSelection()
	if !ok {
		t.Fatal("expected selection")
	}
	if start != (types.Position{Line: 0, Col: 0}) || end != (types.Position{Line: 1, Col: 3}) {
		t.Errorf("selection = %+v..%+v, want {0 0}..{1 3}", start, end)
	}
}

func TestUndoRedoTypingCoalesces(t *testing.T) {
	e := newTestEditor()
	typeString(t, e, "hold")

	if !e.Undo() {
		t.Fatal("Undo returned false")
	}
	if got := e.Document().LeafText(0); got != "" {
		t.Errorf("after undo = %q, want empty (typed burst is one step)", got)
	}
	if !e.Redo() {
		t.Fatal("Redo returned false")
	}
	if got := e.Document().LeafText(0); got != "hold" {
		t.Errorf("after redo = %q, want %q", got, "hold")
	}
	if e.Redo() {
		t.Error("Redo past the top must return false")
	}
}

func TestUndoRestoresCursorAndNewEditsTruncateRedo(t *testing.T) {
	e := newTestEditor("abc")
	e.SetCursor(types.Position{Line: 0, Col: 3})
	if err := e.InsertNewLine(); err != nil {
		t.Fatal(err)
	}
	typeString(t, e, "def")

	e.Undo() // drop "def"
	if !e.CanRedo() {
		t.Fatal("expected redo available after undo")
	}
	typeString(t, e, "x")
	if e.CanRedo() {
		t.Error("new edit must truncate redo history")
	}
	if got := e.Document().LeafText(1); got != "x" {
		t.Errorf("leaf 1 = %q, want %q", got, "x")
	}
}

func TestToggleMarkRequiresSelection(t *testing.T) {
	e := newTestEditor("plain")
	e.SetCursor(types.Position{Line: 0, Col: 2})

	if e.ToggleMark(document.MarkBold) {
		t.Error("ToggleMark at caret must report not applied")
	}
	if e.CanUndo() {
		t.Error("caret toggle must not record history")
	}

	e.SetCursor(types.Position{Line: 0, Col: 0})
	e.StartOrUpdateSelection()
	e.SetCursor(types.Position{Line: 0, Col: 5})
	e.StartOrUpdateSelection()
	if !e.ToggleMark(document.MarkBold) {
		t.Fatal("ToggleMark over selection must apply")
	}
	if !e.IsMarkActive(document.MarkBold) {
		t.Error("bold must be active over the selection")
	}
}

func TestFormatStateAtCursor(t *testing.T) {
	doc := document.New()
	doc.Blocks = []*document.Block{
		{Kind: document.KindHeading1, Runs: []document.Run{{Text: "Call", Bold: true, Color: "#ff6900"}}},
	}
	e := NewEditor(doc)
	e.SetViewSize(80, 24)
	e.SetCursor(types.Position{Line: 0, Col: 2})

	fs := e.FormatState()
	if !fs.Bold || fs.Italic || fs.Color != "#ff6900" {
		t.Errorf("FormatState = %+v, want bold, no italic, #ff6900", fs)
	}
	if fs.Block != document.KindHeading1 {
		t.Errorf("Block = %v, want heading-1", fs.Block)
	}
}

func TestFormatStateReportsListContainer(t *testing.T) {
	doc := &document.Document{Blocks: []*document.Block{
		{Kind: document.KindBulletedList, Blocks: []*document.Block{
			document.NewLeaf(document.KindListItem, "first"),
		}},
	}}
	e := NewEditor(doc)
	e.SetViewSize(80, 24)
	e.SetCursor(types.Position{Line: 0, Col: 0})

	if fs := e.FormatState(); fs.Block != document.KindBulletedList {
		t.Errorf("Block = %v, want bulleted-list", fs.Block)
	}
}

func TestToggleBlockAtCaret(t *testing.T) {
	e := newTestEditor("orders")
	e.SetCursor(types.Position{Line: 0, Col: 3})

	e.ToggleBlock(document.KindHeading2)
	if got := e.Document().Leaf(0).Kind; got != document.KindHeading2 {
		t.Fatalf("kind = %v, want heading-2", got)
	}

	// Toggling the active kind reverts to paragraph.
	e.ToggleBlock(document.KindHeading2)
	if got := e.Document().Leaf(0).Kind; got != document.KindParagraph {
		t.Errorf("kind = %v, want paragraph", got)
	}
}

func TestSetColorOverSelection(t *testing.T) {
	e := newTestEditor("alert")
	e.SetCursor(types.Position{Line: 0, Col: 0})
	e.StartOrUpdateSelection()
	e.SetCursor(types.Position{Line: 0, Col: 5})
	e.StartOrUpdateSelection()

	if !e.SetColor("#cf2e2e") {
		t.Fatal("SetColor over selection must apply")
	}
	fs := e.FormatState()
	if fs.Color != "#cf2e2e" {
		t.Errorf("active color = %q, want #cf2e2e", fs.Color)
	}

	if !e.ClearColor() {
		t.Fatal("ClearColor over selection must apply")
	}
	if fs := e.FormatState(); fs.Color != "" {
		t.Errorf("active color after clear = %q, want empty", fs.Color)
	}
}

func TestSetDocumentResetsState(t *testing.T) {
	e := newTestEditor("old content")
	typeString(t, e, "!")

	var resetSource string
	mgr := event.NewManager()
	mgr.Subscribe(event.TypeDocumentReset, func(ev event.Event) bool {
		if data, ok := ev.Data.(event.DocumentResetData); ok {
			resetSource = data.Source
		}
		return false
	})
	e.SetEventManager(mgr)

	e.NewDocument()
	if resetSource != "new" {
		t.Errorf("reset source = %q, want %q", resetSource, "new")
	}
	if e.CanUndo() {
		t.Error("document replacement must clear history")
	}
	if got := e.GetCursor(); got != (types.Position{Line: 0, Col: 0}) {
		t.Errorf("cursor = %+v, want start", got)
	}
}

func TestExportMarkupAndImportRoundTrip(t *testing.T) {
	e := newTestEditor("plain & <tagged>")

	markup := e.ExportMarkup()
	want := "plain &amp; &lt;tagged&gt;\n"
	if markup != want {
		t.Fatalf("ExportMarkup = %q, want %q", markup, want)
	}
	if got := e.ExportedLength(); got != len([]rune(want)) {
		t.Errorf("ExportedLength = %d, want %d", got, len([]rune(want)))
	}

	e.ImportMarkup(markup)
	if got := e.Document().LeafText(0); got != "plain & <tagged>" {
		t.Errorf("after import = %q, want original text", got)
	}
}

func TestMoveCursorWrapsAcrossLeaves(t *testing.T) {
	e := newTestEditor("ab", "cd")

	e.SetCursor(types.Position{Line: 0, Col: 2})
	e.MoveCursor(0, 1)
	if got := e.GetCursor(); got != (types.Position{Line: 1, Col: 0}) {
		t.Errorf("right wrap: cursor = %+v, want {1 0}", got)
	}

	e.MoveCursor(0, -1)
	if got := e.GetCursor(); got != (types.Position{Line: 0, Col: 2}) {
		t.Errorf("left wrap: cursor = %+v, want {0 2}", got)
	}
}

func TestHomeEndAndVerticalClamp(t *testing.T) {
	e := newTestEditor("long line here", "ab")

	e.SetCursor(types.Position{Line: 0, Col: 14})
	e.MoveCursor(1, 0)
	if got := e.GetCursor(); got != (types.Position{Line: 1, Col: 2}) {
		t.Errorf("down clamps col: cursor = %+v, want {1 2}", got)
	}

	e.Home()
	if got := e.GetCursor(); got.Col != 0 {
		t.Errorf("Home: col = %d, want 0", got.Col)
	}
	e.End()
	if got := e.GetCursor(); got.Col != 2 {
		t.Errorf("End: col = %d, want 2", got.Col)
	}
}
