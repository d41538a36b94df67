package commands

import (
	"testing"

	"github.com/solenne/mailwright/internal/plugin"
)

// fakeAPI records the calls the command set makes. The embedded interface
// covers the methods a test never reaches.
type fakeAPI struct {
	plugin.ComposerAPI

	commands map[string]plugin.CommandFunc
	messages []string

	setColors []string
	marks     []string
	blocks    []string
	quits     []bool
	imported  string
	newDocs   int
	previews  int
	pickers   int
	clipboard string
	hasClip   bool
	exports   int
	leafCount int
}

func newFakeAPI() *fakeAPI {
	return &fakeAPI{commands: make(map[string]plugin.CommandFunc), leafCount: 1}
}

func (f *fakeAPI) RegisterCommand(name string, cmdFunc plugin.CommandFunc) error {
	f.commands[name] = cmdFunc
	return nil
}

func (f *fakeAPI) SetStatusMessage(format string, args ...interface{}) {
	f.messages = append(f.messages, format)
}

func (f *fakeAPI) SetColor(hex string) error {
	f.setColors = append(f.setColors, hex)
	return nil
}

func (f *fakeAPI) ToggleMark(name string) error {
	f.marks = append(f.marks, name)
	return nil
}

func (f *fakeAPI) ToggleBlock(name string) error {
	f.blocks = append(f.blocks, name)
	return nil
}

func (f *fakeAPI) RequestQuit(force bool) { f.quits = append(f.quits, force) }

func (f *fakeAPI) ExportToClipboard() error {
	f.exports++
	return nil
}

func (f *fakeAPI) ReadClipboardText() (string, bool) { return f.clipboard, f.hasClip }

func (f *fakeAPI) ImportMarkup(markup string) { f.imported = markup }

func (f *fakeAPI) NewDocument() { f.newDocs++ }

func (f *fakeAPI) ShowPreview() { f.previews++ }

func (f *fakeAPI) OpenColorPicker() { f.pickers++ }

func (f *fakeAPI) LeafCount() int { return f.leafCount }

func (f *fakeAPI) run(t *testing.T, name string, args ...string) error {
	t.Helper()
	cmd, ok := f.commands[name]
	if !ok {
		t.Fatalf("command %q not registered", name)
	}
	return cmd(args)
}

func TestRegisteredCommandSet(t *testing.T) {
	api := newFakeAPI()
	RegisterMailCommands(api)
	RegisterFormatCommands(api)

	for _, name := range []string{
		"export", "copy", "import", "new", "preview", "q", "quit", "q!",
		"bold", "italic", "underline", "code",
		"paragraph", "h1", "h2", "quote", "bullets", "numbers",
		"color", "palette",
	} {
		if _, ok := api.commands[name]; !ok {
			t.Errorf("command %q not registered", name)
		}
	}
}

func TestFormatCommandsUseCanonicalNames(t *testing.T) {
	api := newFakeAPI()
	RegisterFormatCommands(api)

	for _, name := range []string{"bold", "italic", "underline", "code"} {
		if err := api.run(t, name); err != nil {
			t.Fatalf(":%s: %v", name, err)
		}
	}
	if len(api.marks) != 4 || api.marks[0] != "bold" || api.marks[3] != "code" {
		t.Errorf("marks toggled: %v", api.marks)
	}

	tests := []struct {
		command string
		want    string
	}{
		{"paragraph", "paragraph"},
		{"h1", "heading-1"},
		{"h2", "heading-2"},
		{"quote", "block-quote"},
		{"bullets", "bulleted-list"},
		{"numbers", "numbered-list"},
	}
	for _, tt := range tests {
		if err := api.run(t, tt.command); err != nil {
			t.Fatalf(":%s: %v", tt.command, err)
		}
	}
	for i, tt := range tests {
		if api.blocks[i] != tt.want {
			t.Errorf(":%s toggled %q, want %q", tt.command, api.blocks[i], tt.want)
		}
	}
}

func TestColorCommand(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{"hex passes through", []string{"#ff6900"}, "#ff6900"},
		{"hex lowercased", []string{"#FF6900"}, "#ff6900"},
		{"w3c name resolves", []string{"red"}, "#ff0000"},
		{"no args clears", nil, ""},
		{"clear keyword clears", []string{"clear"}, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			api := newFakeAPI()
			RegisterFormatCommands(api)
			if err := api.run(t, "color", tt.args...); err != nil {
				t.Fatalf(":color %v: %v", tt.args, err)
			}
			if len(api.setColors) != 1 || api.setColors[0] != tt.want {
				t.Errorf("SetColor called with %v, want [%q]", api.setColors, tt.want)
			}
		})
	}
}

func TestLifecycleCommands(t *testing.T) {
	api := newFakeAPI()
	RegisterMailCommands(api)
	RegisterFormatCommands(api)

	api.run(t, "new")
	api.run(t, "preview")
	api.run(t, "palette")

	if api.newDocs != 1 {
		t.Errorf("new documents: %d, want 1", api.newDocs)
	}
	if api.previews != 1 {
		t.Errorf("previews opened: %d, want 1", api.previews)
	}
	if api.pickers != 1 {
		t.Errorf("palettes opened: %d, want 1", api.pickers)
	}
}

func TestQuitCommands(t *testing.T) {
	api := newFakeAPI()
	RegisterMailCommands(api)

	api.run(t, "q")
	api.run(t, "quit")
	api.run(t, "q!")

	want := []bool{false, false, true}
	if len(api.quits) != len(want) {
		t.Fatalf("quit calls: %v", api.quits)
	}
	for i := range want {
		if api.quits[i] != want[i] {
			t.Errorf("quit call %d: force=%v, want %v", i, api.quits[i], want[i])
		}
	}
}

func TestImportCommand(t *testing.T) {
	api := newFakeAPI()
	RegisterMailCommands(api)

	// Empty clipboard is an error the command line reports.
	if err := api.run(t, "import"); err == nil {
		t.Error("import with empty clipboard should fail")
	}

	api.clipboard = "<b>hi</b>\n"
	api.hasClip = true
	if err := api.run(t, "import"); err != nil {
		t.Fatalf("import: %v", err)
	}
	if api.imported != "<b>hi</b>\n" {
		t.Errorf("imported %q", api.imported)
	}
}

func TestExportAndCopyShareHandler(t *testing.T) {
	api := newFakeAPI()
	RegisterMailCommands(api)

	api.run(t, "export")
	api.run(t, "copy")
	if api.exports != 2 {
		t.Errorf("exports delivered %d times, want 2", api.exports)
	}
}
