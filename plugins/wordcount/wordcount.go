// plugins/wordcount/wordcount.go
package wordcount

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/solenne/mailwright/internal/plugin" // Import the plugin interface definitions
)

// Ensure WordCount implements plugin.Plugin
var _ plugin.Plugin = (*WordCount)(nil)

// WordCount reports words, characters and blocks for the mail being
// composed, alongside the exported markup length the mail box counts.
type WordCount struct {
	api plugin.ComposerAPI // Store the API for later use
}

// New creates a new instance of the WordCount plugin.
func New() plugin.Plugin {
	return &WordCount{}
}

// Name returns the unique name of the plugin.
func (p *WordCount) Name() string {
	return "WordCount"
}

// Initialize is called when the plugin loads.
// We register our command here.
func (p *WordCount) Initialize(api plugin.ComposerAPI) error {
	p.api = api

	// Register the :wc command
	if err := api.RegisterCommand("wc", p.executeWordCount); err != nil {
		return fmt.Errorf("failed to register 'wc' command: %w", err)
	}
	return nil
}

// Shutdown performs cleanup (nothing needed for this simple plugin).
func (p *WordCount) Shutdown() error {
	return nil
}

// executeWordCount is the function called when the :wc command runs.
func (p *WordCount) executeWordCount(args []string) error {
	if p.api == nil {
		return fmt.Errorf("wordcount plugin not initialized with API")
	}

	text := p.api.DocumentText()
	blockCount := p.api.LeafCount()
	wordCount := len(strings.Fields(text))
	charCount := utf8.RuneCountInString(text)
	exportedCount := p.api.ExportedLength()

	// Plain-text counts first; the exported figure includes markup tags.
	p.api.SetStatusMessage("Blocks: %d, Words: %d, Chars: %d (exports as %d)",
		blockCount, wordCount, charCount, exportedCount)
	return nil
}
