// internal/document/seed.go
package document

// Seed builds the fixed starting document: a colored greeting heading, a
// paragraph demonstrating the inline formats, a plain paragraph, and a
// second-level heading. It is never loaded from an external source.
func Seed() *Document {
	return &Document{Blocks: []*Block{
		{Kind: KindHeading1, Runs: []Run{
			{Text: "Hello", Color: "#0693e3"},
			{Text: " "},
			{Text: "KD", Color: "#ff6900"},
			{Text: " "},
			{Text: "2417", Color: "#9900ef"},
			{Text: "!"},
		}},
		{Kind: KindParagraph, Runs: []Run{
			{Text: "Mail supports "},
			{Text: "bold", Bold: true},
			{Text: ", "},
			{Text: "italic", Italic: true},
			{Text: " and "},
			{Text: "colored", Color: "#cf2e2e"},
			{Text: " text. Compose here, then export and paste in-game."},
		}},
		{Kind: KindParagraph, Runs: []Run{
			{Text: "March times, rally calls and shield reminders go below."},
		}},
		{Kind: KindHeading2, Runs: []Run{
			{Text: "Officers"},
		}},
	}}
}
