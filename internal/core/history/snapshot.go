// Package history provides undo/redo via document snapshots. Edits that
// restructure the block tree (splits, joins, list wraps) have no cheap
// positional inverse, so each undo step stores a full deep copy of the
// document instead of a reversible delta. Documents are human-typed mail
// messages, small enough that cloning per step costs nothing noticeable.
package history

import (
	"github.com/solenne/mailwright/internal/document"
	"github.com/solenne/mailwright/internal/types"
)

// Snapshot captures the document and cursor as they were before a change.
type Snapshot struct {
	Doc    *document.Document
	Cursor types.Position
}
