package export

import (
	"tableflip.dev/loop/pkg/entry"
	"tableflip.dev/loop/pkg/mood"
)

const (
	// Document metadata stamped by the external PDF renderer.
	DocumentCreator = "loop"
	DocumentAuthor  = "loop user"

	// layoutDisplay is the human-facing date on a page.
	layoutDisplay = "Jan 2, 2006"
)

// Page describes everything one rendered page needs: theme colors from the
// derived mood, the raw token display string, formatted date, note text, and
// the optional photo reference. It contains no layout; an external renderer
// owns geometry and drawing.
type Page struct {
	Moods    string
	Date     string
	Note     string
	PhotoRef string
	Theme    mood.Theme
}

// Document is the full export model handed to a renderer: metadata plus one
// page per entry, in the order the snapshot was given.
type Document struct {
	Creator string
	Author  string
	Pages   []Page
}

// Pages assembles one page descriptor per entry.
func Pages(entries []*entry.Entry) []Page {
	pages := make([]Page, 0, len(entries))
	for _, e := range entries {
		if e == nil {
			continue
		}
		pages = append(pages, Page{
			Moods:    e.TokenString(),
			Date:     e.Date.Local().Format(layoutDisplay),
			Note:     e.Note,
			PhotoRef: e.PhotoRef,
			Theme:    e.Mood().Descriptor().Theme,
		})
	}
	return pages
}

// NewDocument wraps Pages with the document metadata.
func NewDocument(entries []*entry.Entry) Document {
	return Document{
		Creator: DocumentCreator,
		Author:  DocumentAuthor,
		Pages:   Pages(entries),
	}
}
