package printers

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"

	"tableflip.dev/loop/pkg/entry"
)

type PrettyPrint struct {
	ShowID bool
}

var (
	spacing = strings.Repeat(" ", len("171dff69-f8b9-9dca  "))
)

func (pp *PrettyPrint) NewLine() {
	fmt.Println("")
}

func (pp *PrettyPrint) Title(title string) {
	t := color.New(color.Bold, color.Underline)

	if pp.ShowID {
		_, _ = t.Print(spacing)
	}
	_, _ = t.Println(title)
}

func (pp *PrettyPrint) TitleWithCount(title string, count int) {
	t := color.New(color.Bold, color.Underline)
	c := color.New(color.Faint)

	if pp.ShowID {
		_, _ = t.Print(spacing)
	}
	_, _ = t.Print(title)
	_, _ = c.Printf(" - %d", count)

	switch count {
	case 1:
		_, _ = c.Println(" entry")
	default:
		_, _ = c.Println(" entries")
	}
}

// Entries renders a snapshot as a table of date, mood glyph, tokens, and
// note, one row per entry in the order given.
func (pp *PrettyPrint) Entries(entries ...*entry.Entry) {
	if len(entries) == 0 {
		pp.none()
		return
	}

	y := color.New(color.FgHiYellow, color.Italic, color.Faint)

	tbl := uitable.New()
	tbl.Separator = "  "
	for _, e := range entries {
		if e == nil {
			continue
		}
		date, tokens, note := e.Row()
		if pp.ShowID {
			tbl.AddRow(y.Sprint(shortID(e.ID)), date, e.Mood().Emoji(), tokens, note)
		} else {
			tbl.AddRow(date, e.Mood().Emoji(), tokens, note)
		}
	}
	_, _ = fmt.Fprintln(color.Output, tbl)
}

func (pp *PrettyPrint) none() {
	f := color.New(color.Faint, color.Italic)
	if pp.ShowID {
		_, _ = f.Print(spacing)
	}
	_, _ = f.Print(" none\n\n")
}

// shortID keeps listings compact; full ids still work everywhere an id is
// accepted.
func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
