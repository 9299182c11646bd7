package entry

import (
	"strings"
	"time"

	"tableflip.dev/loop/pkg/mood"
)

// MaxMoodTokens caps the raw tokens kept on an entry. The capture UI offers
// one to three; older imported records may carry zero, which reads as an
// unknown mood rather than an error.
const MaxMoodTokens = 3

// Entry is the durable journal record. ID is assigned by the store at
// creation and never changes. Media bytes are never held inline: PhotoRef
// and VoiceNoteRef are opaque references whose backing bytes are owned by
// the blob and file storage collaborators.
type Entry struct {
	ID           string    `json:"id"`
	Date         Timestamp `json:"date"`
	MoodTokens   []string  `json:"moodTokens,omitempty"`
	Note         string    `json:"note,omitempty"`
	PhotoRef     string    `json:"photoRef,omitempty"`
	VoiceNoteRef string    `json:"voiceNoteRef,omitempty"`
	LinkURL      string    `json:"linkURL,omitempty"`
}

// Draft is an entry as supplied by the capture flow, before the store has
// assigned an id. A nil Date defaults to the moment of creation.
type Draft struct {
	Date         *time.Time
	MoodTokens   []string
	Note         string
	PhotoRef     string
	VoiceNoteRef string
	LinkURL      string
}

// Patch is a partial update. Nil fields are left untouched; non-nil fields
// overwrite. A patch applies as a whole or not at all.
type Patch struct {
	Date         *time.Time
	MoodTokens   *[]string
	Note         *string
	PhotoRef     *string
	VoiceNoteRef *string
	LinkURL      *string
}

func New(tokens []string, note string) *Entry {
	return &Entry{
		Date:       Timestamp{Time: time.Now()},
		MoodTokens: NormalizeTokens(tokens),
		Note:       note,
	}
}

// NormalizeTokens trims whitespace, drops empty tokens, and caps the result
// at MaxMoodTokens. Order is preserved; the first kept token stays primary.
func NormalizeTokens(tokens []string) []string {
	out := make([]string, 0, len(tokens))
	for _, tok := range tokens {
		tok = strings.TrimSpace(tok)
		if tok == "" {
			continue
		}
		out = append(out, tok)
		if len(out) == MaxMoodTokens {
			break
		}
	}
	return out
}

// Mood derives the entry's representative mood from its raw tokens using
// the first-match-wins rule.
func (e *Entry) Mood() mood.Mood {
	return mood.Primary(e.MoodTokens)
}

// TokenString renders the raw tokens for display, space separated.
func (e *Entry) TokenString() string {
	return strings.Join(e.MoodTokens, " ")
}

// Apply merges a patch into a copy of the entry and returns the copy. The
// receiver is not mutated; the store persists the copy only after a
// successful write so a failed patch leaves the old record intact.
func (e *Entry) Apply(p Patch) *Entry {
	next := *e
	next.MoodTokens = append([]string(nil), e.MoodTokens...)
	if p.Date != nil {
		next.Date = Timestamp{Time: *p.Date}
	}
	if p.MoodTokens != nil {
		next.MoodTokens = NormalizeTokens(*p.MoodTokens)
	}
	if p.Note != nil {
		next.Note = *p.Note
	}
	if p.PhotoRef != nil {
		next.PhotoRef = *p.PhotoRef
	}
	if p.VoiceNoteRef != nil {
		next.VoiceNoteRef = *p.VoiceNoteRef
	}
	if p.LinkURL != nil {
		next.LinkURL = *p.LinkURL
	}
	return &next
}

func (e *Entry) Row() (string, string, string) {
	return e.Date.Local().Format("2006-01-02"), e.TokenString(), e.Note
}
