package mood

import "strings"

// Mood is one of the fixed canonical mood categories an entry's raw tokens
// can classify to. It is always derived at read time and never stored, so a
// change to the token table applies retroactively to old entries.
type Mood string

const (
	Happy      Mood = "happy"
	Sad        Mood = "sad"
	Calm       Mood = "calm"
	Focused    Mood = "focused"
	Reflective Mood = "reflective"
	Productive Mood = "productive"
	Inspired   Mood = "inspired"
	Angry      Mood = "angry"
	Anxious    Mood = "anxious"
	Unknown    Mood = "unknown"
)

// Descriptor carries the fixed metadata for a canonical mood: the raw tokens
// that classify to it, a representative glyph, and its theme colors.
type Descriptor struct {
	Mood   Mood
	Emoji  string
	Tokens []string
	Theme  Theme
}

// Canonical returns the moods in declaration order. This order is the
// tie-break everywhere a maximum over moods is selected; consumers must not
// substitute entry insertion order.
func Canonical() []Mood {
	return []Mood{
		Happy,
		Sad,
		Calm,
		Focused,
		Reflective,
		Productive,
		Inspired,
		Angry,
		Anxious,
		Unknown,
	}
}

func Descriptors() []Descriptor {
	return []Descriptor{
		{
			Mood:   Happy,
			Emoji:  "😄",
			Tokens: []string{"happy", "😃", "😄", "😊", "😁", "🙂", "🥳"},
			Theme:  Theme{Start: "#FFCC00", End: "#FF2D55", Accent: "#FFCC00"},
		}, {
			Mood:   Sad,
			Emoji:  "😔",
			Tokens: []string{"sad", "😔", "😢", "😞", "☹️", "🙁", "😿"},
			Theme:  Theme{Start: "#007AFF", End: "#5856D6", Accent: "#007AFF"},
		}, {
			Mood:   Calm,
			Emoji:  "😌",
			Tokens: []string{"calm", "😌", "😇", "🧘", "😴", "🫶"},
			Theme:  Theme{Start: "#00C7BE", End: "#30B0C7", Accent: "#00C7BE"},
		}, {
			Mood:   Focused,
			Emoji:  "🎧",
			Tokens: []string{"focused", "🎧"},
			Theme:  Theme{Start: "#AF52DE", End: "#007AFF", Accent: "#AF52DE"},
		}, {
			Mood:   Reflective,
			Emoji:  "💭",
			Tokens: []string{"reflective", "💭", "🤔"},
			Theme:  Theme{Start: "#5856D6", End: "#30B0C7", Accent: "#5856D6"},
		}, {
			Mood:   Productive,
			Emoji:  "🧠",
			Tokens: []string{"productive", "🧠"},
			Theme:  Theme{Start: "#34C759", End: "#30B0C7", Accent: "#34C759"},
		}, {
			Mood:   Inspired,
			Emoji:  "🌈",
			Tokens: []string{"inspired", "🌈"},
			Theme:  Theme{Start: "#FF9500", End: "#FF2D55", Accent: "#FF9500"},
		}, {
			Mood:   Angry,
			Emoji:  "😡",
			Tokens: []string{"angry", "😡"},
			Theme:  Theme{Start: "#FF3B30", End: "#FF9500", Accent: "#FF3B30"},
		}, {
			Mood:   Anxious,
			Emoji:  "😰",
			Tokens: []string{"anxious", "😰"},
			Theme:  Theme{Start: "#30B0C7", End: "#5856D6", Accent: "#30B0C7"},
		}, {
			Mood:   Unknown,
			Emoji:  "😐",
			Tokens: nil,
			// Unknown keeps two historical fallbacks: a neutral gray gradient
			// and the generic default background image. They diverge on
			// purpose; see Theme.Image.
			Theme: Theme{Start: "#E5E5EA", End: "#D1D1D6", Accent: "#8E8E93", Image: "default"},
		},
	}
}

var byToken = buildIndex()

func buildIndex() map[string]Mood {
	idx := make(map[string]Mood)
	for _, d := range Descriptors() {
		for _, tok := range d.Tokens {
			idx[strings.ToLower(tok)] = d.Mood
		}
	}
	return idx
}

// Classify maps a raw token (emoji or word) to its canonical mood.
// Case-insensitive, total: anything outside the table is Unknown.
func Classify(token string) Mood {
	if m, ok := byToken[strings.ToLower(token)]; ok {
		return m
	}
	return Unknown
}

// Primary returns the mood of the first token that classifies to something
// other than Unknown. This first-match-wins rule is the single tie-break
// used wherever one representative mood is needed, so every surface
// attributes the same mood to the same entry.
func Primary(tokens []string) Mood {
	for _, tok := range tokens {
		if m := Classify(tok); m != Unknown {
			return m
		}
	}
	return Unknown
}

func (m Mood) Descriptor() Descriptor {
	for _, d := range Descriptors() {
		if d.Mood == m {
			return d
		}
	}
	return Descriptors()[len(Descriptors())-1]
}

func (m Mood) Emoji() string {
	return m.Descriptor().Emoji
}

func (m Mood) String() string {
	return string(m)
}

// Title renders the mood for display, e.g. "Happy".
func (m Mood) Title() string {
	s := string(m)
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
