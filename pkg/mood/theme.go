package mood

// Theme holds the render-agnostic colors for a mood as hex strings. Start
// and End describe the background gradient, Accent is the single color used
// for bars and highlights. Image names the bundled background image; it is
// empty for every mood except Unknown, whose image fallback ("default")
// intentionally differs from its neutral gray gradient fallback.
type Theme struct {
	Start  string
	End    string
	Accent string
	Image  string
}

// GradientFor resolves the background gradient for a set of raw mood tokens
// using the first-match-wins primary rule.
func GradientFor(tokens []string) Theme {
	return Primary(tokens).Descriptor().Theme
}
