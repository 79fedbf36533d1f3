package reports

import "strings"

// Tone is the semantic color role used to render a status badge.
type Tone string

const (
	ToneWarning   Tone = "warning"
	ToneAccent    Tone = "accent"
	ToneSuccess   Tone = "success"
	ToneSecondary Tone = "secondary"
)

type Scheme string

const (
	SchemeLight Scheme = "light"
	SchemeDark  Scheme = "dark"
)

var palettes = map[Scheme]map[Tone]string{
	SchemeLight: {
		ToneWarning:   "#F59E0B",
		ToneAccent:    "#4A90E2",
		ToneSuccess:   "#10B981",
		ToneSecondary: "#7B8794",
	},
	SchemeDark: {
		ToneWarning:   "#FBBF24",
		ToneAccent:    "#60A5FA",
		ToneSuccess:   "#34D399",
		ToneSecondary: "#94A3B8",
	},
}

// Color resolves the tone in the given scheme, falling back to light.
func (t Tone) Color(scheme Scheme) string {
	p, ok := palettes[scheme]
	if !ok {
		p = palettes[SchemeLight]
	}
	if c, ok := p[t]; ok {
		return c
	}
	return p[ToneSecondary]
}

type Presentation struct {
	Tone  Tone   `json:"tone"`
	Label string `json:"label"`
	Color string `json:"color"`
}

// Present maps a status to its badge in the light scheme.
func Present(s Status) Presentation {
	return PresentIn(s, SchemeLight)
}

// PresentIn maps a status to its badge. Statuses this service does not
// know about get the secondary tone.
func PresentIn(s Status, scheme Scheme) Presentation {
	var tone Tone
	switch s {
	case StatusPending:
		tone = ToneWarning
	case StatusReviewed:
		tone = ToneAccent
	case StatusResolved:
		tone = ToneSuccess
	default:
		tone = ToneSecondary
	}
	return Presentation{Tone: tone, Label: label(s), Color: tone.Color(scheme)}
}

func label(s Status) string {
	v := strings.TrimSpace(string(s))
	if v == "" {
		return "Unknown"
	}
	return strings.ToUpper(v[:1]) + v[1:]
}
