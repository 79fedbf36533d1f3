package reports

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// Normalize trims the free-text fields and checks every field against the
// report constraints. It returns the trimmed input on success.
func Normalize(in Input) (Input, error) {
	out := Input{
		Title:       strings.TrimSpace(in.Title),
		Description: strings.TrimSpace(in.Description),
		Type:        in.Type,
	}

	if err := checkText("title", out.Title, MaxTitleLength); err != nil {
		return in, err
	}
	if err := checkText("description", out.Description, MaxDescriptionLength); err != nil {
		return in, err
	}
	if out.Type == "" {
		return in, &ValidationError{Field: "type", Reason: "required"}
	}
	if !out.Type.Valid() {
		return in, &ValidationError{Field: "type", Reason: "must be bullying, harassment, violence, or other"}
	}
	return out, nil
}

func checkText(field, value string, max int) error {
	if value == "" {
		return &ValidationError{Field: field, Reason: "required"}
	}
	if utf8.RuneCountInString(value) > max {
		return &ValidationError{Field: field, Reason: fmt.Sprintf("must be at most %d characters", max)}
	}
	return nil
}
