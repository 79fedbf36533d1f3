package resources

import (
	"regexp"
	"strings"
)

type EmergencyContact struct {
	Title       string `json:"title"`
	Phone       string `json:"phone"`
	Description string `json:"description"`
	DialURI     string `json:"dial_uri,omitempty"`
}

var emergencyContacts = []EmergencyContact{
	{Title: "National Suicide Prevention Lifeline", Phone: "988", Description: "24/7 crisis support"},
	{Title: "Crisis Text Line", Phone: "Text HOME to 741741", Description: "Free 24/7 crisis counseling"},
	{Title: "National Child Abuse Hotline", Phone: "1-800-4-A-CHILD (1-800-422-4453)", Description: "24/7 professional crisis counselors"},
}

// EmergencyNotice is shown above the contact list.
const EmergencyNotice = "If you are in immediate danger, call 911"

// EmergencyContacts returns the static hotline list with dial URIs filled in.
func EmergencyContacts() []EmergencyContact {
	out := make([]EmergencyContact, len(emergencyContacts))
	for i, c := range emergencyContacts {
		c.DialURI = DialURI(c.Phone)
		out[i] = c
	}
	return out
}

var (
	parenthesized = regexp.MustCompile(`\(([^)]*\d[^)]*)\)`)
	nonDigits     = regexp.MustCompile(`\D`)
)

// DialURI turns a display phone string into a tel: URI for the device
// dialer. A parenthesized number, as in vanity numbers, takes precedence.
// Strings without digits yield "".
func DialURI(phone string) string {
	src := phone
	if m := parenthesized.FindStringSubmatch(phone); m != nil {
		src = m[1]
	}
	digits := nonDigits.ReplaceAllString(strings.TrimSpace(src), "")
	if digits == "" {
		return ""
	}
	return "tel:" + digits
}
