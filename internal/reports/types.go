package reports

// Type is the incident category chosen once at submission.
type Type string

const (
	TypeBullying   Type = "bullying"
	TypeHarassment Type = "harassment"
	TypeViolence   Type = "violence"
	TypeOther      Type = "other"
)

// Valid reports whether t is one of the known incident categories.
func (t Type) Valid() bool {
	switch t {
	case TypeBullying, TypeHarassment, TypeViolence, TypeOther:
		return true
	}
	return false
}

// Status is the review stage of a report. It is written by school staff
// tooling only; this service reads it.
type Status string

const (
	StatusPending  Status = "pending"
	StatusReviewed Status = "reviewed"
	StatusResolved Status = "resolved"
)

func (s Status) Known() bool {
	switch s {
	case StatusPending, StatusReviewed, StatusResolved:
		return true
	}
	return false
}

// TypeInfo describes a report type for pickers.
type TypeInfo struct {
	ID    Type   `json:"id"`
	Label string `json:"label"`
	Icon  string `json:"icon"`
}

// Types is the report taxonomy in display order.
var Types = []TypeInfo{
	{ID: TypeBullying, Label: "Bullying", Icon: "person.2.fill"},
	{ID: TypeHarassment, Label: "Harassment", Icon: "exclamationmark.bubble.fill"},
	{ID: TypeViolence, Label: "Violence", Icon: "exclamationmark.triangle.fill"},
	{ID: TypeOther, Label: "Other", Icon: "ellipsis.circle.fill"},
}
