package assessment

import "strings"

// Field identifies one editable field of a SymptomIntake
type Field int

const (
	FieldSymptoms Field = iota
	FieldDuration
	FieldSeverity
	FieldAge
	FieldAdditionalInfo
)

// Fields lists the intake fields in form order
var Fields = []Field{
	FieldSymptoms,
	FieldDuration,
	FieldSeverity,
	FieldAge,
	FieldAdditionalInfo,
}

func (f Field) String() string {
	switch f {
	case FieldSymptoms:
		return "symptoms"
	case FieldDuration:
		return "duration"
	case FieldSeverity:
		return "severity"
	case FieldAge:
		return "age"
	case FieldAdditionalInfo:
		return "additional_info"
	default:
		return "unknown"
	}
}

// Label is the human-facing field caption
func (f Field) Label() string {
	switch f {
	case FieldSymptoms:
		return "Main symptoms *"
	case FieldDuration:
		return "Duration"
	case FieldSeverity:
		return "Severity (1-10)"
	case FieldAge:
		return "Age"
	case FieldAdditionalInfo:
		return "Additional information"
	default:
		return ""
	}
}

// SymptomIntake holds what the user typed into the intake form.
// All fields are free-form; only Symptoms is required to advance.
type SymptomIntake struct {
	Symptoms       string
	Duration       string
	Severity       string // numeric hint 1-10, not enforced
	Age            string // numeric hint, not enforced
	AdditionalInfo string
}

// With returns a copy of the intake with exactly one field replaced.
func (s SymptomIntake) With(field Field, value string) SymptomIntake {
	switch field {
	case FieldSymptoms:
		s.Symptoms = value
	case FieldDuration:
		s.Duration = value
	case FieldSeverity:
		s.Severity = value
	case FieldAge:
		s.Age = value
	case FieldAdditionalInfo:
		s.AdditionalInfo = value
	}
	return s
}

// Get returns the value of a single field
func (s SymptomIntake) Get(field Field) string {
	switch field {
	case FieldSymptoms:
		return s.Symptoms
	case FieldDuration:
		return s.Duration
	case FieldSeverity:
		return s.Severity
	case FieldAge:
		return s.Age
	case FieldAdditionalInfo:
		return s.AdditionalInfo
	default:
		return ""
	}
}

// CanAdvance reports whether the intake may leave the first step.
func (s SymptomIntake) CanAdvance() bool {
	return strings.TrimSpace(s.Symptoms) != ""
}

func (s SymptomIntake) IsZero() bool {
	return s == SymptomIntake{}
}

// Severity ranks how urgent a condition is
type Severity string

const (
	SeverityLow      Severity = "low"
	SeverityModerate Severity = "moderate"
	SeverityHigh     Severity = "high"
)

// AssessmentResult is one ranked condition shown on the results step
type AssessmentResult struct {
	Condition       string
	Probability     int // 0-100
	Severity        Severity
	Recommendations []string
}
