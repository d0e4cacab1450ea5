package assessment

import (
	"fmt"
	"strings"
)

// Disclaimer is shown under every set of results
const Disclaimer = "This AI assessment is for informational purposes only and is not a substitute for " +
	"professional medical advice, diagnosis, or treatment. Always seek the advice of your physician " +
	"or other qualified health provider with any questions you may have regarding a medical condition."

// FormatReport renders the intake and results as plain text for export.
func FormatReport(intake SymptomIntake, results []AssessmentResult) string {
	var sb strings.Builder

	sb.WriteString("Preliminary Assessment Results\n")
	sb.WriteString("==============================\n\n")

	sb.WriteString("Reported symptoms\n")
	for _, f := range Fields {
		v := strings.TrimSpace(intake.Get(f))
		if v == "" {
			continue
		}
		label := strings.TrimSuffix(f.Label(), " *")
		fmt.Fprintf(&sb, "  %s: %s\n", label, strings.ReplaceAll(v, "\n", " "))
	}
	sb.WriteString("\n")

	for i, r := range results {
		fmt.Fprintf(&sb, "%d. %s (%d%% match, %s priority)\n", i+1, r.Condition, r.Probability, r.Severity)
		for _, rec := range r.Recommendations {
			fmt.Fprintf(&sb, "   - %s\n", rec)
		}
		sb.WriteString("\n")
	}

	sb.WriteString("Important Medical Disclaimer\n")
	sb.WriteString(Disclaimer)
	sb.WriteString("\n")

	return sb.String()
}
