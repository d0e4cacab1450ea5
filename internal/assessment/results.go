package assessment

// fixedResults is the canned outcome of every simulated analysis.
// The intake never influences it.
var fixedResults = []AssessmentResult{
	{
		Condition:   "Common Cold",
		Probability: 75,
		Severity:    SeverityLow,
		Recommendations: []string{
			"Rest and stay hydrated",
			"Over-the-counter pain relievers if needed",
			"Monitor symptoms for 7-10 days",
		},
	},
	{
		Condition:   "Seasonal Allergies",
		Probability: 60,
		Severity:    SeverityLow,
		Recommendations: []string{
			"Consider antihistamines",
			"Avoid known allergens",
			"Consult allergist if symptoms persist",
		},
	},
	{
		Condition:   "Viral Upper Respiratory Infection",
		Probability: 45,
		Severity:    SeverityModerate,
		Recommendations: []string{
			"Rest and increase fluid intake",
			"Humidify your environment",
			"Seek medical care if symptoms worsen",
		},
	},
}

// FixedResults returns a fresh copy of the three canned results, ranked by probability.
func FixedResults() []AssessmentResult {
	out := make([]AssessmentResult, len(fixedResults))
	for i, r := range fixedResults {
		out[i] = r
		out[i].Recommendations = append([]string(nil), r.Recommendations...)
	}
	return out
}
