// Package evaluation adjusts base match scores by periodic
// performance-evaluation records and gates low performers.
package evaluation

// Fixed signed-bonus lookup tables for the four evaluation axes. Labels not
// present in a table contribute 0 (neutral); the adjuster logs each unmapped
// label so data-entry problems stay visible.

var professionalismBonus = map[string]int{
	"S":  20,
	"A+": 15,
	"A":  10,
	"B+": 5,
	"B":  0,
	"C":  -5,
	"D":  -10,
}

var contributionBonus = map[string]int{
	"Top 10%":    15,
	"Top 20%":    10,
	"Top 30%":    5,
	"Middle 40%": 0,
	"Bottom 20%": -5,
	"Bottom 10%": -10,
}

var impactBonus = map[string]int{
	"company":    10,
	"cross-team": 5,
	"team":       0,
	"personal":   -5,
}

var overallBonus = map[string]int{
	"S":  10,
	"A+": 7,
	"A":  5,
	"B+": 2,
	"B":  0,
	"C":  -15,
	"D":  -30,
}

// ineligibleOverallGrades and ineligibleContributions gate eligibility
// independent of the numeric bonus.
var ineligibleOverallGrades = map[string]bool{
	"C": true,
	"D": true,
}

var ineligibleContributions = map[string]bool{
	"Bottom 10%": true,
	"Bottom 20%": true,
}
