package types

// EvaluationRecord is one periodic performance evaluation with four axes.
type EvaluationRecord struct {
	OverallGrade    string `json:"overall_grade,omitempty"`   // S, A+, A, B+, B, C, D
	Professionalism string `json:"professionalism,omitempty"` // same grade set
	Contribution    string `json:"contribution,omitempty"`    // percentile bucket, e.g. "Top 10%"
	Impact          string `json:"impact,omitempty"`          // personal / team / cross-team / company
}

// gradeRank fixes the total order of evaluation grades. Higher is better.
// Grade comparisons must go through this table, never through string order
// ("A+" sorts before "A" lexically, which is wrong).
var gradeRank = map[string]int{
	"S":  7,
	"A+": 6,
	"A":  5,
	"B+": 4,
	"B":  3,
	"C":  2,
	"D":  1,
}

// gradePoints maps grades onto the 5-point readiness scale used when
// averaging evaluation windows (S=5 ... D=1).
var gradePoints = map[string]float64{
	"S":  5.0,
	"A+": 4.5,
	"A":  4.0,
	"B+": 3.5,
	"B":  3.0,
	"C":  2.0,
	"D":  1.0,
}

// GradeRank returns the ordinal rank of a grade (S=7 ... D=1) and whether the
// grade is one of the known labels.
func GradeRank(grade string) (int, bool) {
	r, ok := gradeRank[grade]
	return r, ok
}

// GradePoints returns the 5-point-scale value of a grade and whether the
// grade is one of the known labels.
func GradePoints(grade string) (float64, bool) {
	p, ok := gradePoints[grade]
	return p, ok
}

// GradeAtLeast reports whether grade is at least min in the fixed grade order.
// Unknown labels on either side compare as false.
func GradeAtLeast(grade, min string) bool {
	g, ok1 := gradeRank[grade]
	m, ok2 := gradeRank[min]
	return ok1 && ok2 && g >= m
}
