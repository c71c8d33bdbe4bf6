package parsing

import (
	"regexp"
	"strconv"
)

// yearPattern matches "N년" / "N 년" career-year requirements embedded in
// free-text qualification fields.
var yearPattern = regexp.MustCompile(`(\d+)\s*년`)

// ExtractRequiredYears extracts the minimum required career years from a
// qualification text. Returns (0, false) when the text carries no year
// requirement. When multiple year figures appear the first one wins, matching
// how qualification texts are written ("5년 이상, 리더 경험 2년 우대").
func ExtractRequiredYears(qualification string) (int, bool) {
	m := yearPattern.FindStringSubmatch(qualification)
	if m == nil {
		return 0, false
	}
	years, err := strconv.Atoi(m[1])
	if err != nil {
		return 0, false
	}
	return years, true
}
