// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"github.com/jonathan/talent-compass/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 5
)

// Printer handles formatted output for verbose mode
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// truncate shortens s to at most max runes, replacing the tail with an
// ellipsis. Byte offsets would cut Korean text mid-rune.
func truncate(s string, max int) string {
	if utf8.RuneCountInString(s) <= max {
		return s
	}
	runes := []rune(s)
	return string(runes[:max-3]) + "..."
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	lines := strings.Split(content, "\n")
	for _, line := range lines {
		line = truncate(line, boxWidth-4)
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, line)
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// PrintMatchResult outputs a human-readable summary of one match outcome.
func (p *Printer) PrintMatchResult(result *types.MatchResult) {
	if result == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Job:       %s\n", result.JobName))
	sb.WriteString(fmt.Sprintf("Employee:  %s\n", result.EmployeeID))
	sb.WriteString(fmt.Sprintf("Score:     %.2f\n", result.MatchScore))
	sb.WriteString(fmt.Sprintf("  basic %.2f / applied %.2f / qualification %.2f\n",
		result.SkillMatch.Basic.Score, result.SkillMatch.Applied.Score,
		result.Qualification.Score))

	missing := append([]string{}, result.Gaps.BasicSkills...)
	missing = append(missing, result.Gaps.AppliedSkills...)
	if len(missing) > 0 {
		sb.WriteString("\nMissing Skills:\n")
		count := min(len(missing), maxItemsToShow)
		for i := 0; i < count; i++ {
			sb.WriteString(fmt.Sprintf("  • %s\n", missing[i]))
		}
		if len(missing) > maxItemsToShow {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(missing)-maxItemsToShow))
		}
	}
	if result.Gaps.Qualification != "" {
		sb.WriteString(fmt.Sprintf("\nQualification gap: %s\n", result.Gaps.Qualification))
	}

	p.printBox("MATCH RESULT", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintAdjustedResult outputs the evaluation-adjusted score with its breakdown.
func (p *Printer) PrintAdjustedResult(result *types.AdjustedResult) {
	if result == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Job:       %s\n", result.JobName))
	sb.WriteString(fmt.Sprintf("Employee:  %s\n", result.EmployeeID))

	if !result.IsEligible {
		sb.WriteString("\n⚠ EXCLUDED\n")
		sb.WriteString(fmt.Sprintf("  %s\n", result.ExclusionReason))
		p.printBox("ADJUSTED MATCH", strings.TrimSuffix(sb.String(), "\n"))
		return
	}

	if result.EvaluationApplied {
		sb.WriteString(fmt.Sprintf("Score:     %.2f (base %.2f, bonus %+.2f)\n",
			result.MatchScore, result.OriginalMatchScore, result.EvaluationBonus))
		if len(result.Breakdown) > 0 {
			sb.WriteString("\nBreakdown:\n")
			for _, axis := range []string{"professionalism", "contribution", "impact", "overall"} {
				row, ok := result.Breakdown[axis]
				if !ok {
					continue
				}
				sb.WriteString(fmt.Sprintf("  %-15s %-10s %+d\n", axis, row.Label, row.Bonus))
			}
		}
	} else {
		sb.WriteString(fmt.Sprintf("Score:     %.2f (no evaluation on record)\n", result.MatchScore))
	}

	p.printBox("ADJUSTED MATCH", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintGrowthPath outputs a stage-by-stage summary of one simulated path.
func (p *Printer) PrintGrowthPath(path *types.GrowthPath) {
	if path == nil || len(path.Stages) == 0 {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("%s → %s\n", path.CurrentJob, path.TargetJob))
	sb.WriteString(fmt.Sprintf("Years: %.1f   Difficulty: %.1f   P(success): %.2f\n\n",
		path.TotalYears, path.DifficultyScore, path.SuccessProbability))

	count := min(len(path.Stages), maxItemsToShow)
	for i := 0; i < count; i++ {
		stage := path.Stages[i]
		marker := "•"
		if !stage.IsAchievable {
			marker = "⚠"
		}
		sb.WriteString(fmt.Sprintf("%s %s (%.1fy, difficulty %.0f)\n",
			marker, stage.JobName, stage.ExpectedYears, stage.DifficultyScore))
		if len(stage.RequiredSkills) > 0 {
			skills := truncate(strings.Join(stage.RequiredSkills, ", "), 40)
			sb.WriteString(fmt.Sprintf("  needs: %s\n", skills))
		}
	}
	if len(path.Stages) > maxItemsToShow {
		sb.WriteString(fmt.Sprintf("... and %d more stages\n", len(path.Stages)-maxItemsToShow))
	}

	if len(path.RecommendedActions) > 0 {
		sb.WriteString("\nActions:\n")
		for _, action := range path.RecommendedActions {
			sb.WriteString(fmt.Sprintf("  • %s\n", action))
		}
	}

	p.printBox("GROWTH PATH", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintCandidates outputs the ranked leader candidate list.
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) PrintCandidates(candidates []types.LeaderCandidate) {
	if len(candidates) == 0 {
		fmt.Fprintf(p.out, "┌%s┐\n", strings.Repeat("─", boxWidth-2))
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, "NO QUALIFIED CANDIDATES")
		fmt.Fprintf(p.out, "└%s┘\n", strings.Repeat("─", boxWidth-2))
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Qualified candidates: %d\n\n", len(candidates)))

	count := min(len(candidates), maxItemsToShow)
	for i := 0; i < count; i++ {
		candidate := candidates[i]
		name := candidate.Name
		if name == "" {
			name = candidate.EmployeeID
		}
		sb.WriteString(fmt.Sprintf("#%d  %s\n", i+1, name))
		sb.WriteString(fmt.Sprintf("    Score: %.2f  Skills: %.0f%%\n",
			candidate.MatchScore, candidate.SkillMatch.MatchRate*100))
		if len(candidate.RiskFactors) > 0 {
			risk := truncate(candidate.RiskFactors[0], 45)
			sb.WriteString(fmt.Sprintf("    ⚠ %s\n", risk))
		}
		if i < count-1 {
			sb.WriteString("\n")
		}
	}

	if len(candidates) > maxItemsToShow {
		sb.WriteString(fmt.Sprintf("\n... and %d more candidates", len(candidates)-maxItemsToShow))
	}

	p.printBox("LEADER CANDIDATES", sb.String())
}

// PrintReadinessReport outputs the four-factor readiness breakdown.
func (p *Printer) PrintReadinessReport(report *types.ReadinessReport) {
	if report == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Employee:  %s\n", report.EmployeeID))
	sb.WriteString(fmt.Sprintf("Target:    %s\n", report.TargetJobID))
	verdict := "NOT QUALIFIED"
	if report.IsQualified {
		verdict = "QUALIFIED"
	}
	sb.WriteString(fmt.Sprintf("Score:     %.2f (%s)\n\n", report.TotalScore, verdict))

	checkmark := func(ok bool) string {
		if ok {
			return "✓"
		}
		return "✗"
	}
	details := report.QualificationDetails
	sb.WriteString(fmt.Sprintf("%s evaluation (avg %.2f / required %.2f)\n",
		checkmark(details.Evaluation.IsSatisfied), details.Evaluation.AverageScore, details.Evaluation.RequiredScore))
	sb.WriteString(fmt.Sprintf("%s level (%s / required %s)\n",
		checkmark(details.Level.IsSatisfied), details.Level.CurrentLevel, details.Level.RequiredLevel))
	sb.WriteString(fmt.Sprintf("%s skills (%.0f%% coverage)\n",
		checkmark(details.Skills.IsSatisfied), details.Skills.MatchRate*100))
	sb.WriteString(fmt.Sprintf("%s experience (%dy / required %dy)\n",
		checkmark(details.Experience.IsSatisfied), details.Experience.CurrentYears, details.Experience.RequiredYears))

	if len(report.RiskFactors) > 0 {
		sb.WriteString("\nRisk Factors:\n")
		for _, risk := range report.RiskFactors {
			sb.WriteString(fmt.Sprintf("  ⚠ %s\n", truncate(risk, 50)))
		}
	}

	p.printBox("LEADER READINESS", strings.TrimSuffix(sb.String(), "\n"))
}
