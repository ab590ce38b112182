package cli

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/theatilgan/courserec-cli/internal/core/domain"
)

// Terminal styles shared across commands.
var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("205"))

	headingStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("39"))

	mutedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))

	successStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("42"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196"))
)

// renderRecommendationSet formats a labeled recommendation set for the
// terminal. Courses and documents stay in separate sections.
func renderRecommendationSet(set domain.RecommendationSet, target domain.Target) string {
	if set.Empty() {
		return mutedStyle.Render("No recommendations found.") + "\n"
	}

	var b strings.Builder

	if target == domain.TargetCourses || target == domain.TargetBoth {
		b.WriteString(headingStyle.Render("Recommended Courses"))
		b.WriteString("\n")
		b.WriteString(renderRecommendations(set.Courses))
	}

	if target == domain.TargetDocuments || target == domain.TargetBoth {
		if target == domain.TargetBoth {
			b.WriteString("\n")
		}
		b.WriteString(headingStyle.Render("Recommended Documents"))
		b.WriteString("\n")
		b.WriteString(renderRecommendations(set.Documents))
	}

	return b.String()
}

// renderRecommendations formats one labeled list.
func renderRecommendations(recs []domain.Recommendation) string {
	if len(recs) == 0 {
		return mutedStyle.Render("  (no matches)") + "\n"
	}

	var b strings.Builder
	for i, r := range recs {
		b.WriteString(fmt.Sprintf("  %d. %s\n", i+1, titleStyle.Render(r.Name)))
		b.WriteString(fmt.Sprintf("     %s\n", r.Body))
	}
	return b.String()
}
