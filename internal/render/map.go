// Package render draws the quest map and attempt history as styled
// terminal output.
package render

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/cookquest/internal/questgraph"
	"github.com/abhisek/cookquest/internal/session"
	"github.com/abhisek/cookquest/internal/store"
)

// Color palette — warm kitchen tones
var (
	primary   = lipgloss.Color("#F97316") // Orange
	secondary = lipgloss.Color("#14B8A6") // Teal
	success   = lipgloss.Color("#22C55E") // Green
	text      = lipgloss.Color("#F8FAFC") // White
	textDim   = lipgloss.Color("#94A3B8") // Slate
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(primary)

	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(secondary)

	completedStyle = lipgloss.NewStyle().Foreground(success)
	availableStyle = lipgloss.NewStyle().Foreground(text)
	lockedStyle    = lipgloss.NewStyle().Foreground(textDim)
	dimStyle       = lipgloss.NewStyle().Foreground(textDim)
)

var categoryOrder = []questgraph.Category{
	questgraph.CategoryFoundation,
	questgraph.CategoryTechnique,
	questgraph.CategoryFlavor,
	questgraph.CategoryCuisine,
	questgraph.CategoryAdvanced,
}

// QuestMap renders a learner's board grouped by category. Locked quests
// list the prerequisite titles still standing in the way.
func QuestMap(learnerID string, board []session.BoardEntry) string {
	byID := make(map[int]session.BoardEntry, len(board))
	for _, e := range board {
		byID[e.Quest.ID] = e
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render(fmt.Sprintf("🍳 CookQuest — %s", learnerID)))
	b.WriteString("\n")

	for _, cat := range categoryOrder {
		var entries []session.BoardEntry
		for _, e := range board {
			if e.Quest.Category == cat {
				entries = append(entries, e)
			}
		}
		if len(entries) == 0 {
			continue
		}

		b.WriteString("\n")
		b.WriteString(headerStyle.Render(strings.ToUpper(string(cat))))
		b.WriteString("\n")
		for _, e := range entries {
			b.WriteString(renderQuestRow(e, byID))
			b.WriteString("\n")
		}
	}
	return b.String()
}

func renderQuestRow(e session.BoardEntry, byID map[int]session.BoardEntry) string {
	var nameStyle lipgloss.Style
	switch e.Status {
	case questgraph.StatusCompleted:
		nameStyle = completedStyle
	case questgraph.StatusAvailable:
		nameStyle = availableStyle
	default:
		nameStyle = lockedStyle
	}

	row := fmt.Sprintf("  %s %s  %s",
		e.Status.Icon(),
		nameStyle.Render(fmt.Sprintf("%-20s", e.Quest.Title)),
		stars(e.Stars, e.Quest.MaxStars),
	)

	if e.Status == questgraph.StatusLocked {
		var waiting []string
		for _, pid := range e.Quest.Prerequisites {
			if p, ok := byID[pid]; ok && p.Status != questgraph.StatusCompleted {
				waiting = append(waiting, p.Quest.Title)
			}
		}
		if len(waiting) > 0 {
			row += dimStyle.Render(fmt.Sprintf("  needs %s", strings.Join(waiting, ", ")))
		}
	}
	return row
}

func stars(earned, max int) string {
	if max == 0 {
		return strings.Repeat(" ", 5)
	}
	return completedStyle.Render(strings.Repeat("★", earned)) +
		dimStyle.Render(strings.Repeat("☆", max-earned))
}

// AttemptHistory renders a learner's minigame attempts, newest first.
func AttemptHistory(learnerID string, attempts []store.Attempt, questTitles map[int]string) string {
	var b strings.Builder
	b.WriteString(titleStyle.Render(fmt.Sprintf("📜 Attempts — %s", learnerID)))
	b.WriteString("\n")

	if len(attempts) == 0 {
		b.WriteString(dimStyle.Render("  no attempts yet"))
		b.WriteString("\n")
		return b.String()
	}

	for _, a := range attempts {
		outcome := lockedStyle.Render("failed")
		if a.Passed {
			outcome = completedStyle.Render("passed")
		}
		title := questTitles[a.QuestID]
		if title == "" {
			title = fmt.Sprintf("quest %d", a.QuestID)
		}
		b.WriteString(fmt.Sprintf("  %s  %-20s %3d%% (%d/%d)  %s\n",
			a.CompletedAt.Format("2006-01-02 15:04"),
			title,
			a.Score,
			a.CorrectAnswers,
			a.TotalQuestions,
			outcome,
		))
	}
	return b.String()
}
