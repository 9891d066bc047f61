package analysis

import (
	"fmt"
	"strings"

	"sales-assistant/internal/domain/dto"
	"sales-assistant/internal/domain/entities"
)

// BuildStyleGuide renders aggregated patterns as plain text for a prompt.
// An aggregate over no records renders as "".
func (a *Analyzer) BuildStyleGuide(p dto.EmailPatterns) string {
	if p.EditsAnalyzed == 0 {
		return ""
	}

	var b strings.Builder
	fmt.Fprintf(&b, "LEARNED STYLE PREFERENCES (from %d recent edits by the user):\n", p.EditsAnalyzed)

	writeChanges(&b, "Subject lines", p.SubjectChanges)
	writeChanges(&b, "Greetings", p.GreetingChanges)
	writeChanges(&b, "Sign-offs", p.SignoffChanges)

	switch p.LengthPreference {
	case entities.DirectionShorter:
		b.WriteString("\nLength: the user usually shortens generated emails. Keep the email concise and cut filler.\n")
	case entities.DirectionLonger:
		b.WriteString("\nLength: the user usually expands generated emails. Include more detail and context.\n")
	}

	examples := lastN(p.Examples, a.opts.RenderedExamples)
	if len(examples) > 0 {
		b.WriteString("\nRecent examples of the user's edits:\n")
		for i, ex := range examples {
			fmt.Fprintf(&b, "\nExample %d, generated version:\n%s\n", i+1, strings.TrimSpace(ex.Original))
			fmt.Fprintf(&b, "\nExample %d, version the user sent:\n%s\n", i+1, strings.TrimSpace(ex.Edited))
		}
	}

	b.WriteString("\nApply these preferences to the email you write.")
	return b.String()
}

func writeChanges(b *strings.Builder, title string, changes []entities.Pattern) {
	if len(changes) == 0 {
		return
	}
	fmt.Fprintf(b, "\n%s the user changed:\n", title)
	for _, c := range changes {
		fmt.Fprintf(b, "- %s -> %s\n", quoteOrNone(c.Before), quoteOrNone(c.After))
	}
}

func quoteOrNone(s string) string {
	if s == "" {
		return "(none)"
	}
	return fmt.Sprintf("%q", s)
}
