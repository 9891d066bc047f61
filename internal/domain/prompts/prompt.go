package prompts

import (
	"fmt"
	"strings"

	"sales-assistant/internal/domain/dto"
	"sales-assistant/internal/domain/entities"
)

const agendaSystemPrompt = `You are an experienced enterprise sales coach. You help account executives prepare for customer calls using the MEDDICC qualification framework (Metrics, Economic buyer, Decision criteria, Decision process, Identify pain, Champion, Competition).

Write a practical, time-boxed meeting agenda. Use short headings and bullet points. Every item must either move the deal forward or close an information gap. Do not invent facts about the customer.`

const followUpSystemPrompt = `You are an account executive writing a follow-up email after a customer call.

Rules:
- Start with a line of the form "Subject: <subject>".
- Greet the main contact with "Hi <first name>,".
- Recap what was discussed, confirm the agreed next steps with owners, and propose the next meeting.
- Keep a warm, professional tone. No marketing language.
- End with a sign-off followed by the sender name on its own line.`

// BuildAgendaPrompt assembles the agenda prompt pair. Output depends only on
// its inputs.
func BuildAgendaPrompt(transcript *entities.Transcript, account *entities.Account) dto.CompletionRequest {
	insights := AnalyzeAccount(account)
	nextCall := NextCallType(transcript.CallType)

	var b strings.Builder
	fmt.Fprintf(&b, "Prepare the agenda for the next call with %s.\n", accountName(account))

	writePreviousCall(&b, transcript)
	fmt.Fprintf(&b, "\nSUGGESTED NEXT CALL TYPE: %s\n", nextCall)

	writeStakeholders(&b, account)

	b.WriteString("\nQUALIFICATION STATUS\n")
	fmt.Fprintf(&b, "- Champion identified: %s\n", yesNo(insights.HasChampion))
	fmt.Fprintf(&b, "- Economic buyer identified: %s\n", yesNo(insights.HasEconomicBuyer))
	fmt.Fprintf(&b, "- Success metrics quantified: %s\n", yesNo(insights.HasMetrics))

	writeGaps(&b, "OPEN BUSINESS QUESTIONS", insights.BusinessGaps)
	writeGaps(&b, "OPEN SALES / MEDDICC QUESTIONS", insights.SalesGaps)

	b.WriteString("\nThe agenda must:\n")
	fmt.Fprintf(&b, "- Fit a %s call and open by confirming the goals of the meeting.\n", strings.ReplaceAll(nextCall, "_", " "))
	b.WriteString("- Review the next steps agreed on the previous call.\n")
	if len(insights.BusinessGaps)+len(insights.SalesGaps) > 0 {
		b.WriteString("- Include targeted questions that close the open questions above.\n")
	}
	if !insights.HasChampion {
		b.WriteString("- Include a step to identify and test a potential champion.\n")
	}
	if !insights.HasEconomicBuyer {
		b.WriteString("- Include a step to learn who the economic buyer is and how to get access.\n")
	}
	if !insights.HasMetrics {
		b.WriteString("- Include questions that quantify the business impact (metrics).\n")
	}
	b.WriteString("- End with clear next steps and owners.\n")

	return dto.CompletionRequest{System: agendaSystemPrompt, User: b.String()}
}

// BuildFollowUpPrompt assembles the follow-up email prompt pair. account may
// be nil. A non-empty styleGuide is appended verbatim.
func BuildFollowUpPrompt(transcript *entities.Transcript, account *entities.Account, styleGuide, signerName string) dto.CompletionRequest {
	var b strings.Builder
	if account != nil {
		fmt.Fprintf(&b, "Write the follow-up email for our call with %s.\n", accountName(account))
	} else {
		b.WriteString("Write the follow-up email for this customer call.\n")
	}

	writePreviousCall(&b, transcript)
	writeStakeholders(&b, account)

	fmt.Fprintf(&b, "\nSign the email as %s.\n", signerName)

	if styleGuide != "" {
		b.WriteString("\n")
		b.WriteString(styleGuide)
		b.WriteString("\n")
	}

	return dto.CompletionRequest{System: followUpSystemPrompt, User: b.String()}
}

func writePreviousCall(b *strings.Builder, t *entities.Transcript) {
	b.WriteString("\nPREVIOUS CALL\n")
	fmt.Fprintf(b, "Type: %s\n", orUnknown(t.CallType))
	if t.CallDate != "" {
		fmt.Fprintf(b, "Date: %s\n", t.CallDate)
	}
	if len(t.Attendees) > 0 {
		fmt.Fprintf(b, "Attendees: %s\n", strings.Join(t.Attendees, ", "))
	}
	fmt.Fprintf(b, "Summary: %s\n", orUnknown(strings.TrimSpace(t.Summary)))
	if len(t.KeyPoints) > 0 {
		b.WriteString("Key points:\n")
		for _, p := range t.KeyPoints {
			fmt.Fprintf(b, "- %s\n", p)
		}
	}
	if len(t.NextSteps) > 0 {
		b.WriteString("Next steps agreed:\n")
		for _, s := range t.NextSteps {
			fmt.Fprintf(b, "- %s\n", s)
		}
	}
}

func writeStakeholders(b *strings.Builder, account *entities.Account) {
	if account == nil || len(account.Stakeholders) == 0 {
		return
	}
	b.WriteString("\nSTAKEHOLDERS\n")
	for _, s := range account.Stakeholders {
		line := s.Name
		if s.Title != "" {
			line += " (" + s.Title + ")"
		}
		if s.Role != "" {
			line += ", role: " + s.Role
		}
		fmt.Fprintf(b, "- %s\n", line)
	}
}

func writeGaps(b *strings.Builder, title string, gaps []entities.InformationGap) {
	if len(gaps) == 0 {
		return
	}
	fmt.Fprintf(b, "\n%s\n", title)
	for _, g := range gaps {
		fmt.Fprintf(b, "- %s\n", g.Question)
	}
}

func accountName(account *entities.Account) string {
	if account == nil || strings.TrimSpace(account.Name) == "" {
		return "the customer"
	}
	return account.Name
}

func orUnknown(s string) string {
	if s == "" {
		return "unknown"
	}
	return s
}

func yesNo(v bool) string {
	if v {
		return "yes"
	}
	return "no"
}
