package dto

import "sales-assistant/internal/domain/entities"

type SaveEmailEditRequest struct {
	Original     string `json:"original"`
	Edited       string `json:"edited"`
	TranscriptID string `json:"transcriptId"`
	AccountID    string `json:"accountId"`
	AccountName  string `json:"accountName"`
	CallType     string `json:"callType"`
	Timestamp    string `json:"timestamp"`
}

type SaveEmailEditResponse struct {
	Success          bool   `json:"success"`
	Message          string `json:"message"`
	PatternsDetected int    `json:"patternsDetected"`
}

type ExamplePair struct {
	Original string `json:"original"`
	Edited   string `json:"edited"`
}

// EmailPatterns is the aggregated view over the most recent edits.
type EmailPatterns struct {
	SubjectChanges   []entities.Pattern `json:"subjectChanges"`
	GreetingChanges  []entities.Pattern `json:"greetingChanges"`
	SignoffChanges   []entities.Pattern `json:"signoffChanges"`
	LengthPreference string             `json:"lengthPreference"`
	Examples         []ExamplePair      `json:"examples"`
	EditsAnalyzed    int                `json:"editsAnalyzed"`
}

type EmailPatternsResponse struct {
	Success     bool           `json:"success"`
	HasPatterns bool           `json:"hasPatterns"`
	TotalEdits  int            `json:"totalEdits"`
	StyleGuide  string         `json:"styleGuide"`
	Patterns    *EmailPatterns `json:"patterns"`
}
