package entities

// Account is the externally supplied account blob. It is read-only input to
// prompt construction and is never validated beyond JSON decoding.
type Account struct {
	ID              string           `json:"id"`
	Name            string           `json:"name"`
	Industry        string           `json:"industry,omitempty"`
	Stage           string           `json:"stage,omitempty"`
	Stakeholders    []Stakeholder    `json:"stakeholders"`
	Metrics         []Metric         `json:"metrics"`
	InformationGaps []InformationGap `json:"informationGaps"`
}

type Stakeholder struct {
	Name  string `json:"name"`
	Title string `json:"title,omitempty"`
	Role  string `json:"role,omitempty"`
	Notes string `json:"notes,omitempty"`
}

// Metric values arrive as strings or numbers depending on the client.
type Metric struct {
	Name   string `json:"name"`
	Value  any    `json:"value,omitempty"`
	Target any    `json:"target,omitempty"`
}

type InformationGap struct {
	ID       string `json:"id,omitempty"`
	Category string `json:"category"`
	Question string `json:"question"`
	Status   string `json:"status,omitempty"`
}

type Transcript struct {
	ID        string   `json:"id"`
	AccountID string   `json:"accountId,omitempty"`
	CallType  string   `json:"callType"`
	CallDate  string   `json:"callDate,omitempty"`
	Summary   string   `json:"summary"`
	KeyPoints []string `json:"keyPoints,omitempty"`
	NextSteps []string `json:"nextSteps"`
	Attendees []string `json:"attendees,omitempty"`
}
