package entities

type PatternType string

const (
	SubjectChange  PatternType = "subject_change"
	GreetingChange PatternType = "greeting_change"
	SignoffChange  PatternType = "signoff_change"
	LengthChange   PatternType = "length_change"
)

const (
	DirectionLonger  = "longer"
	DirectionShorter = "shorter"
)

// Pattern is one detected difference between a generated email and the
// user's edit. Before/After are set for subject, greeting and sign-off
// changes; Direction/Percentage for length changes.
type Pattern struct {
	Type       PatternType `json:"type" bson:"type"`
	Before     string      `json:"before,omitempty" bson:"before,omitempty"`
	After      string      `json:"after,omitempty" bson:"after,omitempty"`
	Direction  string      `json:"direction,omitempty" bson:"direction,omitempty"`
	Percentage int         `json:"percentage,omitempty" bson:"percentage,omitempty"`
}

type EditRecord struct {
	ID             string    `json:"id" bson:"_id"`
	TranscriptID   string    `json:"transcriptId" bson:"transcript_id"`
	AccountID      string    `json:"accountId" bson:"account_id"`
	AccountName    string    `json:"accountName" bson:"account_name"`
	CallType       string    `json:"callType" bson:"call_type"`
	Timestamp      string    `json:"timestamp" bson:"timestamp"`
	Original       string    `json:"original" bson:"original"`
	Edited         string    `json:"edited" bson:"edited"`
	Patterns       []Pattern `json:"patterns" bson:"patterns"`
	OriginalLength int       `json:"originalLength" bson:"original_length"`
	EditedLength   int       `json:"editedLength" bson:"edited_length"`
	LengthDelta    int       `json:"lengthDelta" bson:"length_delta"`
	// CreatedAt orders records in stores without an implicit sequence.
	CreatedAt int64 `json:"createdAt,omitempty" bson:"created_at"`
}
