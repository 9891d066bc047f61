package prompts

import "strings"

// DefaultCallType is suggested when the previous call type is unknown.
const DefaultCallType = "discovery"

var callProgression = map[string]string{
	"intro":            "discovery",
	"discovery":        "demo",
	"demo":             "technical_review",
	"technical_review": "proposal",
	"proposal":         "negotiation",
	"negotiation":      "closing",
	"closing":          "onboarding",
}

// NextCallType suggests the call that should follow previous.
func NextCallType(previous string) string {
	key := strings.ToLower(strings.TrimSpace(previous))
	key = strings.NewReplacer(" ", "_", "-", "_").Replace(key)
	if next, ok := callProgression[key]; ok {
		return next
	}
	return DefaultCallType
}

// CallProgression returns a copy of the progression table.
func CallProgression() map[string]string {
	out := make(map[string]string, len(callProgression))
	for k, v := range callProgression {
		out[k] = v
	}
	return out
}
