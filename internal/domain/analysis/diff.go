package analysis

import (
	"math"
	"regexp"
	"strings"
	"unicode/utf16"

	"sales-assistant/internal/domain/entities"
)

var (
	subjectPattern  = regexp.MustCompile(`Subject:[ \t]*([^\r\n]*)`)
	greetingPattern = regexp.MustCompile(`(?m)^[ \t]*(Hi[ \t]+[^,\r\n]+,)`)
)

// Longer phrases first: alternation is leftmost-first.
var signoffPhrases = []string{
	"Best regards",
	"Kind regards",
	"Warm regards",
	"Thank you",
	"Best",
	"Thanks",
	"Cheers",
	"Regards",
	"Sincerely",
}

// Analyzer extracts edit patterns and aggregates them into style preferences.
type Analyzer struct {
	opts    Options
	signoff *regexp.Regexp
}

func NewAnalyzer(opts Options) *Analyzer {
	opts = opts.withDefaults()

	quoted := make([]string, len(signoffPhrases))
	for i, phrase := range signoffPhrases {
		quoted[i] = regexp.QuoteMeta(phrase)
	}
	// The name must be set apart by punctuation or a line break, so
	// "Thanks James for the intro" in the body never counts.
	separator := `(?:[,!][ \t]*(?:\r?\n[ \t]*)*|[ \t]*(?:\r?\n[ \t]*)+)`
	signoff := regexp.MustCompile(`(?i)\b(` + strings.Join(quoted, "|") + `)` + separator + regexp.QuoteMeta(opts.SignerName) + `\b`)

	return &Analyzer{opts: opts, signoff: signoff}
}

func (a *Analyzer) Options() Options {
	return a.opts
}

// AnalyzeEdit compares a generated email with the user's edit. A marker that
// is missing on one side compares as the empty string, so a removed greeting
// is a change while a greeting absent from both is not.
func (a *Analyzer) AnalyzeEdit(original, edited string) []entities.Pattern {
	patterns := []entities.Pattern{}

	// The sign-off closes the email, so its last occurrence is the one that counts.
	checks := []struct {
		kind entities.PatternType
		re   *regexp.Regexp
		last bool
	}{
		{entities.SubjectChange, subjectPattern, false},
		{entities.GreetingChange, greetingPattern, false},
		{entities.SignoffChange, a.signoff, true},
	}
	for _, check := range checks {
		before := matchGroup(check.re, original, check.last)
		after := matchGroup(check.re, edited, check.last)
		if before != after {
			patterns = append(patterns, entities.Pattern{Type: check.kind, Before: before, After: after})
		}
	}

	if p, ok := a.lengthChange(original, edited); ok {
		patterns = append(patterns, p)
	}

	return patterns
}

func (a *Analyzer) lengthChange(original, edited string) (entities.Pattern, bool) {
	originalLen := CharCount(original)
	if originalLen == 0 {
		return entities.Pattern{}, false
	}
	delta := CharCount(edited) - originalLen
	abs := delta
	if abs < 0 {
		abs = -abs
	}

	// Integer comparison keeps exactly-at-threshold edits out.
	if abs*100 <= a.opts.LengthThresholdPct*originalLen {
		return entities.Pattern{}, false
	}

	direction := entities.DirectionLonger
	if delta < 0 {
		direction = entities.DirectionShorter
	}
	return entities.Pattern{
		Type:       entities.LengthChange,
		Direction:  direction,
		Percentage: int(math.Round(float64(abs) * 100 / float64(originalLen))),
	}, true
}

func matchGroup(re *regexp.Regexp, text string, last bool) string {
	var m []string
	if last {
		all := re.FindAllStringSubmatch(text, -1)
		if len(all) > 0 {
			m = all[len(all)-1]
		}
	} else {
		m = re.FindStringSubmatch(text)
	}
	if len(m) < 2 {
		return ""
	}
	return strings.TrimSpace(m[1])
}

// CharCount is the length measure used for edit records. It counts UTF-16
// code units, the same number the browser client reports as string length.
func CharCount(text string) int {
	n := 0
	for _, r := range text {
		n += utf16.RuneLen(r)
	}
	return n
}
