package analysis

import (
	"sales-assistant/internal/domain/dto"
	"sales-assistant/internal/domain/entities"
)

const NoPreference = "no_preference"

// Aggregate buckets the patterns of the newest PatternWindow records. Records
// must be ordered oldest first; recency is the only weighting.
func (a *Analyzer) Aggregate(records []entities.EditRecord) dto.EmailPatterns {
	window := lastN(records, a.opts.PatternWindow)

	var subjects, greetings, signoffs []entities.Pattern
	examples := make([]dto.ExamplePair, 0, len(window))
	longer, shorter := 0, 0

	for _, record := range window {
		for _, p := range record.Patterns {
			switch p.Type {
			case entities.SubjectChange:
				subjects = append(subjects, p)
			case entities.GreetingChange:
				greetings = append(greetings, p)
			case entities.SignoffChange:
				signoffs = append(signoffs, p)
			case entities.LengthChange:
				switch p.Direction {
				case entities.DirectionLonger:
					longer++
				case entities.DirectionShorter:
					shorter++
				}
			}
		}
		examples = append(examples, dto.ExamplePair{Original: record.Original, Edited: record.Edited})
	}

	return dto.EmailPatterns{
		SubjectChanges:   nonNil(lastN(subjects, a.opts.ChangeWindow)),
		GreetingChanges:  nonNil(lastN(greetings, a.opts.ChangeWindow)),
		SignoffChanges:   nonNil(lastN(signoffs, a.opts.ChangeWindow)),
		LengthPreference: lengthPreference(longer, shorter),
		Examples:         lastN(examples, a.opts.ExampleWindow),
		EditsAnalyzed:    len(window),
	}
}

func lengthPreference(longer, shorter int) string {
	switch {
	case shorter > longer:
		return entities.DirectionShorter
	case longer > shorter:
		return entities.DirectionLonger
	default:
		return NoPreference
	}
}

func lastN[T any](items []T, n int) []T {
	if n <= 0 || len(items) <= n {
		return items
	}
	return items[len(items)-n:]
}

func nonNil(items []entities.Pattern) []entities.Pattern {
	if items == nil {
		return []entities.Pattern{}
	}
	return items
}
