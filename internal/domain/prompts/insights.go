package prompts

import (
	"fmt"
	"strings"

	"sales-assistant/internal/domain/entities"
)

// AccountInsights is what prompt assembly derives from an account blob.
type AccountInsights struct {
	BusinessGaps     []entities.InformationGap
	SalesGaps        []entities.InformationGap
	HasChampion      bool
	HasEconomicBuyer bool
	HasMetrics       bool
}

var closedGapStatuses = map[string]bool{
	"resolved": true,
	"closed":   true,
	"answered": true,
}

var businessGapCategories = map[string]bool{
	"business":         true,
	"business_process": true,
	"business-process": true,
}

func AnalyzeAccount(account *entities.Account) AccountInsights {
	var insights AccountInsights
	if account == nil {
		return insights
	}

	for _, gap := range account.InformationGaps {
		if closedGapStatuses[strings.ToLower(strings.TrimSpace(gap.Status))] {
			continue
		}
		if businessGapCategories[strings.ToLower(strings.TrimSpace(gap.Category))] {
			insights.BusinessGaps = append(insights.BusinessGaps, gap)
		} else {
			insights.SalesGaps = append(insights.SalesGaps, gap)
		}
	}

	for _, s := range account.Stakeholders {
		role := strings.ToLower(s.Role)
		if strings.Contains(role, "champion") {
			insights.HasChampion = true
		}
		if strings.Contains(role, "economic buyer") || strings.Contains(role, "economic_buyer") {
			insights.HasEconomicBuyer = true
		}
	}

	for _, m := range account.Metrics {
		if hasValue(m.Value) {
			insights.HasMetrics = true
			break
		}
	}

	return insights
}

func hasValue(v any) bool {
	if v == nil {
		return false
	}
	return strings.TrimSpace(fmt.Sprint(v)) != ""
}
