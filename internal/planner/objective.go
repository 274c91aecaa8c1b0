package planner

import (
	"strings"

	"github.com/KhanShaheb34/markopolo-ai-full-stack-challenge/internal/domain"
)

// DetermineObjective infers the campaign objective from prompt keywords.
// Reactivation wins over the others, retention is the default.
func DetermineObjective(prompt string) domain.Objective {
	promptLower := strings.ToLower(prompt)

	switch {
	case strings.Contains(promptLower, "reactivation") || strings.Contains(promptLower, "win back"):
		return domain.ObjectiveReactivation
	case strings.Contains(promptLower, "retention") || strings.Contains(promptLower, "loyalty"):
		return domain.ObjectiveRetention
	case strings.Contains(promptLower, "acquisition") || strings.Contains(promptLower, "new customer"):
		return domain.ObjectiveAcquisition
	case strings.Contains(promptLower, "awareness") || strings.Contains(promptLower, "reach"):
		return domain.ObjectiveAwareness
	default:
		return domain.ObjectiveRetention
	}
}

// DetermineKPIs sets the base targets for the objective and tightens them
// when the prompt asks for aggressive targets. Adjustments apply only to the
// KPIs present on that objective.
func DetermineKPIs(objective domain.Objective, prompt string) domain.KPIs {
	var kpis domain.KPIs

	switch objective {
	case domain.ObjectiveAwareness:
		kpis.CTRMin = 0.02
	case domain.ObjectiveAcquisition:
		kpis.CPAMax = 50
	case domain.ObjectiveRetention:
		kpis.ROASTarget = 3.0
	case domain.ObjectiveReactivation:
		kpis.ROASTarget = 2.5
		kpis.CPAMax = 40
	}

	promptLower := strings.ToLower(prompt)
	if strings.Contains(promptLower, "aggressive") || strings.Contains(promptLower, "high target") {
		if kpis.ROASTarget > 0 {
			kpis.ROASTarget += roasBoost
		}
		if kpis.CPAMax > 0 {
			kpis.CPAMax -= cpaReduction
		}
		if kpis.CTRMin > 0 {
			kpis.CTRMin += ctrBoost
		}
	}

	return kpis
}
