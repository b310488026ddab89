package game

import (
	"fmt"
	"investsim_backend/internal/model"
	servModel "investsim_backend/internal/service/game/model"
	"math"
)

const (
	// Усиление влияния рыночного события за каждый раунд после первого
	eventAmplificationPerRound = 0.2
	// Расширение волатильности за каждый раунд после первого
	volatilityGrowthPerRound = 0.15
)

// CalculateReturns Расчёт доходности раунда по четырём слотам.
// Вход считается предварительно провалидированным (Precheck + Validate на стороне вызывающего)
func (s *serv) CalculateReturns(
	investments []string,
	allocations []int,
	portfolioValue float64,
	round int,
	event *model.MarketEvent,
) (*model.CalcResult, error) {
	if len(investments) != len(allocations) {
		return nil, fmt.Errorf("investments and allocations length mismatch: %d != %d", len(investments), len(allocations))
	}

	resolved := make([]model.InvestmentType, len(investments))
	for i, name := range investments {
		inv, ok := servModel.Catalog[name]
		if !ok {
			return nil, fmt.Errorf("unknown investment type: %s", name)
		}
		resolved[i] = inv
	}

	// Штрафы за концентрацию считаются по всем слотам заранее
	penalties := concentrationPenalties(resolved, allocations, round)

	results := make([]model.InvestmentResult, 0, len(resolved))
	var totalReturn float64

	for i, inv := range resolved {
		alloc := allocations[i]
		investmentAmount := portfolioValue * float64(alloc) / 100

		// Базовая ставка: равномерно из [minReturn, maxReturn]
		returnRate := s.rnd.Float64()*(inv.MaxReturn-inv.MinReturn) + inv.MinReturn

		// Влияние рыночного события, усиленное номером раунда
		if event != nil {
			if impact, ok := event.Impacts[inv.Name]; ok {
				amplification := 1 + float64(round-1)*eventAmplificationPerRound
				returnRate += impact * amplification
			}
		}

		// Штраф за концентрацию и джиттер волатильности — только для рисковых инструментов
		if inv.Risk == model.RiskVeryHigh || inv.Risk == model.RiskHigh {
			returnRate -= penalties[inv.Name]

			volatilityMultiplier := 1 + float64(round-1)*volatilityGrowthPerRound
			returnRate += (s.rnd.Float64() - 0.5) * 10 * volatilityMultiplier
		}

		returnAmount := investmentAmount * (returnRate / 100)
		finalAmount := investmentAmount + returnAmount

		results = append(results, model.InvestmentResult{
			Investment:       inv,
			Allocation:       alloc,
			InvestmentAmount: investmentAmount,
			ReturnRate:       returnRate,
			ReturnAmount:     returnAmount,
			FinalAmount:      finalAmount,
		})

		totalReturn += returnAmount
	}

	return &model.CalcResult{
		Results:     results,
		TotalReturn: totalReturn,
	}, nil
}

// concentrationPenalties Штрафы за чрезмерную концентрацию в рисковых инструментах.
// Ключ — имя инструмента: при повторе инструмента действует штраф последнего слота
func concentrationPenalties(investments []model.InvestmentType, allocations []int, round int) map[string]float64 {
	penalties := make(map[string]float64)

	for i, inv := range investments {
		alloc := float64(allocations[i])

		if inv.Risk == model.RiskVeryHigh && alloc > 30 {
			excess := alloc - 30
			basePenalty := math.Pow(excess/10, 1.5) * 5
			roundMultiplier := 1 + float64(round-1)*0.3
			penalties[inv.Name] = basePenalty * roundMultiplier
		}

		if inv.Risk == model.RiskHigh && alloc > 50 {
			excess := alloc - 50
			basePenalty := math.Pow(excess/15, 1.3) * 3
			roundMultiplier := 1 + float64(round-1)*0.2
			penalties[inv.Name] = basePenalty * roundMultiplier
		}
	}

	return penalties
}
