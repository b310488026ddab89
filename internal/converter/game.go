package converter

import (
	dto "investsim_backend/internal/api/dto/game"
	"investsim_backend/internal/model"
)

func ToRestrictionsResponse(round int, r model.RestrictionSet) dto.RestrictionsResponse {
	return dto.RestrictionsResponse{
		Round:              round,
		MaxAllocation:      r.MaxAllocation,
		MinDiversification: r.MinDiversification,
		Description:        r.Description,
	}
}

func ToValidateResponse(v model.ValidationResult) dto.ValidateResponse {
	errs := v.Errors
	if errs == nil {
		errs = []string{}
	}
	return dto.ValidateResponse{
		IsValid: v.IsValid,
		Errors:  errs,
	}
}

func ToMarketEventResponse(e model.MarketEvent) dto.MarketEvent {
	return dto.MarketEvent{
		Title:       e.Title,
		Description: e.Description,
		Impacts:     e.Impacts,
	}
}

func ToMarketEvent(e *dto.MarketEvent) *model.MarketEvent {
	if e == nil {
		return nil
	}
	return &model.MarketEvent{
		Title:       e.Title,
		Description: e.Description,
		Impacts:     e.Impacts,
	}
}

func ToCalculateResponse(res model.CalcResult) dto.CalculateResponse {
	results := make([]dto.InvestmentResult, len(res.Results))
	for i, r := range res.Results {
		results[i] = dto.InvestmentResult{
			Type:             r.Investment.Name,
			Risk:             string(r.Investment.Risk),
			Allocation:       r.Allocation,
			InvestmentAmount: r.InvestmentAmount,
			ReturnRate:       r.ReturnRate,
			ReturnAmount:     r.ReturnAmount,
			FinalAmount:      r.FinalAmount,
		}
	}
	return dto.CalculateResponse{
		Results:     results,
		TotalReturn: res.TotalReturn,
	}
}

func ToGameStateResponse(state model.GameState) dto.GameStateResponse {
	return dto.GameStateResponse{
		CurrentRound:   state.CurrentRound,
		PortfolioValue: state.PortfolioValue,
		Status:         string(state.Status),
	}
}

func ToGameState(req dto.AdvanceRequest) model.GameState {
	return model.GameState{
		CurrentRound:   req.CurrentRound,
		PortfolioValue: req.PortfolioValue,
		Status:         model.StatusInProgress,
	}
}
