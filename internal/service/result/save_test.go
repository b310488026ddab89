package result

import (
	"testing"

	"investsim_backend/internal/model"
)

func TestValidateResultAccepts(t *testing.T) {
	res := &model.GameResult{
		UserID:       1,
		InitialValue: 100_000_000,
		FinalValue:   215_000_000,
		RoundsPlayed: 7,
		IsWinner:     true,
	}
	if err := validateResult(res); err != nil {
		t.Fatalf("expected valid result, got %v", err)
	}
}

func TestValidateResultRejects(t *testing.T) {
	bad := []*model.GameResult{
		{UserID: 0, InitialValue: 100_000_000, RoundsPlayed: 10},
		{UserID: 1, InitialValue: 0, RoundsPlayed: 10},
		{UserID: 1, InitialValue: 100_000_000, RoundsPlayed: 0},
	}
	for i, res := range bad {
		if err := validateResult(res); err == nil {
			t.Errorf("case %d: expected validation error", i)
		}
	}
}

// Проигранная партия сохраняется так же, как выигранная
func TestValidateResultAllowsLoss(t *testing.T) {
	res := &model.GameResult{
		UserID:       3,
		InitialValue: 100_000_000,
		FinalValue:   42_000_000,
		RoundsPlayed: 10,
		IsWinner:     false,
	}
	if err := validateResult(res); err != nil {
		t.Fatalf("expected loss result to be valid, got %v", err)
	}
}
