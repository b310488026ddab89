package service

import (
	"context"
	"investsim_backend/internal/model"
)

type GameService interface {
	Restrictions(round int) model.RestrictionSet
	Precheck(investments []string, allocations []int) *model.ValidationResult
	Validate(investments []string, allocations []int, round int) (*model.ValidationResult, error)
	DrawMarketEvent() model.MarketEvent
	CalculateReturns(investments []string, allocations []int, portfolioValue float64, round int, event *model.MarketEvent) (*model.CalcResult, error)
	NewGameState() model.GameState
	AdvanceRound(state model.GameState, totalReturn float64) model.GameState
}

type ResultService interface {
	CreateUser(ctx context.Context, username string) (*model.User, error)
	SaveResult(ctx context.Context, result *model.GameResult) (*model.GameResult, error)
	Leaderboard(ctx context.Context) ([]model.LeaderboardEntry, error)
	UserResults(ctx context.Context, userID int) ([]model.GameResult, error)
}
