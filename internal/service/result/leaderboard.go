package result

import (
	"context"
	"investsim_backend/internal/model"
)

// Leaderboard Топ победителей по финальной стоимости портфеля
func (s *serv) Leaderboard(ctx context.Context) ([]model.LeaderboardEntry, error) {
	return s.resultRepo.GetLeaderboard(ctx, s.cfg.LeaderboardLimit())
}

// UserResults История партий пользователя, последние первыми
func (s *serv) UserResults(ctx context.Context, userID int) ([]model.GameResult, error) {
	return s.resultRepo.GetUserResults(ctx, userID)
}
