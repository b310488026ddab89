package repository

import (
	"context"
	"investsim_backend/internal/model"
)

type UserRepository interface {
	CreateUser(ctx context.Context, username string) (*model.User, error)
	GetUser(ctx context.Context, id int) (*model.User, error)
	GetUserByUsername(ctx context.Context, username string) (*model.User, error)
}

type GameResultRepository interface {
	SaveResult(ctx context.Context, result *model.GameResult) (*model.GameResult, error)
	GetUserResults(ctx context.Context, userID int) ([]model.GameResult, error)
	GetLeaderboard(ctx context.Context, limit int) ([]model.LeaderboardEntry, error)
}
