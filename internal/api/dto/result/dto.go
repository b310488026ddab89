package result

import "time"

type CreateUserRequest struct {
	Username string `json:"username"` // Уникальное имя пользователя
}

type UserResponse struct {
	ID        int       `json:"id"`
	Username  string    `json:"username"`
	CreatedAt time.Time `json:"created_at"`
}

type SaveResultRequest struct {
	UserID       int     `json:"userId"`
	InitialValue float64 `json:"initialValue"`
	FinalValue   float64 `json:"finalValue"`
	RoundsPlayed int     `json:"roundsPlayed"`
	IsWinner     bool    `json:"isWinner"`
}

type GameResultResponse struct {
	ID           int       `json:"id"`
	UserID       int       `json:"userId"`
	InitialValue float64   `json:"initialValue"`
	FinalValue   float64   `json:"finalValue"`
	RoundsPlayed int       `json:"roundsPlayed"`
	IsWinner     bool      `json:"isWinner"`
	CompletedAt  time.Time `json:"completedAt"`
}

type LeaderboardEntryResponse struct {
	User   UserResponse       `json:"user"`
	Result GameResultResponse `json:"result"`
}
