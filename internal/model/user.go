package model

import "time"

type User struct {
	ID        int
	Username  string
	CreatedAt time.Time
}

// GameResult Сохранённый итог партии. Создаётся один раз, далее не меняется
type GameResult struct {
	ID           int
	UserID       int
	InitialValue float64
	FinalValue   float64
	RoundsPlayed int
	IsWinner     bool
	CompletedAt  time.Time
}

// LeaderboardEntry Пара пользователь + результат для таблицы лидеров
type LeaderboardEntry struct {
	User   User
	Result GameResult
}
