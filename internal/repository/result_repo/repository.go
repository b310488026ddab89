package result_repo

import (
	"context"
	"investsim_backend/internal/model"
	"investsim_backend/internal/repository"

	sq "github.com/Masterminds/squirrel"
	trmpgx "github.com/avito-tech/go-transaction-manager/drivers/pgxv5/v2"
	"github.com/jackc/pgx/v5/pgxpool"
)

const (
	table           = "game_results"
	colID           = "id"
	colUserID       = "user_id"
	colInitialValue = "initial_value"
	colFinalValue   = "final_value"
	colRoundsPlayed = "rounds_played"
	colIsWinner     = "is_winner"
	colCompletedAt  = "completed_at"
)

type repo struct {
	dbc    *pgxpool.Pool
	getter *trmpgx.CtxGetter
}

func NewGameResultRepository(dbc *pgxpool.Pool) repository.GameResultRepository {
	return &repo{
		dbc:    dbc,
		getter: trmpgx.DefaultCtxGetter,
	}
}

// SaveResult - сохраняет итог завершённой партии в БД.
// Возвращает сохранённую запись вместе с ID и временем завершения
func (r *repo) SaveResult(ctx context.Context, result *model.GameResult) (*model.GameResult, error) {
	// Формируем запрос
	query := sq.Insert(table).
		Columns(colUserID, colInitialValue, colFinalValue, colRoundsPlayed, colIsWinner).
		Values(result.UserID, result.InitialValue, result.FinalValue, result.RoundsPlayed, result.IsWinner).
		Suffix("RETURNING " + colID + ", " + colCompletedAt).
		PlaceholderFormat(sq.Dollar)

	sqlStr, args, err := query.ToSql()
	if err != nil {
		return nil, err
	}

	saved := *result
	err = r.getter.DefaultTrOrDB(ctx, r.dbc).QueryRow(ctx, sqlStr, args...).Scan(&saved.ID, &saved.CompletedAt)
	if err != nil {
		return nil, err
	}

	return &saved, nil
}

// GetUserResults - возвращает все результаты пользователя, последние первыми
func (r *repo) GetUserResults(ctx context.Context, userID int) ([]model.GameResult, error) {
	// Формируем запрос
	query := sq.Select(colID, colUserID, colInitialValue, colFinalValue, colRoundsPlayed, colIsWinner, colCompletedAt).
		From(table).
		Where(sq.Eq{colUserID: userID}).
		OrderBy(colCompletedAt + " DESC").
		PlaceholderFormat(sq.Dollar)

	sqlStr, args, err := query.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.getter.DefaultTrOrDB(ctx, r.dbc).Query(ctx, sqlStr, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var results []model.GameResult
	for rows.Next() {
		var res model.GameResult
		err = rows.Scan(&res.ID, &res.UserID, &res.InitialValue, &res.FinalValue, &res.RoundsPlayed, &res.IsWinner, &res.CompletedAt)
		if err != nil {
			return nil, err
		}
		results = append(results, res)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}

	return results, nil
}

// GetLeaderboard - возвращает топ победителей по финальной стоимости портфеля.
// Только записи с is_winner = true, по убыванию final_value, не больше limit
func (r *repo) GetLeaderboard(ctx context.Context, limit int) ([]model.LeaderboardEntry, error) {
	// Формируем запрос с джойном на пользователей
	query := sq.Select(
		"u.id", "u.username", "u.created_at",
		"g."+colID, "g."+colUserID, "g."+colInitialValue, "g."+colFinalValue,
		"g."+colRoundsPlayed, "g."+colIsWinner, "g."+colCompletedAt,
	).
		From(table + " g").
		Join("users u ON g." + colUserID + " = u.id").
		Where(sq.Eq{"g." + colIsWinner: true}).
		OrderBy("g." + colFinalValue + " DESC").
		Limit(uint64(limit)).
		PlaceholderFormat(sq.Dollar)

	sqlStr, args, err := query.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.getter.DefaultTrOrDB(ctx, r.dbc).Query(ctx, sqlStr, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entries []model.LeaderboardEntry
	for rows.Next() {
		var entry model.LeaderboardEntry
		err = rows.Scan(
			&entry.User.ID, &entry.User.Username, &entry.User.CreatedAt,
			&entry.Result.ID, &entry.Result.UserID, &entry.Result.InitialValue, &entry.Result.FinalValue,
			&entry.Result.RoundsPlayed, &entry.Result.IsWinner, &entry.Result.CompletedAt,
		)
		if err != nil {
			return nil, err
		}
		entries = append(entries, entry)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}

	return entries, nil
}
