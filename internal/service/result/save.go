package result

import (
	"context"
	"errors"
	"fmt"
	"investsim_backend/internal/model"
	"investsim_backend/internal/repository/user_repo"
)

var (
	ErrUnknownUser   = errors.New("unknown user")
	ErrInvalidResult = errors.New("invalid game result")
)

// CreateUser Создаёт пользователя по имени.
// Если имя уже занято — возвращает существующего пользователя
func (s *serv) CreateUser(ctx context.Context, username string) (*model.User, error) {
	if username == "" {
		return nil, fmt.Errorf("%w: username must not be empty", ErrInvalidResult)
	}

	existing, err := s.userRepo.GetUserByUsername(ctx, username)
	if err == nil {
		return existing, nil
	}
	if !errors.Is(err, user_repo.ErrUserNotFound) {
		return nil, err
	}

	return s.userRepo.CreateUser(ctx, username)
}

// SaveResult Сохраняет итог завершённой партии.
// Проверка пользователя и вставка идут в одной транзакции
func (s *serv) SaveResult(ctx context.Context, result *model.GameResult) (*model.GameResult, error) {
	if err := validateResult(result); err != nil {
		return nil, err
	}

	var saved *model.GameResult

	err := s.txManager.Do(ctx, func(txCtx context.Context) error {
		// Пользователь должен существовать
		_, err := s.userRepo.GetUser(txCtx, result.UserID)
		if err != nil {
			if errors.Is(err, user_repo.ErrUserNotFound) {
				return fmt.Errorf("%w: id %d", ErrUnknownUser, result.UserID)
			}
			return err
		}

		saved, err = s.resultRepo.SaveResult(txCtx, result)
		return err
	})
	if err != nil {
		return nil, err
	}

	return saved, nil
}

// validateResult Схемная проверка входящего результата.
// Бэкенд доверяет цифрам клиента, но отбрасывает заведомо бессмысленные записи
func validateResult(result *model.GameResult) error {
	if result.UserID <= 0 {
		return fmt.Errorf("%w: user id must be positive", ErrInvalidResult)
	}
	if result.InitialValue <= 0 {
		return fmt.Errorf("%w: initial value must be positive", ErrInvalidResult)
	}
	if result.RoundsPlayed <= 0 {
		return fmt.Errorf("%w: rounds played must be positive", ErrInvalidResult)
	}
	return nil
}
