package result

import (
	"investsim_backend/internal/config"
	"investsim_backend/internal/repository"
	"investsim_backend/internal/service"

	"github.com/avito-tech/go-transaction-manager/trm/v2"
)

type serv struct {
	cfg        config.GameConfig
	userRepo   repository.UserRepository
	resultRepo repository.GameResultRepository
	txManager  trm.Manager
}

// NewResultService Создать сервис сохранения результатов и таблицы лидеров
func NewResultService(
	cfg config.GameConfig,
	userRepo repository.UserRepository,
	resultRepo repository.GameResultRepository,
	txManager trm.Manager,
) service.ResultService {
	return &serv{
		cfg:        cfg,
		userRepo:   userRepo,
		resultRepo: resultRepo,
		txManager:  txManager,
	}
}
