package game

import (
	"investsim_backend/internal/config"
	"investsim_backend/internal/service"
	"math/rand"
)

const (
	// Количество инвестиционных слотов в раунде
	slotCount = 4
)

// Rand Источник случайности движка.
// Вынесен в интерфейс, чтобы в тестах подставлять rand.New с фиксированным зерном
type Rand interface {
	Float64() float64
	Intn(n int) int
}

type globalRand struct{}

func (globalRand) Float64() float64 { return rand.Float64() }
func (globalRand) Intn(n int) int   { return rand.Intn(n) }

// DefaultRand Источник на глобальном math/rand для продакшена
func DefaultRand() Rand {
	return globalRand{}
}

type serv struct {
	cfg config.GameConfig
	rnd Rand
}

// NewGameService Создать движок инвестиционной игры
func NewGameService(cfg config.GameConfig, rnd Rand) service.GameService {
	return &serv{
		cfg: cfg,
		rnd: rnd,
	}
}
