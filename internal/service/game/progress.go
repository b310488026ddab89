package game

import (
	"investsim_backend/internal/model"
)

// NewGameState Начальное состояние партии: первый раунд, стартовый портфель
func (s *serv) NewGameState() model.GameState {
	return model.GameState{
		CurrentRound:   1,
		PortfolioValue: s.cfg.InitialValue(),
		Status:         model.StatusInProgress,
	}
}

// AdvanceRound Применяет итог раунда и переводит партию в следующее состояние.
// Цель достигнута — победа сразу, независимо от номера раунда.
// Иначе после последнего раунда партия завершается с тем значением, что есть
func (s *serv) AdvanceRound(state model.GameState, totalReturn float64) model.GameState {
	state.PortfolioValue += totalReturn

	if state.PortfolioValue >= s.cfg.TargetValue() {
		state.Status = model.StatusWon
		return state
	}

	if state.CurrentRound >= s.cfg.TotalRounds() {
		state.Status = model.StatusCompleted
		return state
	}

	state.CurrentRound++
	return state
}
