package game

import (
	"investsim_backend/internal/model"
	servModel "investsim_backend/internal/service/game/model"
)

// Restrictions возвращает ограничения аллокаций для раунда.
// Раунды вне 1..10 получают самый строгий набор (раунд 10)
func (s *serv) Restrictions(round int) model.RestrictionSet {
	if r, ok := servModel.Restrictions[round]; ok {
		return r
	}
	return servModel.Restrictions[s.cfg.TotalRounds()]
}
