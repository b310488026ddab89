package game

import (
	"investsim_backend/internal/model"
	servModel "investsim_backend/internal/service/game/model"
)

// DrawMarketEvent Равновероятный выбор рыночного события из таблицы
func (s *serv) DrawMarketEvent() model.MarketEvent {
	return servModel.MarketEvents[s.rnd.Intn(len(servModel.MarketEvents))]
}
