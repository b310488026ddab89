package game

type RestrictionsResponse struct {
	Round              int            `json:"round"`               // Раунд, к которому относятся ограничения
	MaxAllocation      map[string]int `json:"max_allocation"`      // Потолки по имени инструмента, %
	MinDiversification int            `json:"min_diversification"` // Минимум разных инвестиций
	Description        string         `json:"description"`         // Описание ограничений раунда
}

type ValidateRequest struct {
	Investments []string `json:"investments"` // Имена инструментов по слотам (ровно 4)
	Allocations []int    `json:"allocations"` // Доли по слотам, %
	Round       int      `json:"round"`       // Текущий раунд
}

type ValidateResponse struct {
	IsValid bool     `json:"is_valid"`
	Errors  []string `json:"errors"`
}

type MarketEvent struct {
	Title       string             `json:"title"`
	Description string             `json:"description"`
	Impacts     map[string]float64 `json:"impacts"` // Дельта доходности по имени инструмента, %
}

type CalculateRequest struct {
	Investments    []string     `json:"investments"`            // Имена инструментов по слотам
	Allocations    []int        `json:"allocations"`            // Доли по слотам, %
	PortfolioValue float64      `json:"portfolio_value"`        // Текущая стоимость портфеля
	Round          int          `json:"round"`                  // Текущий раунд
	MarketEvent    *MarketEvent `json:"market_event,omitempty"` // Выпавшее событие (может отсутствовать)
}

type InvestmentResult struct {
	Type             string  `json:"type"`              // Имя инструмента
	Risk             string  `json:"risk"`              // Уровень риска
	Allocation       int     `json:"allocation"`        // Доля, %
	InvestmentAmount float64 `json:"investment_amount"` // Вложено
	ReturnRate       float64 `json:"return_rate"`       // Итоговая ставка, %
	ReturnAmount     float64 `json:"return_amount"`     // Доход
	FinalAmount      float64 `json:"final_amount"`      // Вложено + доход
}

type CalculateResponse struct {
	Results     []InvestmentResult `json:"results"`
	TotalReturn float64            `json:"total_return"`
}

type AdvanceRequest struct {
	CurrentRound   int     `json:"current_round"`
	PortfolioValue float64 `json:"portfolio_value"`
	TotalReturn    float64 `json:"total_return"` // Итог только что сыгранного раунда
}

type GameStateResponse struct {
	CurrentRound   int     `json:"current_round"`
	PortfolioValue float64 `json:"portfolio_value"`
	Status         string  `json:"status"` // in_progress | won | completed
}
