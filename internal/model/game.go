package model

// RiskTier Уровень риска инвестиционного инструмента
type RiskTier string

const (
	RiskLow      RiskTier = "Low"
	RiskMedium   RiskTier = "Medium"
	RiskHigh     RiskTier = "High"
	RiskVeryHigh RiskTier = "Very High"
)

// InvestmentType Инструмент из каталога (задаётся один раз при старте, не мутируется)
type InvestmentType struct {
	Name        string
	Risk        RiskTier
	MinReturn   float64 // Минимальная доходность, %
	MaxReturn   float64 // Максимальная доходность, %
	Description string
}

// MarketEvent Рыночное событие. Impacts хранит дельту доходности (%)
// только для затронутых инструментов, отсутствие ключа = нулевое влияние
type MarketEvent struct {
	Title       string
	Description string
	Impacts     map[string]float64
}

// RestrictionSet Ограничения раунда: потолки аллокаций по имени инструмента
// и минимальное количество разных инвестиций
type RestrictionSet struct {
	MaxAllocation      map[string]int
	MinDiversification int
	Description        string
}

// ValidationResult Результат проверки аллокаций. Не ошибка, а обычное возвращаемое значение
type ValidationResult struct {
	IsValid bool
	Errors  []string
}

// InvestmentResult Результат одного слота за раунд
type InvestmentResult struct {
	Investment       InvestmentType
	Allocation       int     // Процент портфеля
	InvestmentAmount float64 // Вложенная сумма
	ReturnRate       float64 // Итоговая ставка доходности, % (после штрафов и события)
	ReturnAmount     float64 // Доход (может быть отрицательным)
	FinalAmount      float64 // Вложено + доход
}

// CalcResult Результат расчёта раунда по четырём слотам
type CalcResult struct {
	Results     []InvestmentResult
	TotalReturn float64
}

// GameStatus Состояние партии
type GameStatus string

const (
	StatusInProgress GameStatus = "in_progress"
	StatusWon        GameStatus = "won"       // Цель достигнута (возможно досрочно)
	StatusCompleted  GameStatus = "completed" // 10 раундов сыграно, цель не достигнута
)

// GameState Состояние партии. Мутируется только переходом AdvanceRound
type GameState struct {
	CurrentRound   int
	PortfolioValue float64
	Status         GameStatus
}
