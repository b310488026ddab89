package model

import "investsim_backend/internal/model"

// Catalog Каталог из 8 инвестиционных инструментов.
// Заполняется литералом один раз, в рантайме не меняется
var Catalog = map[string]model.InvestmentType{
	"Stocks": {
		Name:        "Stocks",
		Risk:        model.RiskHigh,
		MinReturn:   -20,
		MaxReturn:   60,
		Description: "Equity investments with high volatility",
	},
	"Bonds": {
		Name:        "Bonds",
		Risk:        model.RiskMedium,
		MinReturn:   -2,
		MaxReturn:   8,
		Description: "Fixed income securities",
	},
	"Crypto": {
		Name:        "Crypto",
		Risk:        model.RiskVeryHigh,
		MinReturn:   -50,
		MaxReturn:   120,
		Description: "Digital currency investments",
	},
	"Savings": {
		Name:        "Savings",
		Risk:        model.RiskLow,
		MinReturn:   1,
		MaxReturn:   2,
		Description: "Safe low-yield deposits",
	},
	"Mortgages": {
		Name:        "Mortgages",
		Risk:        model.RiskMedium,
		MinReturn:   -5,
		MaxReturn:   20,
		Description: "Real estate backed securities",
	},
	"Payment Plans": {
		Name:        "Payment Plans",
		Risk:        model.RiskHigh,
		MinReturn:   -15,
		MaxReturn:   35,
		Description: "Consumer debt investments",
	},
	"Student Loans": {
		Name:        "Student Loans",
		Risk:        model.RiskMedium,
		MinReturn:   -8,
		MaxReturn:   12,
		Description: "Educational debt securities",
	},
	"Lines of Credit": {
		Name:        "Lines of Credit",
		Risk:        model.RiskHigh,
		MinReturn:   -12,
		MaxReturn:   28,
		Description: "Revolving credit investments",
	},
}
