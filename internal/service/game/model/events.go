package model

import "investsim_backend/internal/model"

// MarketEvents Таблица рыночных событий. Событие выбирается равновероятно раз в раунд
var MarketEvents = []model.MarketEvent{
	{
		Title:       "Crypto Hack",
		Description: "A major exchange is hacked. Crypto investments tank.",
		Impacts:     map[string]float64{"Crypto": -30},
	},
	{
		Title:       "Tech Rally",
		Description: "Strong earnings push tech stocks up.",
		Impacts:     map[string]float64{"Stocks": 25},
	},
	{
		Title:       "Housing Boom",
		Description: "Real estate values jump.",
		Impacts:     map[string]float64{"Mortgages": 15},
	},
	{
		Title:       "Regulatory Crackdown",
		Description: "New laws shake up risky lending practices.",
		Impacts:     map[string]float64{"Payment Plans": -10, "Crypto": -10},
	},
	{
		Title:       "Stimulus Package",
		Description: "The government issues a surprise stimulus.",
		Impacts: map[string]float64{
			"Stocks": 5, "Bonds": 5, "Crypto": 5, "Savings": 5,
			"Mortgages": 5, "Payment Plans": 5, "Student Loans": 5, "Lines of Credit": 5,
		},
	},
	{
		Title:       "Interest Rate Hike",
		Description: "Central bank raises rates to fight inflation.",
		Impacts:     map[string]float64{"Bonds": 12, "Savings": 8, "Stocks": -8},
	},
	{
		Title:       "Market Volatility",
		Description: "Uncertainty causes widespread market swings.",
		Impacts:     map[string]float64{"Stocks": -15, "Crypto": -20, "Bonds": 6},
	},
	{
		Title:       "Banking Crisis",
		Description: "Major bank failures shake confidence.",
		Impacts:     map[string]float64{"Savings": -5, "Bonds": -12, "Payment Plans": -20},
	},
	{
		Title:       "Innovation Breakthrough",
		Description: "New technology promises massive returns.",
		Impacts:     map[string]float64{"Stocks": 35, "Crypto": 40},
	},
	{
		Title:       "Economic Recession",
		Description: "GDP contracts as consumer spending plummets.",
		Impacts: map[string]float64{
			"Stocks": -25, "Bonds": 10, "Mortgages": -15,
			"Payment Plans": -25, "Student Loans": -20, "Lines of Credit": -30,
		},
	},
	{
		Title:       "Education Sector Boom",
		Description: "Government increases education funding and loan programs.",
		Impacts:     map[string]float64{"Student Loans": 20, "Bonds": 5, "Stocks": 3},
	},
	{
		Title:       "Credit Market Expansion",
		Description: "Banks ease lending standards, credit becomes more accessible.",
		Impacts:     map[string]float64{"Lines of Credit": 18, "Payment Plans": 12, "Student Loans": 8, "Mortgages": 10},
	},
}
