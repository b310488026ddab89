package model

import "investsim_backend/internal/model"

// Restrictions Ограничения по раундам. Таблица задана руками, а не формулой:
// между соседними раундами нет гарантированной арифметической зависимости
var Restrictions = map[int]model.RestrictionSet{
	1: {
		MaxAllocation:      map[string]int{},
		MinDiversification: 0,
		Description:        "Tutorial Round - No restrictions, experiment freely!",
	},
	2: {
		MaxAllocation:      map[string]int{},
		MinDiversification: 2,
		Description:        "Learning Phase - Must use at least 2 different investments for basic diversification",
	},
	3: {
		MaxAllocation: map[string]int{
			"Crypto": 60,
		},
		MinDiversification: 2,
		Description:        "First Limit - Crypto capped at 60% to prevent extreme concentration",
	},
	4: {
		MaxAllocation: map[string]int{
			"Crypto":        40,
			"Payment Plans": 50,
		},
		MinDiversification: 3,
		Description:        "Risk Controls - Crypto ≤40%, Payment Plans ≤50%. Must diversify across 3 investments",
	},
	5: {
		MaxAllocation: map[string]int{
			"Crypto":          35,
			"Stocks":          45,
			"Lines of Credit": 40,
		},
		MinDiversification: 3,
		Description:        "Market Volatility - High-risk assets capped: Crypto ≤35%, Stocks ≤45%, Lines of Credit ≤40%",
	},
	6: {
		MaxAllocation: map[string]int{
			"Crypto":          30,
			"Payment Plans":   30,
			"Lines of Credit": 35,
			"Savings":         60,
		},
		MinDiversification: 4,
		Description:        "Stability Focus - Most risky assets ≤30-35%. Savings can go up to 60% for safety. Need 4 investments",
	},
	7: {
		MaxAllocation: map[string]int{
			"Crypto":          25,
			"Stocks":          40,
			"Payment Plans":   25,
			"Lines of Credit": 30,
		},
		MinDiversification: 4,
		Description:        "Tightening Controls - Crypto and Payment Plans ≤25%. Stocks ≤40%. Lines of Credit ≤30%",
	},
	8: {
		MaxAllocation: map[string]int{
			"Crypto":          20,
			"Stocks":          35,
			"Payment Plans":   20,
			"Lines of Credit": 25,
			"Student Loans":   40,
		},
		MinDiversification: 4,
		Description:        "Conservative Approach - Very high risk ≤20%. High risk ≤35%. Student Loans favored at ≤40%",
	},
	9: {
		MaxAllocation: map[string]int{
			"Crypto":          15,
			"Stocks":          30,
			"Payment Plans":   15,
			"Lines of Credit": 20,
			"Bonds":           50,
			"Mortgages":       45,
		},
		MinDiversification: 4,
		Description:        "Near Endgame - Extreme restrictions on volatility. Bonds and Mortgages preferred for stability",
	},
	10: {
		MaxAllocation: map[string]int{
			"Crypto":          10,
			"Stocks":          25,
			"Payment Plans":   10,
			"Lines of Credit": 15,
			"Bonds":           60,
			"Savings":         70,
			"Mortgages":       50,
			"Student Loans":   35,
		},
		MinDiversification: 4,
		Description:        "Final Round - Maximum caution required. Crypto and Payment Plans ≤10%. Favor safe investments",
	},
}
