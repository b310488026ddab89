package game

import (
	"math"
	"testing"

	"investsim_backend/internal/model"
	servModel "investsim_backend/internal/service/game/model"
)

func TestCalculateReturnsAmountInvariants(t *testing.T) {
	s := newTestService(42)

	res, err := s.CalculateReturns(
		[]string{"Stocks", "Bonds", "Crypto", "Savings"},
		[]int{25, 25, 25, 25},
		100_000_000,
		1,
		nil,
	)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(res.Results) != 4 {
		t.Fatalf("expected 4 results, got %d", len(res.Results))
	}

	var sum float64
	for _, r := range res.Results {
		if r.InvestmentAmount != 25_000_000 {
			t.Errorf("%s: expected investment amount 25000000, got %f", r.Investment.Name, r.InvestmentAmount)
		}
		if r.FinalAmount != r.InvestmentAmount+r.ReturnAmount {
			t.Errorf("%s: finalAmount %f != invested %f + return %f",
				r.Investment.Name, r.FinalAmount, r.InvestmentAmount, r.ReturnAmount)
		}
		sum += r.ReturnAmount
	}
	if math.Abs(res.TotalReturn-sum) > 1e-6 {
		t.Errorf("totalReturn %f != sum of returns %f", res.TotalReturn, sum)
	}
}

func TestCalculateReturnsDeterministicWithSeed(t *testing.T) {
	investments := []string{"Stocks", "Bonds", "Crypto", "Savings"}
	allocations := []int{25, 25, 25, 25}

	first, err := newTestService(7).CalculateReturns(investments, allocations, 100_000_000, 3, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	second, err := newTestService(7).CalculateReturns(investments, allocations, 100_000_000, 3, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	for i := range first.Results {
		if first.Results[i].ReturnRate != second.Results[i].ReturnRate {
			t.Fatalf("same seed produced different rates: %f vs %f",
				first.Results[i].ReturnRate, second.Results[i].ReturnRate)
		}
	}
	if first.TotalReturn != second.TotalReturn {
		t.Fatalf("same seed produced different totals: %f vs %f", first.TotalReturn, second.TotalReturn)
	}
}

// У Low/Medium инструментов нет ни штрафа, ни джиттера:
// без события ставка обязана лежать в диапазоне каталога
func TestCalculateReturnsSafeTierWithinCatalogRange(t *testing.T) {
	for seed := int64(0); seed < 50; seed++ {
		s := newTestService(seed)
		res, err := s.CalculateReturns(
			[]string{"Savings", "Bonds", "Mortgages", "Student Loans"},
			[]int{25, 25, 25, 25},
			100_000_000,
			5,
			nil,
		)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		for _, r := range res.Results {
			inv := servModel.Catalog[r.Investment.Name]
			if r.ReturnRate < inv.MinReturn || r.ReturnRate > inv.MaxReturn {
				t.Fatalf("seed %d: %s rate %f outside [%f, %f]",
					seed, inv.Name, r.ReturnRate, inv.MinReturn, inv.MaxReturn)
			}
		}
	}
}

func TestEventAmplificationByRound(t *testing.T) {
	event := &model.MarketEvent{
		Title:   "Test Shock",
		Impacts: map[string]float64{"Savings": 25},
	}

	// Раунд 1: влияние x1.0, ставка в [1+25, 2+25]
	res, err := newTestService(11).CalculateReturns(
		[]string{"Savings", "Bonds", "Mortgages", "Student Loans"},
		[]int{25, 25, 25, 25},
		100_000_000,
		1,
		event,
	)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	rate := res.Results[0].ReturnRate
	if rate < 26 || rate > 27 {
		t.Errorf("round 1: expected savings rate in [26, 27], got %f", rate)
	}

	// Раунд 5: влияние x1.8, ставка в [1+45, 2+45]
	res, err = newTestService(11).CalculateReturns(
		[]string{"Savings", "Bonds", "Mortgages", "Student Loans"},
		[]int{25, 25, 25, 25},
		100_000_000,
		5,
		event,
	)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	rate = res.Results[0].ReturnRate
	if rate < 46 || rate > 47 {
		t.Errorf("round 5: expected savings rate in [46, 47], got %f", rate)
	}
}

func TestEventIgnoredForUnaffectedInvestment(t *testing.T) {
	event := &model.MarketEvent{
		Title:   "Crypto Hack",
		Impacts: map[string]float64{"Crypto": -30},
	}

	res, err := newTestService(13).CalculateReturns(
		[]string{"Savings", "Bonds", "Mortgages", "Student Loans"},
		[]int{25, 25, 25, 25},
		100_000_000,
		1,
		event,
	)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for _, r := range res.Results {
		inv := servModel.Catalog[r.Investment.Name]
		if r.ReturnRate < inv.MinReturn || r.ReturnRate > inv.MaxReturn {
			t.Errorf("%s should be unaffected by the event, rate %f outside [%f, %f]",
				inv.Name, r.ReturnRate, inv.MinReturn, inv.MaxReturn)
		}
	}
}

func TestConcentrationPenaltyThresholds(t *testing.T) {
	crypto := servModel.Catalog["Crypto"]
	stocks := servModel.Catalog["Stocks"]
	bonds := servModel.Catalog["Bonds"]

	// Ровно на пороге штрафа нет
	p := concentrationPenalties([]model.InvestmentType{crypto}, []int{30}, 1)
	if _, ok := p["Crypto"]; ok {
		t.Errorf("expected no penalty for very-high risk at exactly 30%%, got %v", p)
	}
	p = concentrationPenalties([]model.InvestmentType{stocks}, []int{50}, 1)
	if _, ok := p["Stocks"]; ok {
		t.Errorf("expected no penalty for high risk at exactly 50%%, got %v", p)
	}

	// VeryHigh 40% на первом раунде: ((40-30)/10)^1.5 * 5 = 5
	p = concentrationPenalties([]model.InvestmentType{crypto}, []int{40}, 1)
	if math.Abs(p["Crypto"]-5) > 1e-9 {
		t.Errorf("expected penalty 5, got %f", p["Crypto"])
	}

	// High 65% на первом раунде: ((65-50)/15)^1.3 * 3 = 3
	p = concentrationPenalties([]model.InvestmentType{stocks}, []int{65}, 1)
	if math.Abs(p["Stocks"]-3) > 1e-9 {
		t.Errorf("expected penalty 3, got %f", p["Stocks"])
	}

	// Множитель раунда: VeryHigh 40% на раунде 5 = 5 * (1 + 4*0.3) = 11
	p = concentrationPenalties([]model.InvestmentType{crypto}, []int{40}, 5)
	if math.Abs(p["Crypto"]-11) > 1e-9 {
		t.Errorf("expected penalty 11 at round 5, got %f", p["Crypto"])
	}

	// Medium риск не штрафуется никогда
	p = concentrationPenalties([]model.InvestmentType{bonds}, []int{100}, 10)
	if len(p) != 0 {
		t.Errorf("expected no penalty for medium risk, got %v", p)
	}
}

func TestCalculateReturnsUnknownInvestment(t *testing.T) {
	s := newTestService(1)

	_, err := s.CalculateReturns(
		[]string{"Tulips", "Bonds", "Crypto", "Savings"},
		[]int{25, 25, 25, 25},
		100_000_000,
		1,
		nil,
	)
	if err == nil {
		t.Fatal("expected error for unknown investment type")
	}
}
