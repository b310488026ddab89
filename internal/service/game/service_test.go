package game

import (
	"math/rand"
	"testing"

	servModel "investsim_backend/internal/service/game/model"
)

type testCfg struct{}

func (testCfg) InitialValue() float64 { return 100_000_000 }
func (testCfg) TargetValue() float64  { return 200_000_000 }
func (testCfg) TotalRounds() int      { return 10 }
func (testCfg) LeaderboardLimit() int { return 10 }

func newTestService(seed int64) *serv {
	return &serv{
		cfg: testCfg{},
		rnd: rand.New(rand.NewSource(seed)),
	}
}

func TestCatalogSanity(t *testing.T) {
	if len(servModel.Catalog) != 8 {
		t.Fatalf("expected 8 investment types, got %d", len(servModel.Catalog))
	}
	for name, inv := range servModel.Catalog {
		if inv.Name != name {
			t.Errorf("catalog key %q does not match name %q", name, inv.Name)
		}
		if inv.MinReturn > inv.MaxReturn {
			t.Errorf("%s: minReturn %.1f > maxReturn %.1f", name, inv.MinReturn, inv.MaxReturn)
		}
	}
}

func TestMarketEventsReferenceKnownInvestments(t *testing.T) {
	if len(servModel.MarketEvents) != 12 {
		t.Fatalf("expected 12 market events, got %d", len(servModel.MarketEvents))
	}
	for _, ev := range servModel.MarketEvents {
		if len(ev.Impacts) == 0 {
			t.Errorf("event %q has no impacts", ev.Title)
		}
		for name := range ev.Impacts {
			if _, ok := servModel.Catalog[name]; !ok {
				t.Errorf("event %q impacts unknown investment %q", ev.Title, name)
			}
		}
	}
}
