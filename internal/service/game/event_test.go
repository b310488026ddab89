package game

import (
	"testing"

	servModel "investsim_backend/internal/service/game/model"
)

func TestDrawMarketEventCoversWholeTable(t *testing.T) {
	s := newTestService(99)

	seen := make(map[string]bool)
	for i := 0; i < 1000; i++ {
		ev := s.DrawMarketEvent()
		seen[ev.Title] = true
	}

	if len(seen) != len(servModel.MarketEvents) {
		t.Errorf("expected all %d events drawn over 1000 draws, got %d", len(servModel.MarketEvents), len(seen))
	}
}

func TestDrawMarketEventDeterministicWithSeed(t *testing.T) {
	first := newTestService(5).DrawMarketEvent()
	second := newTestService(5).DrawMarketEvent()

	if first.Title != second.Title {
		t.Errorf("same seed drew different events: %q vs %q", first.Title, second.Title)
	}
}
