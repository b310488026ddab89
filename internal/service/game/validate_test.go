package game

import (
	"strings"
	"testing"
)

func TestPrecheckAccepts(t *testing.T) {
	s := newTestService(1)

	res := s.Precheck(
		[]string{"Stocks", "Bonds", "Crypto", "Savings"},
		[]int{25, 25, 25, 25},
	)
	if !res.IsValid {
		t.Fatalf("expected valid, got errors: %v", res.Errors)
	}
}

func TestPrecheckRejectsWrongSum(t *testing.T) {
	s := newTestService(1)

	res := s.Precheck(
		[]string{"Stocks", "Bonds", "Crypto", "Savings"},
		[]int{25, 25, 25, 30},
	)
	if res.IsValid {
		t.Fatal("expected invalid for sum 105")
	}
	found := false
	for _, e := range res.Errors {
		if strings.Contains(e, "105") {
			found = true
		}
	}
	if !found {
		t.Errorf("expected error naming current total, got %v", res.Errors)
	}
}

func TestPrecheckRejectsMissingSlots(t *testing.T) {
	s := newTestService(1)

	res := s.Precheck([]string{"Stocks", "Bonds"}, []int{50, 50})
	if res.IsValid {
		t.Fatal("expected invalid for 2 slots")
	}
}

func TestPrecheckRejectsZeroAllocation(t *testing.T) {
	s := newTestService(1)

	res := s.Precheck(
		[]string{"Stocks", "Bonds", "Crypto", "Savings"},
		[]int{50, 50, 0, 0},
	)
	if res.IsValid {
		t.Fatal("expected invalid for zero allocations")
	}
}

func TestValidateRoundOneUnrestricted(t *testing.T) {
	s := newTestService(1)

	res, err := s.Validate(
		[]string{"Stocks", "Bonds", "Crypto", "Savings"},
		[]int{25, 25, 25, 25},
		1,
	)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !res.IsValid || len(res.Errors) != 0 {
		t.Fatalf("expected valid with zero errors, got %v", res.Errors)
	}
}

func TestValidateRoundTenCryptoCap(t *testing.T) {
	s := newTestService(1)

	res, err := s.Validate(
		[]string{"Crypto", "Stocks", "Bonds", "Savings"},
		[]int{15, 25, 30, 30},
		10,
	)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.IsValid {
		t.Fatal("expected invalid: crypto over the round-10 cap")
	}
	if len(res.Errors) != 1 {
		t.Fatalf("expected exactly one error, got %v", res.Errors)
	}
	if res.Errors[0] != "Crypto: 15% exceeds limit of 10%" {
		t.Errorf("unexpected error message: %q", res.Errors[0])
	}
}

func TestValidateDiversificationRequirement(t *testing.T) {
	s := newTestService(1)

	res, err := s.Validate(
		[]string{"Bonds", "Mortgages", "Stocks", "Savings"},
		[]int{60, 40, 0, 0},
		6,
	)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.IsValid {
		t.Fatal("expected invalid: only 2 investments used, round 6 requires 4")
	}
	if len(res.Errors) != 1 {
		t.Fatalf("expected exactly one error, got %v", res.Errors)
	}
	want := "Must use at least 4 different investments (currently using 2)"
	if res.Errors[0] != want {
		t.Errorf("got %q, want %q", res.Errors[0], want)
	}
}

func TestValidateReportsEveryViolatedCap(t *testing.T) {
	s := newTestService(1)

	res, err := s.Validate(
		[]string{"Crypto", "Payment Plans", "Bonds", "Savings"},
		[]int{20, 20, 30, 30},
		10,
	)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(res.Errors) != 2 {
		t.Fatalf("expected 2 cap errors, got %v", res.Errors)
	}
}

func TestValidateUnknownInvestment(t *testing.T) {
	s := newTestService(1)

	_, err := s.Validate(
		[]string{"Tulips", "Bonds", "Crypto", "Savings"},
		[]int{25, 25, 25, 25},
		1,
	)
	if err == nil {
		t.Fatal("expected error for unknown investment type")
	}
}
