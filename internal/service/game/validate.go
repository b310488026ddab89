package game

import (
	"fmt"
	"investsim_backend/internal/model"
	servModel "investsim_backend/internal/service/game/model"
)

// Precheck Базовая проверка формы аллокаций до проверки ограничений раунда:
// все 4 слота заняты, все доли положительные, сумма долей ровно 100%
func (s *serv) Precheck(investments []string, allocations []int) *model.ValidationResult {
	var errs []string

	if len(investments) != slotCount || len(allocations) != slotCount {
		errs = append(errs, fmt.Sprintf("All %d investment slots must be filled", slotCount))
		return &model.ValidationResult{IsValid: false, Errors: errs}
	}

	for i, name := range investments {
		if name == "" {
			errs = append(errs, fmt.Sprintf("Investment slot %d is empty", i+1))
		}
	}

	total := 0
	for _, alloc := range allocations {
		if alloc <= 0 {
			errs = append(errs, "All allocations must be greater than 0%")
			break
		}
	}
	for _, alloc := range allocations {
		total += alloc
	}

	if total != 100 {
		errs = append(errs, fmt.Sprintf("Allocations must total 100%% (currently %d%%)", total))
	}

	return &model.ValidationResult{
		IsValid: len(errs) == 0,
		Errors:  errs,
	}
}

// Validate Проверка аллокаций против ограничений раунда.
// Проверка консультативная: вызывающая сторона сама блокирует расчёт при ошибках
func (s *serv) Validate(investments []string, allocations []int, round int) (*model.ValidationResult, error) {
	if len(investments) != len(allocations) {
		return nil, fmt.Errorf("investments and allocations length mismatch: %d != %d", len(investments), len(allocations))
	}

	restrictions := s.Restrictions(round)
	var errs []string

	// Проверяем потолки по каждому слоту
	for i, name := range investments {
		if _, ok := servModel.Catalog[name]; !ok {
			return nil, fmt.Errorf("unknown investment type: %s", name)
		}

		alloc := allocations[i]
		maxAllowed, ok := restrictions.MaxAllocation[name]
		if ok && alloc > maxAllowed {
			errs = append(errs, fmt.Sprintf("%s: %d%% exceeds limit of %d%%", name, alloc, maxAllowed))
		}
	}

	// Проверяем требование диверсификации
	nonZero := 0
	for _, alloc := range allocations {
		if alloc > 0 {
			nonZero++
		}
	}
	if nonZero < restrictions.MinDiversification {
		errs = append(errs, fmt.Sprintf(
			"Must use at least %d different investments (currently using %d)",
			restrictions.MinDiversification, nonZero,
		))
	}

	return &model.ValidationResult{
		IsValid: len(errs) == 0,
		Errors:  errs,
	}, nil
}
