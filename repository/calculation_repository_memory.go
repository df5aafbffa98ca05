package repository

import (
	"sync"

	"fincalc/domain"
)

// CalculationRepositoryMemory is an in-memory implementation of
// CalculationRepository.
type CalculationRepositoryMemory struct {
	mu      sync.Mutex
	records []domain.CalculationRecord
}

// NewCalculationRepositoryMemory creates a new in-memory calculation repository.
func NewCalculationRepositoryMemory() *CalculationRepositoryMemory {
	return &CalculationRepositoryMemory{
		records: []domain.CalculationRecord{},
	}
}

// Save stores the calculation record in memory.
func (r *CalculationRepositoryMemory) Save(record domain.CalculationRecord) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.records = append(r.records, record)
	return nil
}

// All returns a copy of every stored record.
func (r *CalculationRepositoryMemory) All() []domain.CalculationRecord {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]domain.CalculationRecord, len(r.records))
	copy(out, r.records)
	return out
}
