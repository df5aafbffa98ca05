package repository

import "fincalc/domain"

type CalculationRepository interface {
	Save(record domain.CalculationRecord) error
}
