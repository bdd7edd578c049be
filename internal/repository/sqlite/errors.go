package sqlite

import "github.com/msomdec/sales-dao/internal/domain"

func persistenceErr(op string, err error) error {
	return &domain.PersistenceError{Op: op, Err: err}
}

// requireOneRow turns a zero affected-row count into a PersistenceError
// carrying onZero.
func requireOneRow(op string, affected int64, onZero error) error {
	if affected == 0 {
		return persistenceErr(op, onZero)
	}
	return nil
}
