package orders

import (
	"context"

	"go.uber.org/zap"
)

// Store persists accepted orders. Callers must treat Save as fallible even
// when the implementation can never fail, so a real backend can be swapped in
// without changing the handler.
type Store interface {
	Save(ctx context.Context, rec Record) error
}

// SimulatedStore stands in for the eventual database write and always
// succeeds.
type SimulatedStore struct {
	log *zap.Logger
}

// NewSimulatedStore returns a SimulatedStore logging through log.
func NewSimulatedStore(log *zap.Logger) *SimulatedStore {
	if log == nil {
		log = zap.NewNop()
	}
	return &SimulatedStore{log: log}
}

// Save pretends to write the order and reports success.
func (s *SimulatedStore) Save(ctx context.Context, rec Record) error {
	s.log.Info("simulating db save", zap.String("order_id", rec.OrderID))
	return nil
}
