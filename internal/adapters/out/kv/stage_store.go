package kv

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"pizzeria/internal/core/domain/model/kernel"
	"pizzeria/internal/core/domain/model/order"
	"pizzeria/internal/core/ports"
	"pizzeria/internal/pkg/errs"
)

// persistedStages are the stages the store keeps collections for. Delivered
// orders are removed outright, so no key exists for them.
var persistedStages = []order.Stage{order.StageKitchen, order.StageReady}

// StageStore persists stage-partitioned order collections on a whole-value
// key-value backing. The mutex serializes read-modify-write cycles within
// this process; the backing itself offers no transactions, so a crash
// mid-move can leave a record in two stages, never in none.
type StageStore struct {
	store ports.KeyValueStore
	mu    sync.Mutex
}

// NewStageStore creates a stage store over the given key-value backing.
func NewStageStore(store ports.KeyValueStore) *StageStore {
	return &StageStore{store: store}
}

// List retrieves all orders in the given stage, oldest first.
func (s *StageStore) List(ctx context.Context, stage order.Stage) ([]*order.Order, error) {
	if err := validatePersistedStage(stage); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	dtos, err := s.load(ctx, stage)
	if err != nil {
		return nil, err
	}

	orders := make([]*order.Order, 0, len(dtos))
	for _, dto := range dtos {
		o, convErr := toDomain(dto, stage)
		if convErr != nil {
			return nil, errs.NewPersistenceFailedErrorWithCause("decode order "+dto.ID, convErr)
		}
		orders = append(orders, o)
	}

	return orders, nil
}

// Get retrieves a single order by id from the given stage.
func (s *StageStore) Get(ctx context.Context, stage order.Stage, id kernel.UUID) (*order.Order, error) {
	if err := validatePersistedStage(stage); err != nil {
		return nil, err
	}
	if err := id.Validate(); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	dtos, err := s.load(ctx, stage)
	if err != nil {
		return nil, err
	}

	for _, dto := range dtos {
		if dto.ID == id.String() {
			o, convErr := toDomain(dto, stage)
			if convErr != nil {
				return nil, errs.NewPersistenceFailedErrorWithCause("decode order "+dto.ID, convErr)
			}
			return o, nil
		}
	}

	return nil, errs.NewObjectNotFoundError("order", id.String())
}

// Insert appends an order to the end of the stage's collection. The id must
// not be present in any stage.
func (s *StageStore) Insert(ctx context.Context, stage order.Stage, aggregate *order.Order) error {
	if err := validatePersistedStage(stage); err != nil {
		return err
	}
	if err := aggregate.Validate(); err != nil {
		return err
	}

	// The record's stage is implied by the key it is stored under, so the
	// aggregate must already be in the destination stage.
	if aggregate.Stage() != stage {
		return errs.NewValueIsInvalidErrorWithCause(
			"stage",
			fmt.Errorf("order is in stage %s, cannot insert into %s", aggregate.Stage(), stage),
		)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	id := aggregate.ID().String()
	for _, candidate := range persistedStages {
		dtos, err := s.load(ctx, candidate)
		if err != nil {
			return err
		}
		for _, dto := range dtos {
			if dto.ID == id {
				return errs.NewObjectAlreadyExistsError("order", id)
			}
		}
	}

	dtos, err := s.load(ctx, stage)
	if err != nil {
		return err
	}

	return s.save(ctx, stage, append(dtos, fromDomain(aggregate)))
}

// RemoveByID deletes the order with the given id from the stage.
func (s *StageStore) RemoveByID(ctx context.Context, stage order.Stage, id kernel.UUID) error {
	if err := validatePersistedStage(stage); err != nil {
		return err
	}
	if err := id.Validate(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	dtos, err := s.load(ctx, stage)
	if err != nil {
		return err
	}

	remaining := make([]orderDTO, 0, len(dtos))
	found := false
	for _, dto := range dtos {
		if dto.ID == id.String() {
			found = true
			continue
		}
		remaining = append(remaining, dto)
	}

	if !found {
		return errs.NewObjectNotFoundError("order", id.String())
	}

	return s.save(ctx, stage, remaining)
}

// Move transfers the aggregate between stages. The destination collection
// is persisted before the source: a crash between the two writes leaves the
// record in both stages, which staff can resolve, rather than in neither.
func (s *StageStore) Move(ctx context.Context, from order.Stage, to order.Stage, aggregate *order.Order) error {
	if err := validatePersistedStage(from); err != nil {
		return err
	}
	if err := validatePersistedStage(to); err != nil {
		return err
	}
	if err := aggregate.Validate(); err != nil {
		return err
	}
	if aggregate.Stage() != to {
		return errs.NewValueIsInvalidErrorWithCause(
			"stage",
			fmt.Errorf("order is in stage %s, cannot move into %s", aggregate.Stage(), to),
		)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	id := aggregate.ID().String()

	source, err := s.load(ctx, from)
	if err != nil {
		return err
	}
	remaining := make([]orderDTO, 0, len(source))
	found := false
	for _, dto := range source {
		if dto.ID == id {
			found = true
			continue
		}
		remaining = append(remaining, dto)
	}
	if !found {
		return errs.NewObjectNotFoundError("order", id)
	}

	destination, err := s.load(ctx, to)
	if err != nil {
		return err
	}

	if err := s.save(ctx, to, append(destination, fromDomain(aggregate))); err != nil {
		return err
	}

	return s.save(ctx, from, remaining)
}

func (s *StageStore) load(ctx context.Context, stage order.Stage) ([]orderDTO, error) {
	raw, ok, err := s.store.Get(ctx, stageKey(stage))
	if err != nil {
		return nil, errs.NewPersistenceFailedErrorWithCause("read stage "+stage.String(), err)
	}
	if !ok || raw == "" {
		return nil, nil
	}

	var dtos []orderDTO
	if err := json.Unmarshal([]byte(raw), &dtos); err != nil {
		return nil, errs.NewPersistenceFailedErrorWithCause("decode stage "+stage.String(), err)
	}

	return dtos, nil
}

func (s *StageStore) save(ctx context.Context, stage order.Stage, dtos []orderDTO) error {
	if dtos == nil {
		dtos = []orderDTO{}
	}

	raw, err := json.Marshal(dtos)
	if err != nil {
		return errs.NewPersistenceFailedErrorWithCause("encode stage "+stage.String(), err)
	}

	if err := s.store.Set(ctx, stageKey(stage), string(raw)); err != nil {
		return errs.NewPersistenceFailedErrorWithCause("write stage "+stage.String(), err)
	}

	return nil
}

func stageKey(stage order.Stage) string {
	return "orders:" + stage.String()
}

func validatePersistedStage(stage order.Stage) error {
	for _, candidate := range persistedStages {
		if stage == candidate {
			return nil
		}
	}

	return errs.NewValueIsInvalidError("stage")
}
