package order

import (
	"fmt"

	"pizzeria/internal/pkg/errs"
)

// Stage represents the pipeline step an order record currently occupies.
// It implements a state machine with defined transitions to ensure orders
// follow the kitchen workflow.
//
// Stage transitions:
//
//	Kitchen ──> Ready ──> Delivered
//
// Delivered is terminal: delivered records are removed from storage rather
// than archived (a known product gap, preserved deliberately).
type Stage int

const (
	// StageUnknown represents an invalid or undefined stage.
	// This value (0) helps catch uninitialized Stage values.
	StageUnknown Stage = iota

	// StageKitchen is the initial stage when an order is submitted.
	// Orders in this stage are being prepared.
	StageKitchen

	// StageReady indicates the kitchen finished the order and it is
	// waiting to be served or delivered.
	StageReady

	// StageDelivered indicates the order left the pipeline. This is a
	// terminal state; a delivered record exists only in memory on its way
	// out of the store.
	StageDelivered
)

func getStageStrings() map[Stage]string {
	return map[Stage]string{
		StageUnknown:   "UNKNOWN",
		StageKitchen:   "KITCHEN",
		StageReady:     "READY",
		StageDelivered: "DELIVERED",
	}
}

func getValidStageStrings() map[Stage]string {
	//nolint:exhaustive // StageUnknown is intentionally excluded as it's invalid
	return map[Stage]string{
		StageKitchen:   "KITCHEN",
		StageReady:     "READY",
		StageDelivered: "DELIVERED",
	}
}

// StageFromString parses a stage name such as "KITCHEN" back into a Stage.
// Used when reconstructing records from persistence.
func StageFromString(s string) (Stage, error) {
	for stage, name := range getValidStageStrings() {
		if name == s {
			return stage, nil
		}
	}
	return StageUnknown, errs.NewValueIsInvalidErrorWithCause(
		"stage",
		fmt.Errorf("%q is not a valid stage", s),
	)
}

// Validate checks if the Stage value is valid.
// Valid stages are: Kitchen, Ready, Delivered.
func (s Stage) Validate() error {
	if _, ok := getValidStageStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause(
			"stage",
			fmt.Errorf("%d is not a valid stage", s),
		)
	}
	return nil
}

// String returns the wire name of the stage ("KITCHEN", "READY",
// "DELIVERED"), or "UNKNOWN" for invalid values. Implements fmt.Stringer
// and is safe to call on any Stage value.
func (s Stage) String() string {
	if str, ok := getStageStrings()[s]; ok {
		return str
	}
	return "UNKNOWN"
}

// ValidateMarkReady checks if the stage allows the kitchen-done transition
// without performing it. Only Kitchen orders can be marked ready.
func (s Stage) ValidateMarkReady() error {
	if s != StageKitchen {
		return errs.NewValueIsInvalidErrorWithCause(
			"stage",
			fmt.Errorf("%s is not a valid stage to mark ready", s.String()),
		)
	}
	return nil
}

// ValidateCanHaveReadyAt validates consistency between the stage and the
// presence of a readyAt timestamp: orders still in the kitchen must not
// carry one, orders past the kitchen must.
func (s Stage) ValidateCanHaveReadyAt(hasReadyAt bool) error {
	if hasReadyAt && s == StageKitchen {
		return errs.NewValueIsInvalidErrorWithCause(
			"stage",
			fmt.Errorf("%s is not a valid stage to have a readyAt timestamp", s.String()),
		)
	}

	if !hasReadyAt && (s == StageReady || s == StageDelivered) {
		return errs.NewValueIsInvalidErrorWithCause(
			"stage",
			fmt.Errorf("%s is not a valid stage to have no readyAt timestamp", s.String()),
		)
	}

	return nil
}

// MarkReady transitions the stage to Ready.
//
// Valid transitions:
//   - Kitchen -> Ready
//
// Returns:
//   - (Ready, nil) on valid transition
//   - (0, error) if the transition is not allowed from the current stage
func (s Stage) MarkReady() (Stage, error) {
	if err := s.ValidateMarkReady(); err != nil {
		return 0, err
	}

	return StageReady, nil
}

// Complete transitions the stage to Delivered.
//
// Valid transitions:
//   - Ready -> Delivered
//
// Returns:
//   - (Delivered, nil) on valid transition
//   - (0, error) if the transition is not allowed from the current stage
func (s Stage) Complete() (Stage, error) {
	if s != StageReady {
		return 0, errs.NewValueIsInvalidErrorWithCause(
			"stage",
			fmt.Errorf("%s is not a valid stage to complete", s.String()),
		)
	}

	return StageDelivered, nil
}
