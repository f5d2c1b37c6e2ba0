package order

import (
	"errors"
	"fmt"

	"pizzeria/internal/pkg/errs"
	"pizzeria/internal/pkg/guard"
)

// ErrAddressIsNotConstructed is returned when an Address instance was not
// created through the NewAddress factory method.
var ErrAddressIsNotConstructed = errors.New("Address must be created via NewAddress constructor")

// DeliveryMode states how a submitted order is fulfilled: served at a table
// in the restaurant or delivered to a street address.
type DeliveryMode int

const (
	// ModeUnknown represents an invalid or undefined delivery mode.
	ModeUnknown DeliveryMode = iota

	// ModeTable means the order is served at a numbered table.
	ModeTable

	// ModeDelivery means the order is delivered to a street address.
	ModeDelivery
)

func getDeliveryModeStrings() map[DeliveryMode]string {
	return map[DeliveryMode]string{
		ModeTable:    "TABLE",
		ModeDelivery: "DELIVERY",
	}
}

// DeliveryModeFromString parses a mode name such as "TABLE" back into a
// DeliveryMode. Used by the HTTP layer and when reconstructing records
// from persistence.
func DeliveryModeFromString(s string) (DeliveryMode, error) {
	for mode, name := range getDeliveryModeStrings() {
		if name == s {
			return mode, nil
		}
	}
	return ModeUnknown, errs.NewValueIsInvalidErrorWithCause(
		"deliveryMode",
		fmt.Errorf("%q is not a valid delivery mode", s),
	)
}

// Validate checks if the DeliveryMode value is valid.
func (m DeliveryMode) Validate() error {
	if _, ok := getDeliveryModeStrings()[m]; !ok {
		return errs.NewValueIsInvalidErrorWithCause(
			"deliveryMode",
			fmt.Errorf("%d is not a valid delivery mode", m),
		)
	}
	return nil
}

// String returns the wire name of the mode ("TABLE" or "DELIVERY"),
// or "UNKNOWN" for invalid values.
func (m DeliveryMode) String() string {
	if str, ok := getDeliveryModeStrings()[m]; ok {
		return str
	}
	return "UNKNOWN"
}

// Address is a value object holding a delivery destination.
// Street, number and neighborhood are required; complement is optional.
type Address struct {
	street       string
	number       string
	neighborhood string
	complement   string

	guard guard.ConstructorGuard
}

// NewAddress creates a validated delivery address.
func NewAddress(street, number, neighborhood, complement string) (Address, error) {
	address := Address{
		complement: complement,
		guard:      guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		address.setStreet(street),
		address.setNumber(number),
		address.setNeighborhood(neighborhood),
	); err != nil {
		return Address{}, err
	}

	return address, nil
}

// Validate ensures the Address was created through NewAddress.
func (a Address) Validate() error {
	return a.guard.Validate(ErrAddressIsNotConstructed)
}

// Street returns the street name.
func (a Address) Street() string {
	return a.street
}

// Number returns the street number.
func (a Address) Number() string {
	return a.number
}

// Neighborhood returns the neighborhood name.
func (a Address) Neighborhood() string {
	return a.neighborhood
}

// Complement returns the optional address complement (apartment, floor, ...).
func (a Address) Complement() string {
	return a.complement
}

// IsEqual compares two addresses field by field.
func (a Address) IsEqual(other Address) bool {
	return a.street == other.street &&
		a.number == other.number &&
		a.neighborhood == other.neighborhood &&
		a.complement == other.complement
}

func (a *Address) setStreet(street string) error {
	if street == "" {
		return errs.NewValueIsRequiredError("street")
	}
	a.street = street
	return nil
}

func (a *Address) setNumber(number string) error {
	if number == "" {
		return errs.NewValueIsRequiredError("number")
	}
	a.number = number
	return nil
}

func (a *Address) setNeighborhood(neighborhood string) error {
	if neighborhood == "" {
		return errs.NewValueIsRequiredError("neighborhood")
	}
	a.neighborhood = neighborhood
	return nil
}
