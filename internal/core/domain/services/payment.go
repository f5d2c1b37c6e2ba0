package services

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"pizzeria/internal/pkg/errs"
)

// PaymentMethod enumerates the ways a customer can pay at checkout.
type PaymentMethod int

const (
	// MethodUnknown is the zero value and never valid.
	MethodUnknown PaymentMethod = iota
	// MethodCard is payment by credit or debit card.
	MethodCard
	// MethodPix is instant payment; no card details are required.
	MethodPix
)

func getPaymentMethodStrings() map[PaymentMethod]string {
	return map[PaymentMethod]string{
		MethodCard: "CARD",
		MethodPix:  "PIX",
	}
}

// PaymentMethodFromString parses a payment method from its wire representation.
func PaymentMethodFromString(s string) (PaymentMethod, error) {
	for method, str := range getPaymentMethodStrings() {
		if str == s {
			return method, nil
		}
	}

	return MethodUnknown, errs.NewValueIsInvalidErrorWithCause(
		"paymentMethod",
		fmt.Errorf("%q is not a known payment method", s),
	)
}

// String returns the wire representation of the payment method.
func (m PaymentMethod) String() string {
	if s, ok := getPaymentMethodStrings()[m]; ok {
		return s
	}
	return "UNKNOWN"
}

// CardDetails carries the fields collected by the checkout card form.
// Number and expiry arrive formatted the way the form masks them:
// digits with optional spaces, and MM/YY.
type CardDetails struct {
	Number     string
	HolderName string
	Expiry     string
	CVV        string
}

var (
	cardNumberPattern = regexp.MustCompile(`^\d{16}$`)
	cardExpiryPattern = regexp.MustCompile(`^(0[1-9]|1[0-2])/(\d{2})$`)
	cardCVVPattern    = regexp.MustCompile(`^\d{3,4}$`)
)

// PaymentValidator is a domain service that checks payment details before an
// order is accepted. Payment is simulated: validation is the whole of
// processing, no charge is ever made.
type PaymentValidator struct{}

// NewPaymentValidator creates a new PaymentValidator instance.
func NewPaymentValidator() *PaymentValidator {
	return &PaymentValidator{}
}

// Validate checks the payment details for the given method. Pix needs no
// details; card payments require a 16-digit number, a holder name of at
// least three characters, an unexpired MM/YY expiry, and a 3 or 4 digit CVV.
// The reference time decides whether the expiry is in the past.
func (v *PaymentValidator) Validate(method PaymentMethod, card *CardDetails, now time.Time) error {
	switch method {
	case MethodPix:
		return nil
	case MethodCard:
		if card == nil {
			return errs.NewValueIsRequiredError("card")
		}
		return v.validateCard(*card, now)
	default:
		return errs.NewValueIsInvalidErrorWithCause(
			"paymentMethod",
			fmt.Errorf("%d is not a known payment method", method),
		)
	}
}

func (v *PaymentValidator) validateCard(card CardDetails, now time.Time) error {
	return errors.Join(
		validateCardNumber(card.Number),
		validateHolderName(card.HolderName),
		validateExpiry(card.Expiry, now),
		validateCVV(card.CVV),
	)
}

func validateCardNumber(number string) error {
	digits := strings.ReplaceAll(number, " ", "")
	if !cardNumberPattern.MatchString(digits) {
		return errs.NewValueIsInvalidErrorWithCause(
			"cardNumber",
			errors.New("card number must have exactly 16 digits"),
		)
	}
	return nil
}

func validateHolderName(name string) error {
	if len(strings.TrimSpace(name)) < 3 {
		return errs.NewValueIsInvalidErrorWithCause(
			"holderName",
			errors.New("holder name must have at least 3 characters"),
		)
	}
	return nil
}

func validateExpiry(expiry string, now time.Time) error {
	match := cardExpiryPattern.FindStringSubmatch(expiry)
	if match == nil {
		return errs.NewValueIsInvalidErrorWithCause(
			"expiry",
			errors.New("expiry must be in MM/YY format"),
		)
	}

	month, _ := strconv.Atoi(match[1])
	year, _ := strconv.Atoi(match[2])
	year += now.Year() - now.Year()%100

	// The card is valid through the last day of its expiry month.
	endOfMonth := time.Date(year, time.Month(month)+1, 1, 0, 0, 0, 0, now.Location())
	if !now.Before(endOfMonth) {
		return errs.NewValueIsInvalidErrorWithCause(
			"expiry",
			errors.New("card is expired"),
		)
	}

	return nil
}

func validateCVV(cvv string) error {
	if !cardCVVPattern.MatchString(cvv) {
		return errs.NewValueIsInvalidErrorWithCause(
			"cvv",
			errors.New("cvv must have 3 or 4 digits"),
		)
	}
	return nil
}
