package services_test

import (
	"testing"
	"time"

	"pizzeria/internal/core/domain/services"
	"pizzeria/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validCard() *services.CardDetails {
	return &services.CardDetails{
		Number:     "4111 1111 1111 1111",
		HolderName: "Maria Silva",
		Expiry:     "12/30",
		CVV:        "123",
	}
}

func TestPaymentMethodFromString(t *testing.T) {
	t.Run("parses known methods", func(t *testing.T) {
		card, err := services.PaymentMethodFromString("CARD")
		require.NoError(t, err)
		assert.Equal(t, services.MethodCard, card)

		pix, err := services.PaymentMethodFromString("PIX")
		require.NoError(t, err)
		assert.Equal(t, services.MethodPix, pix)
	})

	t.Run("rejects unknown method", func(t *testing.T) {
		_, err := services.PaymentMethodFromString("CHEQUE")

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestPaymentValidator_Validate(t *testing.T) {
	validator := services.NewPaymentValidator()
	now := time.Date(2026, time.March, 15, 12, 0, 0, 0, time.UTC)

	t.Run("pix needs no details", func(t *testing.T) {
		require.NoError(t, validator.Validate(services.MethodPix, nil, now))
	})

	t.Run("valid card passes", func(t *testing.T) {
		require.NoError(t, validator.Validate(services.MethodCard, validCard(), now))
	})

	t.Run("card method requires details", func(t *testing.T) {
		err := validator.Validate(services.MethodCard, nil, now)

		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("unknown method is invalid", func(t *testing.T) {
		err := validator.Validate(services.MethodUnknown, nil, now)

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("card number must have 16 digits", func(t *testing.T) {
		card := validCard()
		card.Number = "4111 1111 1111"

		err := validator.Validate(services.MethodCard, card, now)

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
		assert.Contains(t, err.Error(), "cardNumber")
	})

	t.Run("holder name must have at least 3 characters", func(t *testing.T) {
		card := validCard()
		card.HolderName = "Jo"

		err := validator.Validate(services.MethodCard, card, now)

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
		assert.Contains(t, err.Error(), "holderName")
	})

	t.Run("expiry must be MM/YY", func(t *testing.T) {
		card := validCard()
		card.Expiry = "13/30"

		err := validator.Validate(services.MethodCard, card, now)

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
		assert.Contains(t, err.Error(), "expiry")
	})

	t.Run("expired card is rejected", func(t *testing.T) {
		card := validCard()
		card.Expiry = "02/26"

		err := validator.Validate(services.MethodCard, card, now)

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
		assert.Contains(t, err.Error(), "expired")
	})

	t.Run("card valid through the last day of its expiry month", func(t *testing.T) {
		card := validCard()
		card.Expiry = "03/26"

		require.NoError(t, validator.Validate(services.MethodCard, card, now))
	})

	t.Run("cvv must have 3 or 4 digits", func(t *testing.T) {
		card := validCard()
		card.CVV = "12"

		err := validator.Validate(services.MethodCard, card, now)

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
		assert.Contains(t, err.Error(), "cvv")
	})

	t.Run("collects every invalid field", func(t *testing.T) {
		card := &services.CardDetails{}

		err := validator.Validate(services.MethodCard, card, now)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "cardNumber")
		assert.Contains(t, err.Error(), "holderName")
		assert.Contains(t, err.Error(), "expiry")
		assert.Contains(t, err.Error(), "cvv")
	})
}
