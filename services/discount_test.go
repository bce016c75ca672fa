package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"churchms/models"
)

func TestDiscountedFee_Percentage(t *testing.T) {
	discount := &models.MemberDiscount{Type: models.DiscountPercentage, Value: 20}
	assert.Equal(t, 80.0, DiscountedFee(100, discount, true))
}

func TestDiscountedFee_FixedClamped(t *testing.T) {
	discount := &models.MemberDiscount{Type: models.DiscountFixed, Value: 150}
	assert.Equal(t, 0.0, DiscountedFee(100, discount, true), "discount larger than fee clamps to zero")
}

func TestDiscountedFee_Fixed(t *testing.T) {
	discount := &models.MemberDiscount{Type: models.DiscountFixed, Value: 25}
	assert.Equal(t, 75.0, DiscountedFee(100, discount, true))
}

func TestDiscountedFee_Ineligible(t *testing.T) {
	discount := &models.MemberDiscount{Type: models.DiscountPercentage, Value: 20}
	assert.Equal(t, 100.0, DiscountedFee(100, discount, false))
}

func TestDiscountedFee_NoDiscount(t *testing.T) {
	assert.Equal(t, 100.0, DiscountedFee(100, nil, true))
	assert.Equal(t, 100.0, DiscountedFee(100, &models.MemberDiscount{Type: models.DiscountPercentage, Value: 0}, true))
	assert.Equal(t, 100.0, DiscountedFee(100, &models.MemberDiscount{Type: models.DiscountPercentage, Value: -10}, true))
	assert.Equal(t, 100.0, DiscountedFee(100, &models.MemberDiscount{Type: "loyalty", Value: 20}, true), "unknown type is no discount")
}

func TestDiscountedFee_PercentageOverHundred(t *testing.T) {
	discount := &models.MemberDiscount{Type: models.DiscountPercentage, Value: 150}
	assert.Equal(t, 0.0, DiscountedFee(100, discount, true))
}

func TestDiscountedFee_Idempotent(t *testing.T) {
	discount := &models.MemberDiscount{Type: models.DiscountPercentage, Value: 20}
	assert.Equal(t, DiscountedFee(100, discount, true), DiscountedFee(100, discount, true))
}

func TestQuoteFees(t *testing.T) {
	fees := []models.Fee{
		{FeeType: "baptism", Amount: 500},
		{FeeType: "certificate", Amount: 0},
	}
	discount := &models.MemberDiscount{Type: models.DiscountPercentage, Value: 50}

	quotes := QuoteFees(fees, discount, true)
	require.Len(t, quotes, 2)

	assert.Equal(t, "baptism", quotes[0].FeeType)
	assert.Equal(t, 500.0, quotes[0].OriginalAmount)
	assert.Equal(t, 250.0, quotes[0].FinalAmount)

	// Free/members-only services stay free.
	assert.Equal(t, 0.0, quotes[1].OriginalAmount)
	assert.Equal(t, 0.0, quotes[1].FinalAmount)
}
