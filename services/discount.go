package services

import "churchms/models"

// DiscountedFee applies a membership discount to a fee amount. Ineligible
// members, absent discounts, and non-positive discount values all leave the
// fee unchanged; the result is never negative regardless of discount size.
func DiscountedFee(originalFee float64, discount *models.MemberDiscount, isEligible bool) float64 {
	if !isEligible || discount == nil || discount.Value <= 0 {
		return originalFee
	}

	var discounted float64
	switch discount.Type {
	case models.DiscountPercentage:
		discounted = originalFee - originalFee*discount.Value/100
	case models.DiscountFixed:
		discounted = originalFee - discount.Value
	default:
		return originalFee
	}

	if discounted < 0 {
		return 0
	}
	return discounted
}

// QuoteFees prices every fee of a schedule for one member.
func QuoteFees(fees []models.Fee, discount *models.MemberDiscount, isEligible bool) []models.FeeQuote {
	quotes := make([]models.FeeQuote, len(fees))
	for i, fee := range fees {
		quotes[i] = models.FeeQuote{
			FeeType:        fee.FeeType,
			OriginalAmount: fee.Amount,
			FinalAmount:    DiscountedFee(fee.Amount, discount, isEligible),
		}
	}
	return quotes
}
