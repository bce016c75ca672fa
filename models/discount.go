package models

// Discount types.
const (
	DiscountPercentage = "percentage"
	DiscountFixed      = "fixed"
)

// MemberDiscount is the discount configuration attached to a church
// membership tier. Type and Value may be absent when the tier carries
// no discount.
type MemberDiscount struct {
	Type  string  `json:"type,omitempty"`
	Value float64 `json:"value,omitempty"`
}

// FeeQuote is one fee line with the member discount applied.
type FeeQuote struct {
	FeeType        string  `json:"feeType"`
	OriginalAmount float64 `json:"originalAmount"`
	FinalAmount    float64 `json:"finalAmount"`
}
