package domain

// PointsProgram is a user's enrollment in a loyalty program.
type PointsProgram struct {
	Entity
	Program        PointsProgramName `json:"program"`
	MemberID       string            `json:"memberId,omitempty"`
	LinkedAccounts []string          `json:"linkedAccounts,omitempty"`
	Notes          string            `json:"notes,omitempty"`
}

// PointsBalance is a lot of points earned together, sharing an expiry date.
// Points never goes negative; spends are tracked as PointsOperations.
type PointsBalance struct {
	Entity
	ProgramID string              `json:"programId"`
	Points    int64               `json:"points"`
	EarnedAt  TimestampMS         `json:"earnedAt"`
	ExpiresAt TimestampMS         `json:"expiresAt"`
	Source    PointsBalanceSource `json:"source,omitempty"`
	PromoTag  string              `json:"promoTag,omitempty"`
	Status    PointsBalanceStatus `json:"status"`
}

// RelatedPurchase links a points movement to the card purchase that
// produced it.
type RelatedPurchase struct {
	AccountID string    `json:"accountId"`
	Amount    Cents     `json:"amount"`
	CardBrand CardBrand `json:"cardBrand,omitempty"`
}

// PointsOperation is a signed movement of points in a program.
// PointsDelta is negative for redemptions and outbound transfers.
type PointsOperation struct {
	Entity
	ProgramID        string              `json:"programId"`
	Date             TimestampMS         `json:"date"`
	Type             PointsOperationType `json:"type"`
	PointsDelta      int64               `json:"pointsDelta"`
	PartnerOrAirline string              `json:"partnerOrAirline,omitempty"`
	RateOrBonus      *float64            `json:"rateOrBonus,omitempty"`
	RelatedPurchase  *RelatedPurchase    `json:"relatedPurchase,omitempty"`
	Notes            string              `json:"notes,omitempty"`
}

// PointsOffer is a promotional transfer bonus. Offers are global, not
// user-scoped, so the shape does not embed Entity.
type PointsOffer struct {
	ID          string            `json:"id"`
	Program     PointsProgramName `json:"program"`
	Title       string            `json:"title"`
	Description string            `json:"description"`
	Bonus       float64           `json:"bonus"`
	ValidUntil  TimestampMS       `json:"validUntil"`
	TermsURL    string            `json:"termsUrl,omitempty"`
	CreatedAt   TimestampMS       `json:"createdAt,omitempty"`
	UpdatedAt   TimestampMS       `json:"updatedAt,omitempty"`
}
