package dto

import "github.com/meucofre/meucofre/pkg/domain"

// PointsProgramCreate is the input for enrolling in a loyalty program.
type PointsProgramCreate struct {
	UserID         string                   `json:"userId" validate:"required"`
	Program        domain.PointsProgramName `json:"program" validate:"required,oneof=livelo esfera iupp smiles latam_pass tudoazul ame meli outro"`
	MemberID       string                   `json:"memberId,omitempty"`
	LinkedAccounts []string                 `json:"linkedAccounts,omitempty"`
	Notes          string                   `json:"notes,omitempty"`
}

// PointsProgramUpdate is the partial-update input for a program
// enrollment.
type PointsProgramUpdate struct {
	ID             string                    `json:"id" validate:"required"`
	UserID         string                    `json:"userId" validate:"required"`
	Program        *domain.PointsProgramName `json:"program,omitempty" validate:"omitnil,oneof=livelo esfera iupp smiles latam_pass tudoazul ame meli outro"`
	MemberID       *string                   `json:"memberId,omitempty"`
	LinkedAccounts *[]string                 `json:"linkedAccounts,omitempty"`
	Notes          *string                   `json:"notes,omitempty"`
}

// PointsBalanceCreate is the input for recording a lot of earned points.
// Status defaults to active.
type PointsBalanceCreate struct {
	UserID    string                     `json:"userId" validate:"required"`
	ProgramID string                     `json:"programId" validate:"required"`
	Points    *int64                     `json:"points" validate:"required,gte=0"`
	EarnedAt  domain.TimestampMS         `json:"earnedAt" validate:"required"`
	ExpiresAt domain.TimestampMS         `json:"expiresAt" validate:"required"`
	Source    domain.PointsBalanceSource `json:"source,omitempty" validate:"omitempty,oneof=credit_card partner promo transfer"`
	PromoTag  string                     `json:"promoTag,omitempty"`
	Status    domain.PointsBalanceStatus `json:"status" validate:"omitempty,oneof=active redeemed expired"`
}

// ApplyDefaults fills the documented defaults.
func (b *PointsBalanceCreate) ApplyDefaults() {
	if b.Status == "" {
		b.Status = domain.PointsActive
	}
}

// PointsBalanceUpdate is the partial-update input for a points lot.
type PointsBalanceUpdate struct {
	ID        string                      `json:"id" validate:"required"`
	UserID    string                      `json:"userId" validate:"required"`
	ProgramID *string                     `json:"programId,omitempty" validate:"omitnil,min=1"`
	Points    *int64                      `json:"points,omitempty" validate:"omitnil,gte=0"`
	EarnedAt  *domain.TimestampMS         `json:"earnedAt,omitempty"`
	ExpiresAt *domain.TimestampMS         `json:"expiresAt,omitempty"`
	Source    *domain.PointsBalanceSource `json:"source,omitempty" validate:"omitnil,oneof=credit_card partner promo transfer"`
	PromoTag  *string                     `json:"promoTag,omitempty"`
	Status    *domain.PointsBalanceStatus `json:"status,omitempty" validate:"omitnil,oneof=active redeemed expired"`
}

// RelatedPurchase mirrors domain.RelatedPurchase for input validation.
type RelatedPurchase struct {
	AccountID string           `json:"accountId" validate:"required,min=1"`
	Amount    *domain.Cents    `json:"amount" validate:"required"`
	CardBrand domain.CardBrand `json:"cardBrand,omitempty" validate:"omitempty,oneof=visa mastercard amex elo hipercard vr sodexo alelo other"`
}

// PointsOperationCreate is the input for recording a points movement.
// PointsDelta is signed; RateOrBonus is a multiplier in [0,5].
type PointsOperationCreate struct {
	UserID           string                     `json:"userId" validate:"required"`
	ProgramID        string                     `json:"programId" validate:"required"`
	Date             domain.TimestampMS         `json:"date" validate:"required"`
	Type             domain.PointsOperationType `json:"type" validate:"required,oneof=earn redeem transfer_in transfer_out adjust"`
	PointsDelta      *int64                     `json:"pointsDelta" validate:"required"`
	PartnerOrAirline string                     `json:"partnerOrAirline,omitempty"`
	RateOrBonus      *float64                   `json:"rateOrBonus,omitempty" validate:"omitnil,gte=0,lte=5"`
	RelatedPurchase  *RelatedPurchase           `json:"relatedPurchase,omitempty"`
	Notes            string                     `json:"notes,omitempty"`
}

// PointsOperationUpdate is the partial-update input for a points movement.
type PointsOperationUpdate struct {
	ID               string                      `json:"id" validate:"required"`
	UserID           string                      `json:"userId" validate:"required"`
	ProgramID        *string                     `json:"programId,omitempty" validate:"omitnil,min=1"`
	Date             *domain.TimestampMS         `json:"date,omitempty"`
	Type             *domain.PointsOperationType `json:"type,omitempty" validate:"omitnil,oneof=earn redeem transfer_in transfer_out adjust"`
	PointsDelta      *int64                      `json:"pointsDelta,omitempty"`
	PartnerOrAirline *string                     `json:"partnerOrAirline,omitempty"`
	RateOrBonus      *float64                    `json:"rateOrBonus,omitempty" validate:"omitnil,gte=0,lte=5"`
	RelatedPurchase  *RelatedPurchase            `json:"relatedPurchase,omitempty"`
	Notes            *string                     `json:"notes,omitempty"`
}

// PointsOfferCreate is the input for publishing a promotional offer.
// Offers are global: there is no owner.
type PointsOfferCreate struct {
	Program     domain.PointsProgramName `json:"program" validate:"required,oneof=livelo esfera iupp smiles latam_pass tudoazul ame meli outro"`
	Title       string                   `json:"title" validate:"required,min=2"`
	Description string                   `json:"description" validate:"required,min=2"`
	Bonus       *float64                 `json:"bonus" validate:"required,gte=0,lte=5"`
	ValidUntil  domain.TimestampMS       `json:"validUntil" validate:"required"`
	TermsURL    string                   `json:"termsUrl,omitempty" validate:"omitempty,url"`
}

// PointsOfferUpdate is the partial-update input for an offer. Only the id
// is mandatory since offers carry no userId.
type PointsOfferUpdate struct {
	ID          string                    `json:"id" validate:"required"`
	Program     *domain.PointsProgramName `json:"program,omitempty" validate:"omitnil,oneof=livelo esfera iupp smiles latam_pass tudoazul ame meli outro"`
	Title       *string                   `json:"title,omitempty" validate:"omitnil,min=2"`
	Description *string                   `json:"description,omitempty" validate:"omitnil,min=2"`
	Bonus       *float64                  `json:"bonus,omitempty" validate:"omitnil,gte=0,lte=5"`
	ValidUntil  *domain.TimestampMS       `json:"validUntil,omitempty"`
	TermsURL    *string                   `json:"termsUrl,omitempty" validate:"omitnil,url"`
}
