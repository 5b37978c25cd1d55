// Package domain holds the persisted record shapes of the ledger and the
// closed vocabularies (enums) their categorical fields draw from.
//
// Monetary fields are always integer cents (Cents); date fields are always
// integer milliseconds since the Unix epoch (TimestampMS). Floating-point
// currency never enters this package.
package domain

// Cents is a monetary amount in integer cents.
type Cents = int64

// TimestampMS is a moment in integer milliseconds since the Unix epoch.
type TimestampMS = int64

// Entity is the base of every user-scoped persisted record. ID is assigned
// by the persistence layer on insert; UserID binds ownership and must equal
// the acting principal on every read and write.
type Entity struct {
	ID        string      `json:"id"`
	UserID    string      `json:"userId"`
	CreatedAt TimestampMS `json:"createdAt,omitempty"`
	UpdatedAt TimestampMS `json:"updatedAt,omitempty"`
}
