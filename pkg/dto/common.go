// Package dto defines the create/update input shapes for every ledger
// entity, carrying the validation rules as struct tags.
//
// Create DTOs list required fields as plain values and optional fields as
// pointers (or omitempty strings). Update DTOs make every domain field a
// pointer so that "not supplied" stays distinct from a zero value; only ID
// and UserID are mandatory. Supplied fields overwrite, absent fields are
// left untouched. Clearing a field is not supported.
package dto

// DefaultPageLimit applies when a listing request carries no limit.
const DefaultPageLimit = 50

// Pagination selects a page of a listing. Cursor is an opaque token from a
// previous page; Limit is clamped to [1,200].
type Pagination struct {
	Cursor string `json:"cursor,omitempty"`
	Limit  int    `json:"limit" validate:"omitempty,min=1,max=200"`
}

// ApplyDefaults fills the documented default limit.
func (p *Pagination) ApplyDefaults() {
	if p.Limit == 0 {
		p.Limit = DefaultPageLimit
	}
}
