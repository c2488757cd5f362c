package models

// CategoryDB represents a listing type. A category is either top-level
// (ParentID is nil) or the child of exactly one top-level category.
type CategoryDB struct {
	CategoryID int64  `json:"id" db:"category_id"`
	Name       string `json:"name" db:"name"`
	ParentID   *int64 `json:"parent_id" db:"parent_id"`
}

// IsTopLevel reports whether the category has no parent.
func (c CategoryDB) IsTopLevel() bool {
	return c.ParentID == nil
}
