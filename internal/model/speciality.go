package model

// Speciality is a free-text tag owned by exactly one cafe.
type Speciality struct {
	Name   string `db:"name" json:"name"`
	CafeID int    `db:"cafe_id" json:"cafe_id"`
}
