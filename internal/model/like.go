package model

// Like is a pure join record; presence means the user likes the cafe.
type Like struct {
	UserID int `db:"user_id" json:"user_id"`
	CafeID int `db:"cafe_id" json:"cafe_id"`
}
