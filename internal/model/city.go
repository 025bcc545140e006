package model

// City is immutable reference data; rows are seeded, never managed by the app.
type City struct {
	Code  string `db:"code" json:"code"`
	Name  string `db:"name" json:"name"`
	State string `db:"state" json:"state"`
}
