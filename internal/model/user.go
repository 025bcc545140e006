package model

import "fmt"

// DefaultUserImageURL is used when no image URL is submitted.
const DefaultUserImageURL = "/static/images/default-pic.jpg"

type User struct {
	ID          int    `db:"id" json:"id"`
	Username    string `db:"username" json:"username"`
	Email       string `db:"email" json:"email"`
	FirstName   string `db:"first_name" json:"first_name"`
	LastName    string `db:"last_name" json:"last_name"`
	Description string `db:"description" json:"description"`
	ImageURL    string `db:"image_url" json:"image_url"`
	Admin       bool   `db:"admin" json:"admin"`
	Password    string `db:"password" json:"-"`
}

// FullName returns "first last".
func (u *User) FullName() string {
	return fmt.Sprintf("%s %s", u.FirstName, u.LastName)
}
