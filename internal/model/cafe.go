package model

import "fmt"

// DefaultCafeImageURL is used when no image URL is submitted.
const DefaultCafeImageURL = "/static/images/default-cafe.jpg"

type Cafe struct {
	ID          int    `db:"id" json:"id"`
	Name        string `db:"name" json:"name"`
	Description string `db:"description" json:"description"`
	URL         string `db:"url" json:"url"`
	Address     string `db:"address" json:"address"`
	CityCode    string `db:"city_code" json:"city_code"`
	ImageURL    string `db:"image_url" json:"image_url"`

	// City is populated by store reads that join cities.
	City *City `db:"-" json:"city,omitempty"`
}

// CityState returns "City, ST" for display, or "" when City is not loaded.
func (c *Cafe) CityState() string {
	if c.City == nil {
		return ""
	}
	return fmt.Sprintf("%s, %s", c.City.Name, c.City.State)
}
