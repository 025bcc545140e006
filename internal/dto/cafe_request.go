package dto

// CafeRequest mirrors the add/edit cafe form. Speciality carries the single
// speciality string the form supports per edit cycle.
// swagger:model dto.CafeRequest
type CafeRequest struct {
	Name        string `form:"name" validate:"required" example:"Brew"`
	Description string `form:"description" validate:"omitempty" example:"A cozy spot"`
	URL         string `form:"url" validate:"omitempty,url" example:"https://brew.example.com"`
	Address     string `form:"address" validate:"required" example:"1 Main St"`
	CityCode    string `form:"city_code" validate:"required" example:"sf"`
	ImageURL    string `form:"image_url" validate:"omitempty,max=255" example:"/static/images/default-cafe.jpg"`
	Speciality  string `form:"speciality" validate:"omitempty,max=100" example:"Coffee"`
}
