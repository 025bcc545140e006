package dto

// SignupRequest mirrors the signup form.
// swagger:model dto.SignupRequest
type SignupRequest struct {
	Username    string `form:"username" validate:"required,max=50" example:"alice"`
	FirstName   string `form:"first_name" validate:"required,max=30" example:"Alice"`
	LastName    string `form:"last_name" validate:"required,max=30" example:"Liddell"`
	Description string `form:"description" validate:"omitempty" example:"Coffee person"`
	Email       string `form:"email" validate:"required,email,max=50" example:"alice@example.com"`
	Password    string `form:"password" validate:"required,min=6,max=50" example:"Secret123!"`
	ImageURL    string `form:"image_url" validate:"omitempty,max=255" example:"/static/images/default-pic.jpg"`
}
