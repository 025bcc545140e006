package dto

// ProfileEditRequest mirrors the profile edit form. There is no password
// change path here.
// swagger:model dto.ProfileEditRequest
type ProfileEditRequest struct {
	FirstName   string `form:"first_name" validate:"required,max=30" example:"Alice"`
	LastName    string `form:"last_name" validate:"required,max=30" example:"Liddell"`
	Description string `form:"description" validate:"omitempty" example:"Coffee person"`
	Email       string `form:"email" validate:"required,email,max=50" example:"alice@example.com"`
	ImageURL    string `form:"image_url" validate:"omitempty,max=255" example:""`
}
