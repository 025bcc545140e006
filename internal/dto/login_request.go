package dto

// swagger:model dto.LoginRequest
type LoginRequest struct {
	Username string `form:"username" validate:"required,max=30" example:"alice"`
	Password string `form:"password" validate:"required,min=6,max=50" example:"Secret123!"`
}
