package dto

// swagger:model dto.LikeRequest
type LikeRequest struct {
	CafeID int `json:"cafe_id" validate:"required" example:"1"`
}
