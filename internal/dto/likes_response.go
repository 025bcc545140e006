package dto

// swagger:model dto.LikesResponse
type LikesResponse struct {
	Likes bool `json:"likes" example:"true"`
}

// swagger:model dto.LikedResponse
type LikedResponse struct {
	Liked int `json:"liked" example:"1"`
}

// swagger:model dto.UnlikedResponse
type UnlikedResponse struct {
	Unliked int `json:"unliked" example:"1"`
}
