package dto

// HTTPError is the JSON error body of the likes API.
// swagger:model dto.HTTPError
type HTTPError struct {
	Error string `json:"error"`
}
