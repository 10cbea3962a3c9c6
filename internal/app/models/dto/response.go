package dto

// SuccessResponse represents a standard success response for API endpoints
type SuccessResponse struct {
	Message string `json:"message"`
}

// CreatedResponse is returned by endpoints that insert a new record
type CreatedResponse struct {
	Message  string `json:"message"`
	RecordID int64  `json:"recordId"`
}
