package dto

import "github.com/chwc/clinicops/internal/app/models"

// DecisionRequest approves or rejects a registration document
type DecisionRequest struct {
	Decision string `json:"decision" binding:"required,oneof=approved rejected"`
}

// DocumentResponse wraps a single registration document
type DocumentResponse struct {
	Document *models.RegistrationDocument `json:"por"`
}

// FileInfo is the listing shape for uploaded files
type FileInfo struct {
	ID         int64  `json:"id"`
	FileName   string `json:"fileName"`
	FileSize   int64  `json:"fileSize"`
	Mimetype   string `json:"mimetype"`
	UploadedAt string `json:"uploadedAt"`
}

// FileListResponse wraps a student's uploaded files with their count
type FileListResponse struct {
	Files []*FileInfo `json:"files"`
	Count int         `json:"count"`
}
