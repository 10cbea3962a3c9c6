package models

import "time"

// Approval statuses for registration documents
const (
	ApprovalPending  = "pending"
	ApprovalApproved = "approved"
	ApprovalRejected = "rejected"
)

// RegistrationDocument is a proof of registration upload for a student.
// Each student keeps at most one active row; re-uploads replace it in
// place and reset the approval status.
type RegistrationDocument struct {
	ID             int64      `json:"id"`
	StudentNumber  string     `json:"studentNumber"`
	FileName       string     `json:"fileName"`
	FilePath       string     `json:"filePath"`
	FileSize       int64      `json:"fileSize"`
	Mimetype       string     `json:"mimetype"`
	UploadedAt     time.Time  `json:"uploadedAt"`
	ApprovalStatus string     `json:"approvalStatus"`
	ApprovedAt     *time.Time `json:"approvedAt,omitempty"`
}
