package dto

import "github.com/chwc/clinicops/internal/app/models"

// CreateStudentRequest is the staff-side account creation payload.
type CreateStudentRequest struct {
	Username      string `json:"username" binding:"required"`
	Email         string `json:"email" binding:"required,email"`
	Password      string `json:"password" binding:"required"`
	StudentNumber string `json:"studentNumber" binding:"required"`
	FullName      string `json:"fullName" binding:"required"`
}

// ResetPasswordRequest resets a student account password by student number.
type ResetPasswordRequest struct {
	StudentNumber string `json:"studentNumber" binding:"required"`
	NewPassword   string `json:"newPassword" binding:"required"`
}

// StudentCreatedResponse confirms a new student account.
type StudentCreatedResponse struct {
	Message   string `json:"message"`
	StudentID int64  `json:"studentId"`
}

// StudentListResponse lists all student accounts for the staff view.
type StudentListResponse struct {
	Students []*models.Student `json:"students"`
	Count    int               `json:"count"`
}
