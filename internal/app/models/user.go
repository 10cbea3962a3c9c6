package models

import "time"

// Role types
const (
	RoleStaff   = "STAFF"
	RoleStudent = "STUDENT"
)

// Role represents a user role
type Role struct {
	ID       int64  `json:"id"`
	RoleName string `json:"roleName"`
}

// StaffUser represents a clinic staff account
type StaffUser struct {
	ID          int64     `json:"id"`
	Username    string    `json:"username"`
	Email       string    `json:"email"`
	Password    string    `json:"-"`
	StaffNumber string    `json:"staffNumber"`
	FullName    string    `json:"fullName"`
	RoleID      int64     `json:"roleId"`
	RoleName    string    `json:"roleName"`
	CreatedAt   time.Time `json:"createdAt"`
}

// Student represents a student account
type Student struct {
	ID            int64     `json:"id"`
	Username      string    `json:"username"`
	Email         string    `json:"email"`
	Password      string    `json:"-"`
	StudentNumber string    `json:"studentNumber"`
	FullName      string    `json:"fullName"`
	RoleID        int64     `json:"roleId"`
	RoleName      string    `json:"roleName"`
	CreatedAt     time.Time `json:"createdAt"`
}
