package dto

// UserType values accepted at login
const (
	UserTypeStaff   = "staff"
	UserTypeStudent = "student"
)

// LoginRequest represents a login attempt for either account type.
// Identifier is a staff number, student number or username.
type LoginRequest struct {
	Identifier string `json:"identifier" binding:"required"`
	Password   string `json:"password" binding:"required"`
	UserType   string `json:"userType" binding:"required,oneof=staff student"`
}

// LoginResponse is returned on successful authentication. The eligibility
// flags are populated for student logins only.
type LoginResponse struct {
	Message             string      `json:"message"`
	Token               string      `json:"token"`
	RefreshToken        string      `json:"refreshToken"`
	User                interface{} `json:"user"`
	UserType            string      `json:"userType"`
	OnboardingCompleted *bool       `json:"onboardingCompleted,omitempty"`
	DocumentUploaded    *bool       `json:"porUploaded,omitempty"`
	DocumentApproved    *bool       `json:"porApproved,omitempty"`
}
