package services

// Services defined in this package:
// - AuthService: Handles staff and student authentication
// - EligibilityService: Evaluates the booking gate for students
// - OnboardingService: Handles student intake submissions
// - DocumentService: Handles proof of registration uploads and review
// - AppointmentService: Handles booking lifecycle operations
// - EmergencyService: Handles incident report operations
