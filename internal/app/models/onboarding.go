package models

import "time"

// OnboardingRecord is a completed student intake form.
//
// Free text sections of the form arrive sparsely, so writes go through a
// field dictionary rather than this struct. The struct is the read shape.
type OnboardingRecord struct {
	ID                   int64     `json:"id"`
	StudentNumber        string    `json:"studentNumber"`
	Surname              string    `json:"surname"`
	FullNames            string    `json:"fullNames"`
	DateOfBirth          string    `json:"dateOfBirth"`
	Gender               string    `json:"gender"`
	OtherGender          *string   `json:"otherGender,omitempty"`
	PhysicalAddress      string    `json:"physicalAddress"`
	PostalAddress        string    `json:"postalAddress"`
	Code                 string    `json:"code"`
	Email                string    `json:"email"`
	Cell                 string    `json:"cell"`
	AltNumber            *string   `json:"altNumber,omitempty"`
	EmergencyName        string    `json:"emergencyName"`
	EmergencyRelation    string    `json:"emergencyRelation"`
	EmergencyWorkTel     *string   `json:"emergencyWorkTel,omitempty"`
	EmergencyCell        string    `json:"emergencyCell"`
	MedicalConditions    bool      `json:"medicalConditions"`
	Operations           bool      `json:"operations"`
	ConditionsDetails    *string   `json:"conditionsDetails,omitempty"`
	Disability           bool      `json:"disability"`
	DisabilityDetails    *string   `json:"disabilityDetails,omitempty"`
	Medication           bool      `json:"medication"`
	MedicationDetails    *string   `json:"medicationDetails,omitempty"`
	OtherConditions      *string   `json:"otherConditions,omitempty"`
	Congenital           bool      `json:"congenital"`
	FamilyOther          *string   `json:"familyOther,omitempty"`
	Smoking              bool      `json:"smoking"`
	Recreation           bool      `json:"recreation"`
	Psychological        bool      `json:"psychological"`
	PsychologicalDetails *string   `json:"psychologicalDetails,omitempty"`
	Date                 string    `json:"date"`
	SignatureData        *string   `json:"signatureData,omitempty"`
	CreatedAt            time.Time `json:"createdAt"`
}

// OnboardingSummary is the reporting row behind the staff intake overview.
type OnboardingSummary struct {
	StudentNumber string
	Surname       string
	FullNames     string
	Date          string
}
