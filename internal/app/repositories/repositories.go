package repositories

import (
	"github.com/jackc/pgx/v5/pgxpool"
)

// Repositories holds all the repository instances
type Repositories struct {
	UserRepository        *UserRepository
	OnboardingRepository  *OnboardingRepository
	DocumentRepository    *DocumentRepository
	AppointmentRepository *AppointmentRepository
	EmergencyRepository   *EmergencyRepository
	ScheduleRepository    *ScheduleRepository
}

// NewRepositories initializes all repositories
func NewRepositories(db *pgxpool.Pool) *Repositories {
	return &Repositories{
		UserRepository:        NewUserRepository(db),
		OnboardingRepository:  NewOnboardingRepository(db),
		DocumentRepository:    NewDocumentRepository(db),
		AppointmentRepository: NewAppointmentRepository(db),
		EmergencyRepository:   NewEmergencyRepository(db),
		ScheduleRepository:    NewScheduleRepository(db),
	}
}
