package services

import (
	"context"
	"fmt"
	"time"

	"github.com/chwc/clinicops/internal/app/models"
	"github.com/chwc/clinicops/internal/app/repositories"
)

// -- Mock Repositories --

type mockOnboardingRepo struct {
	records map[string]map[string]interface{}
	nextID  int64
}

func newMockOnboardingRepo() *mockOnboardingRepo {
	return &mockOnboardingRepo{records: make(map[string]map[string]interface{})}
}

func (m *mockOnboardingRepo) Exists(_ context.Context, studentNumber string) (bool, error) {
	_, ok := m.records[studentNumber]
	return ok, nil
}

func (m *mockOnboardingRepo) Create(_ context.Context, record map[string]interface{}) (int64, error) {
	studentNumber, _ := record["studentNumber"].(string)
	if _, ok := m.records[studentNumber]; ok {
		return 0, repositories.ErrOnboardingAlreadyExists
	}
	m.nextID++
	m.records[studentNumber] = record
	return m.nextID, nil
}

func (m *mockOnboardingRepo) GetByStudent(_ context.Context, studentNumber string) (*models.OnboardingRecord, error) {
	record, ok := m.records[studentNumber]
	if !ok {
		return nil, repositories.ErrOnboardingNotFound
	}
	str := func(key string) string {
		s, _ := record[key].(string)
		return s
	}
	return &models.OnboardingRecord{
		StudentNumber: studentNumber,
		Surname:       str("surname"),
		FullNames:     str("fullNames"),
		Date:          str("date"),
	}, nil
}

func (m *mockOnboardingRepo) ListSummaries(_ context.Context, from, to string) ([]*models.OnboardingSummary, error) {
	result := make([]*models.OnboardingSummary, 0)
	for studentNumber, record := range m.records {
		date, _ := record["date"].(string)
		if from != "" && date < from {
			continue
		}
		if to != "" && date > to {
			continue
		}
		surname, _ := record["surname"].(string)
		fullNames, _ := record["fullNames"].(string)
		result = append(result, &models.OnboardingSummary{
			StudentNumber: studentNumber,
			Surname:       surname,
			FullNames:     fullNames,
			Date:          date,
		})
	}
	return result, nil
}

type mockDocumentRepo struct {
	docs   map[string]*models.RegistrationDocument
	nextID int64
}

func newMockDocumentRepo() *mockDocumentRepo {
	return &mockDocumentRepo{docs: make(map[string]*models.RegistrationDocument)}
}

func (m *mockDocumentRepo) GetStatus(_ context.Context, studentNumber string) (bool, bool, error) {
	doc, ok := m.docs[studentNumber]
	if !ok {
		return false, false, nil
	}
	return true, doc.ApprovalStatus == models.ApprovalApproved, nil
}

func (m *mockDocumentRepo) GetLatest(_ context.Context, studentNumber string) (*models.RegistrationDocument, error) {
	doc, ok := m.docs[studentNumber]
	if !ok {
		return nil, repositories.ErrDocumentNotFound
	}
	return doc, nil
}

func (m *mockDocumentRepo) GetByID(_ context.Context, id int64) (*models.RegistrationDocument, error) {
	for _, doc := range m.docs {
		if doc.ID == id {
			return doc, nil
		}
	}
	return nil, repositories.ErrDocumentNotFound
}

func (m *mockDocumentRepo) Upsert(_ context.Context, doc *models.RegistrationDocument) error {
	if existing, ok := m.docs[doc.StudentNumber]; ok {
		doc.ID = existing.ID
	} else {
		m.nextID++
		doc.ID = m.nextID
	}
	doc.UploadedAt = time.Now()
	doc.ApprovalStatus = models.ApprovalPending
	doc.ApprovedAt = nil
	m.docs[doc.StudentNumber] = doc
	return nil
}

func (m *mockDocumentRepo) Decide(_ context.Context, studentNumber, decision string) error {
	doc, ok := m.docs[studentNumber]
	if !ok {
		return repositories.ErrDocumentNotFound
	}
	doc.ApprovalStatus = decision
	if decision == models.ApprovalApproved {
		now := time.Now()
		doc.ApprovedAt = &now
	} else {
		doc.ApprovedAt = nil
	}
	return nil
}

func (m *mockDocumentRepo) ListByStudent(_ context.Context, studentNumber string) ([]*models.RegistrationDocument, error) {
	doc, ok := m.docs[studentNumber]
	if !ok {
		return []*models.RegistrationDocument{}, nil
	}
	return []*models.RegistrationDocument{doc}, nil
}

type mockAppointmentRepo struct {
	appointments map[int64]*models.Appointment
	nextID       int64
}

func newMockAppointmentRepo() *mockAppointmentRepo {
	return &mockAppointmentRepo{appointments: make(map[int64]*models.Appointment)}
}

func (m *mockAppointmentRepo) Create(_ context.Context, a *models.Appointment) (int64, error) {
	m.nextID++
	a.ID = m.nextID
	a.Status = models.AppointmentScheduled
	a.CreatedAt = time.Now()
	a.UpdatedAt = a.CreatedAt
	m.appointments[a.ID] = a
	return a.ID, nil
}

func (m *mockAppointmentRepo) ListByStudent(_ context.Context, studentNumber string) ([]*models.Appointment, error) {
	result := make([]*models.Appointment, 0)
	for _, a := range m.appointments {
		if a.StudentNumber == studentNumber {
			result = append(result, a)
		}
	}
	return result, nil
}

func (m *mockAppointmentRepo) ListScheduleByStudent(ctx context.Context, studentNumber string) ([]*models.Appointment, error) {
	return m.ListByStudent(ctx, studentNumber)
}

func (m *mockAppointmentRepo) ListAll(_ context.Context) ([]*models.Appointment, error) {
	result := make([]*models.Appointment, 0, len(m.appointments))
	for _, a := range m.appointments {
		result = append(result, a)
	}
	return result, nil
}

func (m *mockAppointmentRepo) Update(_ context.Context, id int64, date, timeSlot, appointmentFor, status string) error {
	a, ok := m.appointments[id]
	if !ok {
		return repositories.ErrAppointmentNotFound
	}
	a.AppointmentDate = &date
	a.AppointmentTime = timeSlot
	a.AppointmentFor = appointmentFor
	a.Status = status
	a.UpdatedAt = time.Now()
	return nil
}

func (m *mockAppointmentRepo) Cancel(_ context.Context, id int64) error {
	a, ok := m.appointments[id]
	if !ok {
		return repositories.ErrAppointmentNotFound
	}
	a.Status = models.AppointmentCancelled
	a.UpdatedAt = time.Now()
	return nil
}

type mockUserRepo struct {
	students map[string]*models.Student
	roles    map[string]*models.Role
	nextID   int64
}

func newMockUserRepo() *mockUserRepo {
	return &mockUserRepo{
		students: make(map[string]*models.Student),
		roles: map[string]*models.Role{
			models.RoleStudent: {ID: 1, RoleName: models.RoleStudent},
			models.RoleStaff:   {ID: 2, RoleName: models.RoleStaff},
		},
	}
}

func (m *mockUserRepo) CreateStudent(_ context.Context, student *models.Student) (int64, error) {
	if _, ok := m.students[student.StudentNumber]; ok {
		return 0, repositories.ErrUserAlreadyExists
	}
	m.nextID++
	student.ID = m.nextID
	m.students[student.StudentNumber] = student
	return student.ID, nil
}

func (m *mockUserRepo) ListStudents(_ context.Context) ([]*models.Student, error) {
	result := make([]*models.Student, 0, len(m.students))
	for _, s := range m.students {
		result = append(result, s)
	}
	return result, nil
}

func (m *mockUserRepo) UpdateStudentPassword(_ context.Context, studentNumber, hashedPassword string) error {
	student, ok := m.students[studentNumber]
	if !ok {
		return repositories.ErrUserNotFound
	}
	student.Password = hashedPassword
	return nil
}

func (m *mockUserRepo) GetRoleByName(_ context.Context, roleName string) (*models.Role, error) {
	role, ok := m.roles[roleName]
	if !ok {
		return nil, repositories.ErrRoleNotFound
	}
	return role, nil
}

type mockScheduleRepo struct {
	entries map[string]*models.StaffScheduleEntry
	nextID  int64
}

func newMockScheduleRepo() *mockScheduleRepo {
	return &mockScheduleRepo{entries: make(map[string]*models.StaffScheduleEntry)}
}

func scheduleKey(staffName, month string, day int) string {
	return fmt.Sprintf("%s|%s|%d", staffName, month, day)
}

func (m *mockScheduleRepo) Upsert(_ context.Context, e *models.StaffScheduleEntry) (int64, error) {
	key := scheduleKey(e.StaffName, e.Month, e.Day)
	if existing, ok := m.entries[key]; ok {
		e.ID = existing.ID
		e.CreatedAt = existing.CreatedAt
	} else {
		m.nextID++
		e.ID = m.nextID
		e.CreatedAt = time.Now()
	}
	e.UpdatedAt = time.Now()
	m.entries[key] = e
	return e.ID, nil
}

func (m *mockScheduleRepo) ListForDay(_ context.Context, month string, day int) ([]*models.StaffScheduleEntry, error) {
	result := make([]*models.StaffScheduleEntry, 0)
	for _, e := range m.entries {
		if e.Month == month && e.Day == day {
			result = append(result, e)
		}
	}
	return result, nil
}

type mockEmergencyRepo struct {
	reports map[int64]map[string]interface{}
	nextID  int64
}

func newMockEmergencyRepo() *mockEmergencyRepo {
	return &mockEmergencyRepo{reports: make(map[int64]map[string]interface{})}
}

func (m *mockEmergencyRepo) Create(_ context.Context, record map[string]interface{}) (int64, error) {
	m.nextID++
	m.reports[m.nextID] = record
	return m.nextID, nil
}

func (m *mockEmergencyRepo) List(_ context.Context) ([]*models.EmergencySummary, error) {
	result := make([]*models.EmergencySummary, 0, len(m.reports))
	for id := range m.reports {
		result = append(result, &models.EmergencySummary{ID: id})
	}
	return result, nil
}

func (m *mockEmergencyRepo) GetByID(_ context.Context, id int64) (map[string]interface{}, error) {
	record, ok := m.reports[id]
	if !ok {
		return nil, repositories.ErrEmergencyNotFound
	}
	return record, nil
}

func (m *mockEmergencyRepo) Update(_ context.Context, id int64, record map[string]interface{}) error {
	if _, ok := m.reports[id]; !ok {
		return repositories.ErrEmergencyNotFound
	}
	m.reports[id] = record
	return nil
}

func (m *mockEmergencyRepo) Delete(_ context.Context, id int64) error {
	if _, ok := m.reports[id]; !ok {
		return repositories.ErrEmergencyNotFound
	}
	delete(m.reports, id)
	return nil
}
