package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/chwc/clinicops/internal/app/models"
	"github.com/chwc/clinicops/internal/pkg/dberrors"
	"github.com/chwc/clinicops/internal/pkg/logger"
)

// User error types
var (
	ErrUserNotFound      = errors.New("user not found")
	ErrUserAlreadyExists = errors.New("user already exists")
	ErrRoleNotFound      = errors.New("role not found")
)

// UserRepository handles staff and student account database operations
type UserRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewUserRepository creates a new UserRepository
func NewUserRepository(db *pgxpool.Pool) *UserRepository {
	return &UserRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

// FindStaffByIdentifier looks up a staff account by staff number or username
func (r *UserRepository) FindStaffByIdentifier(ctx context.Context, identifier string) (*models.StaffUser, error) {
	sqlQuery, args, err := r.sb.Select(
		"u.id", "u.username", "u.email", "u.password",
		"u.staff_number", "u.full_name", "u.role_id", "r.role_name", "u.created_at",
	).
		From("users u").
		Join("roles r ON u.role_id = r.id").
		Where(squirrel.Or{
			squirrel.Eq{"u.staff_number": identifier},
			squirrel.Eq{"u.username": identifier},
		}).
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building find staff SQL")
		return nil, fmt.Errorf("failed to build query: %w", err)
	}

	var user models.StaffUser
	err = r.db.QueryRow(ctx, sqlQuery, args...).Scan(
		&user.ID, &user.Username, &user.Email, &user.Password,
		&user.StaffNumber, &user.FullName, &user.RoleID, &user.RoleName, &user.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrUserNotFound
		}
		logger.Error().Err(err).Str("identifier", identifier).Msg("Error scanning staff user")
		return nil, fmt.Errorf("failed to find staff user: %w", err)
	}
	return &user, nil
}

// FindStudentByIdentifier looks up a student account by student number or username
func (r *UserRepository) FindStudentByIdentifier(ctx context.Context, identifier string) (*models.Student, error) {
	sqlQuery, args, err := r.sb.Select(
		"s.id", "s.username", "s.email", "s.password",
		"s.student_number", "s.full_name", "s.role_id", "r.role_name", "s.created_at",
	).
		From("students s").
		Join("roles r ON s.role_id = r.id").
		Where(squirrel.Or{
			squirrel.Eq{"s.student_number": identifier},
			squirrel.Eq{"s.username": identifier},
		}).
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building find student SQL")
		return nil, fmt.Errorf("failed to build query: %w", err)
	}

	var student models.Student
	err = r.db.QueryRow(ctx, sqlQuery, args...).Scan(
		&student.ID, &student.Username, &student.Email, &student.Password,
		&student.StudentNumber, &student.FullName, &student.RoleID, &student.RoleName, &student.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrUserNotFound
		}
		logger.Error().Err(err).Str("identifier", identifier).Msg("Error scanning student")
		return nil, fmt.Errorf("failed to find student: %w", err)
	}
	return &student, nil
}

// CreateStudent inserts a new student account
func (r *UserRepository) CreateStudent(ctx context.Context, student *models.Student) (int64, error) {
	sqlQuery, args, err := r.sb.Insert("students").
		Columns("username", "email", "password", "student_number", "full_name", "role_id").
		Values(student.Username, student.Email, student.Password, student.StudentNumber, student.FullName, student.RoleID).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building create student SQL")
		return 0, fmt.Errorf("failed to build query: %w", err)
	}

	var id int64
	if err := r.db.QueryRow(ctx, sqlQuery, args...).Scan(&id); err != nil {
		if dberrors.IsUniqueViolation(err) {
			return 0, ErrUserAlreadyExists
		}
		logger.Error().Err(err).Str("studentNumber", student.StudentNumber).Msg("Error creating student account")
		return 0, fmt.Errorf("failed to create student: %w", err)
	}

	logger.Info().Int64("studentID", id).Str("studentNumber", student.StudentNumber).Msg("Student account created")
	return id, nil
}

// CreateStaff inserts a new staff account
func (r *UserRepository) CreateStaff(ctx context.Context, user *models.StaffUser) (int64, error) {
	sqlQuery, args, err := r.sb.Insert("users").
		Columns("username", "email", "password", "staff_number", "full_name", "role_id").
		Values(user.Username, user.Email, user.Password, user.StaffNumber, user.FullName, user.RoleID).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building create staff SQL")
		return 0, fmt.Errorf("failed to build query: %w", err)
	}

	var id int64
	if err := r.db.QueryRow(ctx, sqlQuery, args...).Scan(&id); err != nil {
		if dberrors.IsUniqueViolation(err) {
			return 0, ErrUserAlreadyExists
		}
		logger.Error().Err(err).Str("staffNumber", user.StaffNumber).Msg("Error creating staff account")
		return 0, fmt.Errorf("failed to create staff: %w", err)
	}
	return id, nil
}

// ListStudents returns every student account ordered by id
func (r *UserRepository) ListStudents(ctx context.Context) ([]*models.Student, error) {
	sqlQuery, args, err := r.sb.Select(
		"s.id", "s.username", "s.email", "s.password",
		"s.student_number", "s.full_name", "s.role_id", "r.role_name", "s.created_at",
	).
		From("students s").
		Join("roles r ON s.role_id = r.id").
		OrderBy("s.id").
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building list students SQL")
		return nil, fmt.Errorf("failed to build query: %w", err)
	}

	rows, err := r.db.Query(ctx, sqlQuery, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error listing student accounts")
		return nil, fmt.Errorf("failed to list students: %w", err)
	}
	defer rows.Close()

	students := make([]*models.Student, 0)
	for rows.Next() {
		var student models.Student
		if err := rows.Scan(
			&student.ID, &student.Username, &student.Email, &student.Password,
			&student.StudentNumber, &student.FullName, &student.RoleID, &student.RoleName, &student.CreatedAt,
		); err != nil {
			logger.Error().Err(err).Msg("Error scanning student row")
			return nil, fmt.Errorf("failed to scan student: %w", err)
		}
		students = append(students, &student)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate students: %w", err)
	}
	return students, nil
}

// UpdateStudentPassword replaces the stored password hash for a student
func (r *UserRepository) UpdateStudentPassword(ctx context.Context, studentNumber, hashedPassword string) error {
	sqlQuery, args, err := r.sb.Update("students").
		Set("password", hashedPassword).
		Where(squirrel.Eq{"student_number": studentNumber}).
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building reset password SQL")
		return fmt.Errorf("failed to build query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, sqlQuery, args...)
	if err != nil {
		logger.Error().Err(err).Str("studentNumber", studentNumber).Msg("Error resetting student password")
		return fmt.Errorf("failed to reset password: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return ErrUserNotFound
	}

	logger.Info().Str("studentNumber", studentNumber).Msg("Student password reset")
	return nil
}

// GetRoleByName resolves a role id by its name
func (r *UserRepository) GetRoleByName(ctx context.Context, roleName string) (*models.Role, error) {
	sqlQuery, args, err := r.sb.Select("id", "role_name").
		From("roles").
		Where(squirrel.Eq{"role_name": roleName}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build query: %w", err)
	}

	var role models.Role
	err = r.db.QueryRow(ctx, sqlQuery, args...).Scan(&role.ID, &role.RoleName)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrRoleNotFound
		}
		return nil, fmt.Errorf("failed to find role: %w", err)
	}
	return &role, nil
}
