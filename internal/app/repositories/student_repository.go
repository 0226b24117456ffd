package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/ecalderon/guidancehub/internal/app/models"
	"github.com/ecalderon/guidancehub/internal/db"
	"github.com/ecalderon/guidancehub/internal/pkg/apperrors"
	"github.com/ecalderon/guidancehub/internal/pkg/dberrors"
	"github.com/ecalderon/guidancehub/internal/pkg/logger"
)

// StudentFilter narrows a student listing. A nil Scope means unrestricted;
// a non-nil empty Scope matches nothing (a counselor with no assignments
// sees no students).
type StudentFilter struct {
	SentToAdmin *bool
	Level       string
	Course      string
	Year        string
	Section     string
	Scope       []models.Assignment
}

// StudentRepository handles student database operations
type StudentRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewStudentRepository creates a new StudentRepository
func NewStudentRepository(db *pgxpool.Pool) *StudentRepository {
	return &StudentRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

const studentSelectColumns = `
	s.id, s.user_id, s.student_no, s.level, s.course, s.year, s.section,
	s.gender, s.phone_no, s.address, s.dob, s.counseling_done, s.sent_to_admin,
	u.id, u.email, u.password, u.first_name, u.last_name, u.role_type, u.created_at, u.updated_at`

// Create inserts the student's user account and student row in one transaction
func (r *StudentRepository) Create(ctx context.Context, user *models.User, student *models.Student) error {
	course, year, section := levelColumns(student.Level)

	err := db.WithTransaction(ctx, r.db, func(ctx context.Context, tx pgx.Tx) error {
		err := tx.QueryRow(ctx, `
			INSERT INTO users (email, password, first_name, last_name, role_type)
			VALUES ($1, $2, $3, $4, $5)
			RETURNING id, created_at, updated_at`,
			user.Email, user.Password, user.FirstName, user.LastName, models.RoleStudent).
			Scan(&user.ID, &user.CreatedAt, &user.UpdatedAt)
		if err != nil {
			if dberrors.IsDuplicateConstraintError(err, "users_email_key") {
				return apperrors.ErrEmailAlreadyExists
			}
			return fmt.Errorf("error creating student user: %w", err)
		}

		student.UserID = user.ID
		err = tx.QueryRow(ctx, `
			INSERT INTO students (user_id, student_no, level, course, year, section,
			                      gender, phone_no, address, dob, counseling_done, sent_to_admin)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
			RETURNING id`,
			user.ID, student.StudentNo, student.Level.Level, course, year, section,
			student.Gender, student.PhoneNo, student.Address, student.DOB,
			student.CounselingDone, student.SentToAdmin).
			Scan(&student.ID)
		if err != nil {
			if dberrors.IsDuplicateConstraintError(err, "students_student_no_key") {
				return apperrors.ErrStudentNoAlreadyExists
			}
			return fmt.Errorf("error creating student: %w", err)
		}
		return nil
	})
	if err != nil {
		return err
	}

	student.User = user
	logger.Info().Int64("studentID", student.ID).Str("studentNo", student.StudentNo).Msg("Student registered")
	return nil
}

// GetByID retrieves a student with its user account and remark list
func (r *StudentRepository) GetByID(ctx context.Context, id int64) (*models.Student, error) {
	row := r.db.QueryRow(ctx, `
		SELECT`+studentSelectColumns+`
		FROM students s
		JOIN users u ON u.id = s.user_id
		WHERE s.id = $1`,
		id)

	student, err := scanStudent(row)
	if err != nil {
		return nil, err
	}

	student.Remarks, err = r.GetRemarks(ctx, student.ID)
	if err != nil {
		return nil, err
	}
	return student, nil
}

// GetByUserID retrieves a student by its user account ID
func (r *StudentRepository) GetByUserID(ctx context.Context, userID int64) (*models.Student, error) {
	row := r.db.QueryRow(ctx, `
		SELECT`+studentSelectColumns+`
		FROM students s
		JOIN users u ON u.id = s.user_id
		WHERE s.user_id = $1`,
		userID)

	return scanStudent(row)
}

// StudentNoExists checks if a student number is already registered
func (r *StudentRepository) StudentNoExists(ctx context.Context, studentNo string) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx, `
		SELECT EXISTS(SELECT 1 FROM students WHERE student_no = $1)`,
		studentNo).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("error checking student number: %w", err)
	}
	return exists, nil
}

// List retrieves students matching the filter, without remark lists
func (r *StudentRepository) List(ctx context.Context, filter StudentFilter) ([]*models.Student, error) {
	if filter.Scope != nil && len(filter.Scope) == 0 {
		return []*models.Student{}, nil
	}

	q := r.sb.Select(
		"s.id", "s.user_id", "s.student_no", "s.level", "s.course", "s.year", "s.section",
		"s.gender", "s.phone_no", "s.address", "s.dob", "s.counseling_done", "s.sent_to_admin",
		"u.id", "u.email", "u.password", "u.first_name", "u.last_name", "u.role_type", "u.created_at", "u.updated_at").
		From("students s").
		Join("users u ON u.id = s.user_id").
		OrderBy("u.last_name", "u.first_name")

	if filter.SentToAdmin != nil {
		q = q.Where(squirrel.Eq{"s.sent_to_admin": *filter.SentToAdmin})
	}
	if filter.Level != "" {
		q = q.Where(squirrel.Eq{"s.level": filter.Level})
	}
	if filter.Course != "" {
		q = q.Where(squirrel.Eq{"s.course": filter.Course})
	}
	if filter.Year != "" {
		q = q.Where(squirrel.Eq{"s.year": filter.Year})
	}
	if filter.Section != "" {
		q = q.Where(squirrel.Eq{"s.section": filter.Section})
	}
	if filter.Scope != nil {
		scope := squirrel.Or{}
		for _, a := range filter.Scope {
			switch a.Type {
			case models.AssignmentCourse:
				scope = append(scope, squirrel.Eq{"s.level": models.LevelHED, "s.course": a.Value})
			case models.AssignmentYear:
				scope = append(scope, squirrel.Eq{"s.level": models.LevelBED, "s.year": a.Value})
			}
		}
		q = q.Where(scope)
	}

	sql, args, err := q.ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build student list query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("error listing students: %w", err)
	}
	defer rows.Close()

	students := []*models.Student{}
	for rows.Next() {
		student, err := scanStudent(rows)
		if err != nil {
			return nil, err
		}
		students = append(students, student)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating student rows: %w", err)
	}

	return students, nil
}

// Update saves the student's profile and level fields, and the name fields of
// its user account, in one transaction. The level union columns are written
// as a group so the inactive variant's columns are nulled.
func (r *StudentRepository) Update(ctx context.Context, student *models.Student) error {
	course, year, section := levelColumns(student.Level)

	return db.WithTransaction(ctx, r.db, func(ctx context.Context, tx pgx.Tx) error {
		if student.User != nil {
			_, err := tx.Exec(ctx, `
				UPDATE users
				SET first_name = $1, last_name = $2, updated_at = CURRENT_TIMESTAMP
				WHERE id = $3`,
				student.User.FirstName, student.User.LastName, student.UserID)
			if err != nil {
				return fmt.Errorf("error updating student user: %w", err)
			}
		}

		tag, err := tx.Exec(ctx, `
			UPDATE students
			SET level = $1, course = $2, year = $3, section = $4,
			    gender = $5, phone_no = $6, address = $7, dob = $8
			WHERE id = $9`,
			student.Level.Level, course, year, section,
			student.Gender, student.PhoneNo, student.Address, student.DOB, student.ID)
		if err != nil {
			return fmt.Errorf("error updating student: %w", err)
		}
		if tag.RowsAffected() == 0 {
			return apperrors.ErrStudentNotFound
		}
		return nil
	})
}

// Delete removes a student by deleting its user account; the student row and
// its remarks cascade.
func (r *StudentRepository) Delete(ctx context.Context, id int64) error {
	tag, err := r.db.Exec(ctx, `
		DELETE FROM users
		WHERE id = (SELECT user_id FROM students WHERE id = $1)`,
		id)
	if err != nil {
		return fmt.Errorf("error deleting student: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrStudentNotFound
	}

	logger.Info().Int64("studentID", id).Msg("Student deleted")
	return nil
}

// GetRemarks retrieves a student's remark list in position order
func (r *StudentRepository) GetRemarks(ctx context.Context, studentID int64) ([]models.StudentRemark, error) {
	rows, err := r.db.Query(ctx, `
		SELECT id, student_id, text, date_label, counselor, counselor_name, appointment_id
		FROM student_remarks
		WHERE student_id = $1
		ORDER BY position`,
		studentID)
	if err != nil {
		return nil, fmt.Errorf("error retrieving remarks: %w", err)
	}
	defer rows.Close()

	remarks := []models.StudentRemark{}
	for rows.Next() {
		var remark models.StudentRemark
		err := rows.Scan(&remark.ID, &remark.StudentID, &remark.Text, &remark.DateLabel,
			&remark.Counselor, &remark.CounselorName, &remark.AppointmentID)
		if err != nil {
			return nil, fmt.Errorf("error scanning remark row: %w", err)
		}
		remarks = append(remarks, remark)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating remark rows: %w", err)
	}

	return remarks, nil
}

// AppendRemark appends a remark at the end of the student's remark list
func (r *StudentRepository) AppendRemark(ctx context.Context, studentID int64, remark *models.StudentRemark) error {
	err := r.db.QueryRow(ctx, `
		INSERT INTO student_remarks (student_id, text, date_label, counselor, counselor_name, appointment_id, position)
		SELECT $1, $2, $3, $4, $5, $6, COALESCE(MAX(position) + 1, 0)
		FROM student_remarks
		WHERE student_id = $1
		RETURNING id`,
		studentID, remark.Text, remark.DateLabel, remark.Counselor, remark.CounselorName, remark.AppointmentID).
		Scan(&remark.ID)
	if err != nil {
		return fmt.Errorf("error appending remark: %w", err)
	}

	remark.StudentID = studentID
	return nil
}

// UpdateRemarkAt overwrites the text and date label of the remark at the
// given list position.
func (r *StudentRepository) UpdateRemarkAt(ctx context.Context, studentID int64, position int, text, dateLabel string) error {
	tag, err := r.db.Exec(ctx, `
		UPDATE student_remarks
		SET text = $1, date_label = $2
		WHERE student_id = $3 AND position = $4`,
		text, dateLabel, studentID, position)
	if err != nil {
		return fmt.Errorf("error updating remark: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrRemarkNotFound
	}
	return nil
}

// SetCounselingFlags updates the counseling flags; nil fields are unchanged
func (r *StudentRepository) SetCounselingFlags(ctx context.Context, studentID int64, counselingDone, sentToAdmin *bool) error {
	tag, err := r.db.Exec(ctx, `
		UPDATE students
		SET counseling_done = COALESCE($1, counseling_done),
		    sent_to_admin = COALESCE($2, sent_to_admin)
		WHERE id = $3`,
		counselingDone, sentToAdmin, studentID)
	if err != nil {
		return fmt.Errorf("error updating counseling flags: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrStudentNotFound
	}
	return nil
}

// CountAll returns the number of students
func (r *StudentRepository) CountAll(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM students`).Scan(&count); err != nil {
		return 0, fmt.Errorf("error counting students: %w", err)
	}
	return count, nil
}

// CountByLevel returns the number of students on one level
func (r *StudentRepository) CountByLevel(ctx context.Context, level models.Level) (int64, error) {
	var count int64
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM students WHERE level = $1`, level).Scan(&count); err != nil {
		return 0, fmt.Errorf("error counting students by level: %w", err)
	}
	return count, nil
}

// CountSentToAdmin returns the number of students forwarded to the admin
func (r *StudentRepository) CountSentToAdmin(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM students WHERE sent_to_admin`).Scan(&count); err != nil {
		return 0, fmt.Errorf("error counting forwarded students: %w", err)
	}
	return count, nil
}

// levelColumns splits the level union into its nullable column values
func levelColumns(level models.LevelInfo) (course, year, section *string) {
	if level.HED != nil {
		course = &level.HED.Course
	}
	if level.BED != nil {
		year = &level.BED.Year
		section = &level.BED.Section
	}
	return course, year, section
}

// buildLevel reassembles the level union from its column values
func buildLevel(level models.Level, course, year, section *string) models.LevelInfo {
	switch level {
	case models.LevelBED:
		info := models.LevelInfo{Level: models.LevelBED, BED: &models.BEDProgram{}}
		if year != nil {
			info.BED.Year = *year
		}
		if section != nil {
			info.BED.Section = *section
		}
		return info
	default:
		info := models.LevelInfo{Level: level, HED: &models.HEDProgram{}}
		if course != nil {
			info.HED.Course = *course
		}
		return info
	}
}

func scanStudent(row pgx.Row) (*models.Student, error) {
	student := &models.Student{User: &models.User{}}
	var level models.Level
	var course, year, section *string

	err := row.Scan(
		&student.ID, &student.UserID, &student.StudentNo, &level, &course, &year, &section,
		&student.Gender, &student.PhoneNo, &student.Address, &student.DOB,
		&student.CounselingDone, &student.SentToAdmin,
		&student.User.ID, &student.User.Email, &student.User.Password,
		&student.User.FirstName, &student.User.LastName, &student.User.RoleType,
		&student.User.CreatedAt, &student.User.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrStudentNotFound
		}
		return nil, fmt.Errorf("error scanning student row: %w", err)
	}

	student.Level = buildLevel(level, course, year, section)
	return student, nil
}
