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
	"github.com/ecalderon/guidancehub/internal/pkg/logger"
)

// AppointmentRepository handles appointment database operations
type AppointmentRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewAppointmentRepository creates a new AppointmentRepository
func NewAppointmentRepository(db *pgxpool.Pool) *AppointmentRepository {
	return &AppointmentRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

const appointmentColumns = "id, student_id, counselor_id, student_name, student_email, counselor_name, " +
	"appointment_date, appointment_time, reason, status, remarks, created_at"

const appointmentInsert = `
	INSERT INTO appointments (student_id, counselor_id, student_name, student_email, counselor_name,
	                          appointment_date, appointment_time, reason, status, created_at)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
	RETURNING id`

// Create inserts a new appointment and sets its generated ID. Every
// submission creates a fresh record; identical requests are not collapsed.
func (r *AppointmentRepository) Create(ctx context.Context, appt *models.Appointment) error {
	err := r.db.QueryRow(ctx, appointmentInsert,
		appt.StudentID, appt.CounselorID, appt.StudentName, appt.StudentEmail, appt.CounselorName,
		appt.Date, appt.Time, appt.Reason, appt.Status, appt.CreatedAt).
		Scan(&appt.ID)
	if err != nil {
		return fmt.Errorf("error creating appointment: %w", err)
	}

	logger.Info().Int64("appointmentID", appt.ID).Int64("studentID", appt.StudentID).
		Str("date", appt.Date).Str("time", appt.Time).Msg("Appointment created")
	return nil
}

// CreateBatch inserts the appointments in one transaction; either all rows
// are created or none are.
func (r *AppointmentRepository) CreateBatch(ctx context.Context, appts []*models.Appointment) error {
	return db.WithTransaction(ctx, r.db, func(ctx context.Context, tx pgx.Tx) error {
		batch := &pgx.Batch{}
		for _, appt := range appts {
			batch.Queue(appointmentInsert,
				appt.StudentID, appt.CounselorID, appt.StudentName, appt.StudentEmail, appt.CounselorName,
				appt.Date, appt.Time, appt.Reason, appt.Status, appt.CreatedAt)
		}

		results := tx.SendBatch(ctx, batch)
		defer results.Close()

		for _, appt := range appts {
			if err := results.QueryRow().Scan(&appt.ID); err != nil {
				return fmt.Errorf("error creating appointment for student %d: %w", appt.StudentID, err)
			}
		}
		return results.Close()
	})
}

// GetByID retrieves an appointment by ID
func (r *AppointmentRepository) GetByID(ctx context.Context, id int64) (*models.Appointment, error) {
	row := r.db.QueryRow(ctx, `
		SELECT `+appointmentColumns+`
		FROM appointments
		WHERE id = $1`,
		id)

	appt, err := scanAppointment(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrAppointmentNotFound
		}
		return nil, err
	}
	return appt, nil
}

// ListByCounselor retrieves a counselor's appointments in date order, with an
// optional status filter.
func (r *AppointmentRepository) ListByCounselor(ctx context.Context, counselorID int64, status *models.AppointmentStatus) ([]*models.Appointment, error) {
	q := r.sb.Select(appointmentColumns).
		From("appointments").
		Where(squirrel.Eq{"counselor_id": counselorID}).
		OrderBy("appointment_date", "appointment_time")

	if status != nil {
		q = q.Where(squirrel.Eq{"status": *status})
	}

	return r.list(ctx, q)
}

// ListByStudent retrieves a student's appointments, newest first
func (r *AppointmentRepository) ListByStudent(ctx context.Context, studentID int64) ([]*models.Appointment, error) {
	q := r.sb.Select(appointmentColumns).
		From("appointments").
		Where(squirrel.Eq{"student_id": studentID}).
		OrderBy("created_at DESC")

	return r.list(ctx, q)
}

// ListByStudentWithStatuses retrieves a student's appointments limited to the
// given statuses, in date order.
func (r *AppointmentRepository) ListByStudentWithStatuses(ctx context.Context, studentID int64, statuses []models.AppointmentStatus) ([]*models.Appointment, error) {
	q := r.sb.Select(appointmentColumns).
		From("appointments").
		Where(squirrel.Eq{"student_id": studentID, "status": statuses}).
		OrderBy("appointment_date", "appointment_time")

	return r.list(ctx, q)
}

// UpdateStatus writes a new lifecycle status
func (r *AppointmentRepository) UpdateStatus(ctx context.Context, id int64, status models.AppointmentStatus) error {
	tag, err := r.db.Exec(ctx, `
		UPDATE appointments SET status = $1 WHERE id = $2`,
		status, id)
	if err != nil {
		return fmt.Errorf("error updating appointment status: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrAppointmentNotFound
	}

	logger.Info().Int64("appointmentID", id).Str("status", string(status)).Msg("Appointment status updated")
	return nil
}

// SetRemarks overwrites the appointment's session remark
func (r *AppointmentRepository) SetRemarks(ctx context.Context, id int64, remarks string) error {
	tag, err := r.db.Exec(ctx, `
		UPDATE appointments SET remarks = $1 WHERE id = $2`,
		remarks, id)
	if err != nil {
		return fmt.Errorf("error setting appointment remarks: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrAppointmentNotFound
	}
	return nil
}

func (r *AppointmentRepository) list(ctx context.Context, q squirrel.SelectBuilder) ([]*models.Appointment, error) {
	sql, args, err := q.ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build appointment list query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("error listing appointments: %w", err)
	}
	defer rows.Close()

	appts := []*models.Appointment{}
	for rows.Next() {
		appt, err := scanAppointment(rows)
		if err != nil {
			return nil, err
		}
		appts = append(appts, appt)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating appointment rows: %w", err)
	}

	return appts, nil
}

func scanAppointment(row pgx.Row) (*models.Appointment, error) {
	appt := &models.Appointment{}
	err := row.Scan(
		&appt.ID, &appt.StudentID, &appt.CounselorID,
		&appt.StudentName, &appt.StudentEmail, &appt.CounselorName,
		&appt.Date, &appt.Time, &appt.Reason, &appt.Status, &appt.Remarks, &appt.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, err
		}
		return nil, fmt.Errorf("error scanning appointment row: %w", err)
	}
	return appt, nil
}
