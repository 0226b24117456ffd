package repositories

import (
	"github.com/jackc/pgx/v5/pgxpool"
)

// Repositories holds all the repository instances
type Repositories struct {
	UserRepository        *UserRepository
	CounselorRepository   *CounselorRepository
	StudentRepository     *StudentRepository
	AppointmentRepository *AppointmentRepository
}

// NewRepositories initializes all repositories
func NewRepositories(db *pgxpool.Pool) *Repositories {
	return &Repositories{
		UserRepository:        NewUserRepository(db),
		CounselorRepository:   NewCounselorRepository(db),
		StudentRepository:     NewStudentRepository(db),
		AppointmentRepository: NewAppointmentRepository(db),
	}
}
