package services

// Services defined in this package:
// - AuthService: login and student self-registration
// - CounselorService: counselor accounts and assignment management
// - StudentService: student records, remarks and dashboard stats
// - AppointmentService: the appointment scheduling workflow
