package domain

import "errors"

var (
	ErrUserNotFound    = errors.New("user not found")
	ErrStudentNotFound = errors.New("student not found")
	ErrCompanyNotFound = errors.New("company not found")
	ErrAdminNotFound   = errors.New("admin not found")
	ErrJobNotFound     = errors.New("job not found")

	ErrDuplicateEmail     = errors.New("email already exists")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrAlreadyApplied = errors.New("already applied to this job")
	ErrNotJobOwner    = errors.New("job belongs to another company")
)
