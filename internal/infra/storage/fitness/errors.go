package fitness

import "errors"

var (
	ErrCourseNotFound       = errors.New("fitness.repository: course not found")
	ErrRegistrationNotFound = errors.New("fitness.repository: registration not found")
	ErrMembershipNotFound   = errors.New("fitness.repository: membership not found")

	ErrBuildQuery = errors.New("fitness.repository: failed to build query")
	ErrExecQuery  = errors.New("fitness.repository: failed to execute query")
	ErrScanRow    = errors.New("fitness.repository: failed to scan row")
)
