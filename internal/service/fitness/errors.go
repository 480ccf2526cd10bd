package fitness

import "errors"

var (
	ErrCourseNotFound       = errors.New("fitness course not found")
	ErrRegistrationNotFound = errors.New("course registration not found")
	ErrMembershipNotFound   = errors.New("membership not found")

	// ErrCourseFull возвращается, когда в группе нет мест
	ErrCourseFull = errors.New("fitness course is full")

	// ErrCourseInactive возвращается при записи на закрытый курс
	ErrCourseInactive = errors.New("fitness course is not active")

	// ErrStartDateInPast возвращается для абонемента с датой начала в прошлом
	ErrStartDateInPast = errors.New("membership start date is in the past")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)
