package errorvalues

import "errors"

var (
	ErrUserExists       = errors.New("such user already exists")
	ErrUserNotFound     = errors.New("user doesn't exists")
	ErrWrongCredentials = errors.New("wrong email or password")
	ErrInvalidToken     = errors.New("invalid token")
	ErrValidation       = errors.New("validation error")

	ErrProfileNotFound = errors.New("profile doesn't exist")
	ErrProfileLocked   = errors.New("profile is locked and cannot be changed")

	ErrJourneyNotFound     = errors.New("journey doesn't exist")
	ErrJourneyNotLoaded    = errors.New("journey progress could not be loaded")
	ErrJourneyNotPersisted = errors.New("journey progress could not be saved")
	ErrDayLocked           = errors.New("day is locked")
	ErrDayOutOfRange       = errors.New("day is out of journey range")

	ErrContentNotFound = errors.New("no content for this day")

	ErrSessionNotFound = errors.New("no open practice session")
)
