package attendance

import "errors"

// Attendance domain errors
var (
	ErrAlreadyPunchedIn  = errors.New("Already punched in for today")
	ErrAlreadyPunchedOut = errors.New("Already punched out for today")
	ErrNotPunchedIn      = errors.New("No punch-in recorded for today")
	ErrPunchOutBeforeIn  = errors.New("Punch-out cannot be before punch-in")

	ErrRecordNotFound = errors.New("attendance record not found")
)
