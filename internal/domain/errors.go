package domain

import "errors"

var (
	// ErrSourceNotFound is returned when a quiz-bank file is missing or unreadable.
	ErrSourceNotFound = errors.New("quiz source not found")
	// ErrEmptyQuizBank is returned when a session is requested for a bank with no playable questions.
	ErrEmptyQuizBank = errors.New("quiz bank is empty")
	// ErrInvalidState indicates an operation the session state machine does not allow right now.
	ErrInvalidState = errors.New("invalid session state")
	// ErrInvalidInput indicates an answer label outside A-D or a malformed authored question.
	ErrInvalidInput = errors.New("invalid input")
	// ErrBankNotFound indicates the requested quiz bank could not be resolved.
	ErrBankNotFound = errors.New("quiz bank not found")
	// ErrPlayNotFound is returned when a play has not been started or was already left.
	ErrPlayNotFound = errors.New("play not found")
)
