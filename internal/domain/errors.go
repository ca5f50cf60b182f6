package domain

import "errors"

var (
	// ErrQuizCompleted is returned when an answer is submitted after the last question.
	ErrQuizCompleted = errors.New("quiz already completed")
	// ErrInvalidSelection indicates input that is not one of the option labels.
	ErrInvalidSelection = errors.New("selection must be one of A, B, C, D")
	// ErrInvalidAnswerIndex indicates a configured answer position outside the option range.
	ErrInvalidAnswerIndex = errors.New("answer index must be between 0 and 3")
	// ErrInvalidMode indicates a display mode other than 0 or 1.
	ErrInvalidMode = errors.New("mode must be 0 (in order) or 1 (randomized)")
	// ErrUnknownBackend indicates an unsupported progress backend name.
	ErrUnknownBackend = errors.New("unknown progress backend")
	// ErrBackendNotConfigured indicates a selected backend is missing its connection settings.
	ErrBackendNotConfigured = errors.New("progress backend not configured")
)
