package models

import "github.com/pkg/errors"

var (
	ErrNotFound     = errors.New("data tidak ditemukan")
	ErrForbidden    = errors.New("akses ditolak")
	ErrConflict     = errors.New("konflik data")
	ErrValidation   = errors.New("data tidak valid")
	ErrUnauthorized = errors.New("sesi tidak valid")
)

// HumanError - pesan yang aman ditampilkan ke pengguna
type HumanError struct {
	kind    error
	message string
}

func (e HumanError) Error() string {
	return e.message
}

func (e HumanError) Unwrap() error {
	return e.kind
}

func (e HumanError) Message() string {
	return e.message
}

func NotFoundError(message string) error {
	return HumanError{kind: ErrNotFound, message: message}
}

func ForbiddenError(message string) error {
	return HumanError{kind: ErrForbidden, message: message}
}

func ConflictError(message string) error {
	return HumanError{kind: ErrConflict, message: message}
}

func ValidationError(message string) error {
	return HumanError{kind: ErrValidation, message: message}
}

func UnauthorizedError(message string) error {
	return HumanError{kind: ErrUnauthorized, message: message}
}
