package client

import (
	"fmt"

	"github.com/pkg/errors"
)

const FallbackErrorMessage = "Terjadi kesalahan koneksi atau server"

// ErrSessionExpired - server menolak token, sesi lokal sudah dihapus
var ErrSessionExpired = errors.New("sesi berakhir")

type APIError struct {
	Status  int
	Message string
	cause   error
}

func (e *APIError) Error() string {
	if e.Status == 0 {
		return e.Message
	}
	return fmt.Sprintf("%d: %s", e.Status, e.Message)
}

func (e *APIError) Unwrap() error {
	return e.cause
}

// StatusOf - 0 bila err bukan APIError atau server tidak terjangkau
func StatusOf(err error) int {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.Status
	}
	return 0
}
