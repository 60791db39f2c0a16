package apimodels

type Response struct {
	Status  string      `json:"status"`            // hasil pemrosesan fail/success
	Message string      `json:"message,omitempty"` // pesan kesalahan
	Data    interface{} `json:"data,omitempty"`    // data respons
}

func NewError(message string) Response {
	return Response{
		Status:  "fail",
		Message: message,
	}
}

func NewResponse(data interface{}) Response {
	return Response{
		Status: "success",
		Data:   data,
	}
}

func NewMessage(message string, data interface{}) Response {
	return Response{
		Status:  "success",
		Message: message,
		Data:    data,
	}
}

// TotalPages - minimal 1 halaman walau data kosong
func TotalPages(rowCount int64, limit int) int {
	if limit <= 0 || rowCount == 0 {
		return 1
	}
	return int((rowCount + int64(limit) - 1) / int64(limit))
}
