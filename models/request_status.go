package models

import "strings"

type RequestStatus string

const (
	RequestStatusPending    RequestStatus = "menunggu"
	RequestStatusInProgress RequestStatus = "diproses"
	RequestStatusDone       RequestStatus = "selesai"
	RequestStatusRejected   RequestStatus = "ditolak"
)

const RequestStatusDefaultColor = "gray"

var requestStatusHumanName = map[RequestStatus]string{
	RequestStatusPending:    "Menunggu",
	RequestStatusInProgress: "Diproses",
	RequestStatusDone:       "Selesai",
	RequestStatusRejected:   "Ditolak",
}

var requestStatusColor = map[RequestStatus]string{
	RequestStatusPending:    "amber",
	RequestStatusInProgress: "blue",
	RequestStatusDone:       "green",
	RequestStatusRejected:   "red",
}

// RequestStatusList urutan sama dengan pilihan status di halaman admin
var RequestStatusList = []RequestStatus{
	RequestStatusPending,
	RequestStatusInProgress,
	RequestStatusDone,
	RequestStatusRejected,
}

func ParseRequestStatus(value string) (RequestStatus, bool) {
	status := RequestStatus(strings.ToLower(strings.TrimSpace(value)))
	_, ok := requestStatusHumanName[status]
	return status, ok
}

func (s RequestStatus) ToHuman() string {
	status, _ := ParseRequestStatus(string(s))
	if human, exist := requestStatusHumanName[status]; exist {
		return human
	}
	return string(s)
}

// Color - nilai lama atau tidak dikenal menjadi abu-abu
func (s RequestStatus) Color() string {
	status, _ := ParseRequestStatus(string(s))
	if color, exist := requestStatusColor[status]; exist {
		return color
	}
	return RequestStatusDefaultColor
}

const (
	RequestTypeAddFarm     = "Tambah Kandang"
	RequestTypeAddPeternak = "Tambah Peternak"
)
