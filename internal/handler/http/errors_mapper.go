package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-shop-api/internal/service"
	"github.com/MKhiriev/go-shop-api/internal/store"
)

// errorStatusMap translates service- and store-level sentinel errors into
// HTTP status codes. Entities that are absent map to 404, ownership
// violations to 403, and everything else — including low-level store
// failures — to 400, matching the API's historical contract of answering
// 400 on any unexpected failure.
var errorStatusMap = map[error]int{
	service.ErrInvalidDataProvided:     http.StatusBadRequest,
	service.ErrWrongPassword:           http.StatusBadRequest,
	service.ErrTokenIsExpiredOrInvalid: http.StatusBadRequest,
	service.ErrTokenCreationFailed:     http.StatusInternalServerError,
	service.ErrNotOrderOwner:           http.StatusForbidden,

	store.ErrEmailAlreadyExists:    http.StatusBadRequest,
	store.ErrNoUserWasFound:        http.StatusNotFound,
	store.ErrItemNotFound:          http.StatusNotFound,
	store.ErrOrderNotFound:         http.StatusNotFound,
	store.ErrInvalidOrderReference: http.StatusBadRequest,

	store.ErrBuildingSQLQuery:   http.StatusBadRequest,
	store.ErrExecutingQuery:     http.StatusBadRequest,
	store.ErrExecutingStatement: http.StatusBadRequest,
	store.ErrScanningRow:        http.StatusBadRequest,
	store.ErrScanningRows:       http.StatusBadRequest,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusBadRequest
}
