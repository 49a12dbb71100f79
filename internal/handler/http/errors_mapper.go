package http

import (
	"errors"
	"net/http"

	"github.com/reenu-kutty/dear-diary/internal/service"
	"github.com/reenu-kutty/dear-diary/internal/store"
)

var errorStatusMap = map[error]int{
	service.ErrInvalidDataProvided:     http.StatusBadRequest,
	service.ErrWrongPassword:           http.StatusUnauthorized,
	service.ErrTokenIsExpiredOrInvalid: http.StatusUnauthorized,
	service.ErrValidationEmptyContent:  http.StatusBadRequest,
	service.ErrValidationEmptyRange:    http.StatusBadRequest,
	service.ErrValidationRangeOrder:    http.StatusBadRequest,

	store.ErrLoginAlreadyExists:  http.StatusConflict,
	store.ErrNoUserWasFound:      http.StatusNotFound,
	store.ErrEntryNotFound:       http.StatusNotFound,
	store.ErrCacheRecordNotFound: http.StatusNotFound,

	store.ErrBuildingSQLQuery:   http.StatusInternalServerError,
	store.ErrExecutingQuery:     http.StatusInternalServerError,
	store.ErrExecutingStatement: http.StatusInternalServerError,
	store.ErrScanningRow:        http.StatusInternalServerError,
	store.ErrScanningRows:       http.StatusInternalServerError,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}
