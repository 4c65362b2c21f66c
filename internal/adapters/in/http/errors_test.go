package http

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"moveout/internal/pkg/errs"
)

func TestStatusFromError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"missing value", errs.NewValueIsRequiredError("volume"), http.StatusBadRequest},
		{"invalid value", errs.NewValueIsInvalidError("address"), http.StatusBadRequest},
		{"out of range", errs.NewValueIsOutOfRangeError("volume", -1, 1, 100), http.StatusBadRequest},
		{"wrong actor", errs.NewUnauthorizedError("actor", "order"), http.StatusUnauthorized},
		{"declined charge", errs.NewPaymentFailedError("charge", 15, nil), http.StatusPaymentRequired},
		{"unknown object", errs.NewObjectNotFoundError("job", "missing"), http.StatusNotFound},
		{"bad transition", errs.NewInvalidTransitionError("job", "Available", "PickedUp"), http.StatusConflict},
		{"lost race", errs.NewAlreadyAssignedError("job-1"), http.StatusConflict},
		{"wrong state", errs.NewInvalidStateError("order", "o-1", "Accepted"), http.StatusConflict},
		{"double cancel", errs.NewAlreadyCancelledError("order", "o-1"), http.StatusConflict},
		{"duplicate", errs.NewAlreadyExistsError("order", "o-1"), http.StatusConflict},
		{"unclassified", assert.AnError, http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, statusFromError(tt.err))
		})
	}
}
