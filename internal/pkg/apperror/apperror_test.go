package apperror

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestKindOf(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want Kind
	}{
		{"app error", New(KindNotFound, "user not found"), KindNotFound},
		{"wrapped app error", fmt.Errorf("outer: %w", New(KindLocked, "locked")), KindLocked},
		{"deadline", fmt.Errorf("query: %w", context.DeadlineExceeded), KindDependencyUnavailable},
		{"plain error", errors.New("boom"), KindInternal},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, KindOf(tt.err))
		})
	}
}

func TestHTTPStatus(t *testing.T) {
	assert.Equal(t, http.StatusNotFound, HTTPStatus(KindNotFound))
	assert.Equal(t, http.StatusUnauthorized, HTTPStatus(KindInvalidCredential))
	assert.Equal(t, http.StatusUnauthorized, HTTPStatus(KindSessionInvalid))
	assert.Equal(t, http.StatusTooManyRequests, HTTPStatus(KindLocked))
	assert.Equal(t, http.StatusBadRequest, HTTPStatus(KindInvalidInput))
	assert.Equal(t, http.StatusConflict, HTTPStatus(KindConflict))
	assert.Equal(t, http.StatusInternalServerError, HTTPStatus(KindDependencyUnavailable))
	assert.Equal(t, http.StatusInternalServerError, HTTPStatus(KindInternal))
}

func TestPublicMessage_HidesInternals(t *testing.T) {
	err := Dependency("failed to query users", errors.New("dial tcp 10.0.0.5:5432: i/o timeout"))

	assert.Equal(t, GenericMessage, PublicMessage(err))
	assert.Equal(t, GenericMessage, PublicMessage(errors.New("raw")))
	assert.Equal(t, "Invalid credentials", PublicMessage(New(KindInvalidCredential, "Invalid credentials")))
}

func TestRetryAfter(t *testing.T) {
	err := fmt.Errorf("guard: %w", Locked("Account locked", 10*time.Minute))

	assert.True(t, Is(err, KindLocked))
	assert.Equal(t, 10*time.Minute, RetryAfter(err))
	assert.Zero(t, RetryAfter(errors.New("other")))
}
