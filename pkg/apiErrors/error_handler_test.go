package apiErrors

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteError(t *testing.T) {
	tests := []struct {
		code   string
		status int
	}{
		{code: ErrInvalidPeriod, status: http.StatusBadRequest},
		{code: ErrReportNotFound, status: http.StatusNotFound},
		{code: ErrInsufficientPrivilege, status: http.StatusForbidden},
		{code: ErrSyncAlreadyActive, status: http.StatusConflict},
		{code: "UNKNOWN", status: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.code, func(t *testing.T) {
			rec := httptest.NewRecorder()

			WriteError(rec, tt.code, "mensagem", map[string]string{"field": "period"})

			assert.Equal(t, tt.status, rec.Code)
			assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

			var body APIError
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			assert.Equal(t, tt.code, body.Code)
			assert.Equal(t, "mensagem", body.Message)
		})
	}
}

func TestFromError(t *testing.T) {
	assert.Equal(t, ErrInternalServer, FromError(nil, ErrExternalService).Code)

	apiErr := FromError(errors.New("backend fora do ar"), ErrExternalService)
	assert.Equal(t, ErrExternalService, apiErr.Code)
	assert.Equal(t, "backend fora do ar", apiErr.Message)
}
