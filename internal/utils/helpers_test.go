package utils

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/procureflow/procurement-service/internal/apperrors"

	"github.com/stretchr/testify/require"
)

func TestParseLimitOffset(t *testing.T) {
	testCases := []struct {
		name       string
		limitStr   string
		offsetStr  string
		wantLimit  int
		wantOffset int
		wantErr    bool
	}{
		{name: "defaults", limitStr: "", offsetStr: "", wantLimit: 5, wantOffset: 0},
		{name: "explicit values", limitStr: "20", offsetStr: "10", wantLimit: 20, wantOffset: 10},
		{name: "limit too large", limitStr: "51", offsetStr: "", wantErr: true},
		{name: "limit zero", limitStr: "0", offsetStr: "", wantErr: true},
		{name: "limit not a number", limitStr: "abc", offsetStr: "", wantErr: true},
		{name: "negative offset", limitStr: "", offsetStr: "-1", wantErr: true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			limit, offset, err := ParseLimitOffset(tc.limitStr, tc.offsetStr)
			if tc.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tc.wantLimit, limit)
			require.Equal(t, tc.wantOffset, offset)
		})
	}
}

func TestStatusForError(t *testing.T) {
	testCases := []struct {
		name string
		err  error
		want int
	}{
		{name: "unauthorized", err: apperrors.ErrUnauthorized, want: http.StatusUnauthorized},
		{name: "forbidden", err: apperrors.ErrForbidden, want: http.StatusForbidden},
		{name: "not found", err: apperrors.ErrNotFound, want: http.StatusNotFound},
		{name: "conflict", err: apperrors.ErrConflict, want: http.StatusConflict},
		{name: "wrapped not found", err: fmt.Errorf("%w: such tender does not exist", apperrors.ErrNotFound), want: http.StatusNotFound},
		{name: "infrastructure error", err: fmt.Errorf("connection refused"), want: http.StatusInternalServerError},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.want, StatusForError(tc.err))
		})
	}
}

func TestSendServiceError(t *testing.T) {
	t.Run("domain error keeps its message", func(t *testing.T) {
		recorder := httptest.NewRecorder()
		SendServiceError(recorder, fmt.Errorf("%w: such bid does not exist", apperrors.ErrNotFound))

		require.Equal(t, http.StatusNotFound, recorder.Code)
		require.JSONEq(t, `{"reason":"resource not found: such bid does not exist"}`, recorder.Body.String())
	})

	t.Run("infrastructure error is hidden", func(t *testing.T) {
		recorder := httptest.NewRecorder()
		SendServiceError(recorder, fmt.Errorf("pq: connection refused"))

		require.Equal(t, http.StatusInternalServerError, recorder.Code)
		require.JSONEq(t, `{"reason":"internal server error"}`, recorder.Body.String())
	})
}
