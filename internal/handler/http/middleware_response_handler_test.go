package http

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/MKhiriev/go-service-common/internal/response"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newResponseWriter(rr *httptest.ResponseRecorder) *responseWriter {
	return &responseWriter{ResponseWriter: rr}
}

func TestResponseWriter_InitialState(t *testing.T) {
	w := newResponseWriter(httptest.NewRecorder())

	assert.False(t, w.Written())
	assert.Equal(t, responseData{}, w.snapshot())
}

func TestResponseWriter_WriteHeader_CalledTwice_IgnoresSecond(t *testing.T) {
	rr := httptest.NewRecorder()
	w := newResponseWriter(rr)

	w.WriteHeader(http.StatusCreated)
	w.WriteHeader(http.StatusInternalServerError)

	assert.True(t, w.Written())
	assert.Equal(t, http.StatusCreated, w.snapshot().status)
	assert.Equal(t, http.StatusCreated, rr.Code)
}

func TestResponseWriter_Write_TableTest(t *testing.T) {
	tests := []struct {
		name       string
		header     int
		writes     []string
		wantStatus int
		wantSize   int
	}{
		{name: "implicit 200", writes: []string{"hello"}, wantStatus: http.StatusOK, wantSize: 5},
		{name: "explicit status kept", header: http.StatusAccepted, writes: []string{"ok"}, wantStatus: http.StatusAccepted, wantSize: 2},
		{name: "size accumulates", writes: []string{"ab", "cde", ""}, wantStatus: http.StatusOK, wantSize: 5},
		{name: "header only", header: http.StatusNoContent, wantStatus: http.StatusNoContent, wantSize: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rr := httptest.NewRecorder()
			w := newResponseWriter(rr)

			if tt.header != 0 {
				w.WriteHeader(tt.header)
			}
			for _, chunk := range tt.writes {
				_, err := w.Write([]byte(chunk))
				require.NoError(t, err)
			}

			assert.True(t, w.Written())
			assert.Equal(t, responseData{status: tt.wantStatus, size: tt.wantSize}, w.snapshot())
			assert.Equal(t, tt.wantStatus, rr.Code)
		})
	}
}

func TestResponseWriter_SatisfiesWriteTracker(t *testing.T) {
	var _ response.WriteTracker = (*responseWriter)(nil)

	rr := httptest.NewRecorder()
	w := newResponseWriter(rr)

	assert.Same(t, rr, w.Unwrap())
}
