package http

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResponseWriter_WriteHeaderOnce(t *testing.T) {
	rr := httptest.NewRecorder()
	w := &responseWriter{ResponseWriter: rr}

	w.WriteHeader(http.StatusCreated)
	w.WriteHeader(http.StatusInternalServerError)

	assert.Equal(t, http.StatusCreated, w.Status())
	assert.Equal(t, http.StatusCreated, rr.Code)
}

func TestResponseWriter_Write(t *testing.T) {
	tests := []struct {
		name       string
		status     int
		writes     []string
		wantStatus int
		wantSize   int
	}{
		{name: "nothing written", wantStatus: http.StatusOK},
		{name: "implicit 200", writes: []string{"hello"}, wantStatus: http.StatusOK, wantSize: 5},
		{name: "explicit status", status: http.StatusServiceUnavailable, writes: []string{"down"}, wantStatus: http.StatusServiceUnavailable, wantSize: 4},
		{name: "multiple writes", writes: []string{"ab", "cde", ""}, wantStatus: http.StatusOK, wantSize: 5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rr := httptest.NewRecorder()
			w := &responseWriter{ResponseWriter: rr}

			if tt.status != 0 {
				w.WriteHeader(tt.status)
			}
			for _, s := range tt.writes {
				_, err := w.Write([]byte(s))
				assert.NoError(t, err)
			}

			assert.Equal(t, tt.wantStatus, w.Status())
			assert.Equal(t, tt.wantSize, w.size)
			assert.Equal(t, tt.wantSize, rr.Body.Len())
		})
	}
}

func TestResponseWriter_Unwrap(t *testing.T) {
	rr := httptest.NewRecorder()
	w := &responseWriter{ResponseWriter: rr}

	assert.Same(t, rr, w.Unwrap())
	assert.NoError(t, http.NewResponseController(w).Flush())
}
