package utils

import (
	"io"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taskhive-dev/taskhive/internal/errors"
)

func TestDecodeValidate(t *testing.T) {
	type TestStruct struct {
		Field1 string `json:"field1" validate:"required"`
		Field2 int    `json:"field2"`
	}

	tests := []struct {
		name        string
		requestBody string
		wantErr     bool
	}{
		{
			name:        "valid json and validation",
			requestBody: `{"field1": "value", "field2": 123}`,
		},
		{
			name:        "optional field absent",
			requestBody: `{"field1": "value"}`,
		},
		{
			name:        "invalid json",
			requestBody: `{"field1": "value", "field2": 123`,
			wantErr:     true,
		},
		{
			name:        "missing required field",
			requestBody: `{"field2": 123}`,
			wantErr:     true,
		},
		{
			name:        "empty body",
			requestBody: "",
			wantErr:     true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var target TestStruct
			err := DecodeValidate(io.NopCloser(strings.NewReader(tt.requestBody)), &target)
			if !tt.wantErr {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			e, ok := err.(*errors.ErrorWithStatusCode)
			require.True(t, ok)
			assert.Equal(t, 400, e.StatusCode)
		})
	}
}

func TestWriteErrorAndStatusCode(t *testing.T) {
	t.Run("status code error passes through", func(t *testing.T) {
		rr := httptest.NewRecorder()
		WriteErrorAndStatusCode(rr, errors.NotFound("Task not found"))

		assert.Equal(t, 404, rr.Code)
		assert.Contains(t, rr.Body.String(), "Task not found")
	})

	t.Run("unexpected error is an opaque 500", func(t *testing.T) {
		rr := httptest.NewRecorder()
		WriteErrorAndStatusCode(rr, assert.AnError)

		assert.Equal(t, 500, rr.Code)
		assert.NotContains(t, rr.Body.String(), assert.AnError.Error())
	})
}
