package dto

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetHTTPStatus(t *testing.T) {
	tests := []struct {
		code     string
		expected int
	}{
		{ErrCodeUnknown, http.StatusInternalServerError},
		{ErrCodeInternal, http.StatusInternalServerError},
		{ErrCodeValidation, http.StatusBadRequest},
		{ErrCodeValidationRequired, http.StatusBadRequest},
		{ErrCodeUnauthorized, http.StatusUnauthorized},
		{ErrCodeForbidden, http.StatusForbidden},
		{ErrCodeTokenExpired, http.StatusUnauthorized},
		{ErrCodeNotFound, http.StatusNotFound},
		{ErrCodeAlreadyExists, http.StatusConflict},
		{ErrCodeConflict, http.StatusConflict},
		{ErrCodeInvalidState, http.StatusUnprocessableEntity},
		{ErrCodeBusinessRule, http.StatusUnprocessableEntity},
		{ErrCodeBadRequest, http.StatusBadRequest},
		{ErrCodeInvalidInput, http.StatusBadRequest},
		// Unknown code should return 500
		{"UNKNOWN_CODE", http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.code, func(t *testing.T) {
			assert.Equal(t, tt.expected, GetHTTPStatus(tt.code))
		})
	}
}

func TestNormalizeErrorCode(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		// Legacy codes should be normalized
		{"NOT_FOUND", ErrCodeNotFound},
		{"ALREADY_EXISTS", ErrCodeAlreadyExists},
		{"INVALID_INPUT", ErrCodeInvalidInput},
		{"INVALID_STATE", ErrCodeInvalidState},
		{"UNAUTHORIZED", ErrCodeUnauthorized},
		{"FORBIDDEN", ErrCodeForbidden},
		{"INTERNAL_ERROR", ErrCodeInternal},
		// Already normalized codes pass through
		{ErrCodeNotFound, ErrCodeNotFound},
		{ErrCodeAlreadyExists, ErrCodeAlreadyExists},
		// Unknown codes pass through untouched
		{"SOMETHING_ELSE", "SOMETHING_ELSE"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.expected, NormalizeErrorCode(tt.input))
		})
	}
}

func TestResponseSerialization(t *testing.T) {
	t.Run("success response omits error", func(t *testing.T) {
		resp := NewSuccessResponse(map[string]string{"name": "Lamp"})

		body, err := json.Marshal(resp)
		assert.NoError(t, err)
		assert.JSONEq(t, `{"success":true,"data":{"name":"Lamp"}}`, string(body))
	})

	t.Run("success response with size carries meta", func(t *testing.T) {
		resp := NewSuccessResponseWithSize([]string{"a", "b"}, 2)

		body, err := json.Marshal(resp)
		assert.NoError(t, err)
		assert.JSONEq(t, `{"success":true,"data":["a","b"],"meta":{"size":2}}`, string(body))
	})

	t.Run("error response omits data", func(t *testing.T) {
		resp := NewErrorResponseWithRequestID(ErrCodeNotFound, "Product not found", "req-1")

		body, err := json.Marshal(resp)
		assert.NoError(t, err)
		assert.JSONEq(t, `{"success":false,"error":{"code":"ERR_NOT_FOUND","message":"Product not found","request_id":"req-1"}}`, string(body))
	})
}
