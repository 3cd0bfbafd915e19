package utils

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeBody(t *testing.T) {
	type payload struct {
		Name string `json:"name"`
	}

	testCases := []struct {
		name    string
		body    string
		want    string
		wantErr bool
	}{
		{name: "single object", body: `{"name":"lamp"}`, want: "lamp"},
		{name: "empty body", body: ``, wantErr: true},
		{name: "malformed", body: `{"name":`, wantErr: true},
		{name: "two values", body: `{"name":"a"}{"name":"b"}`, wantErr: true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			r := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(tc.body))
			var p payload
			err := DecodeBody(r, &p)
			if tc.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, p.Name)
		})
	}

	r := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(""))
	assert.ErrorIs(t, DecodeBody(r, &payload{}), ErrEmptyBody)
}

func TestWriteValidationError(t *testing.T) {
	type adjustment struct {
		ProductID string `validate:"required"`
		Operation string `validate:"oneof=add set"`
	}
	err := validator.New().Struct(adjustment{Operation: "multiply"})

	rec := httptest.NewRecorder()
	require.NoError(t, WriteValidationError(rec, err))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.JSONEq(t, `{
		"message": "invalid request",
		"code": "VALIDATION_FAILED",
		"fields": {"ProductID": "required", "Operation": "oneof=add set"}
	}`, rec.Body.String())
}
