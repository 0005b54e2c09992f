package util

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pdf-share-server/internal/apperrors"
)

func TestGenerateToken(t *testing.T) {
	first, err := GenerateToken(TokenLength)
	require.NoError(t, err)
	second, err := GenerateToken(TokenLength)
	require.NoError(t, err)

	assert.Len(t, first, TokenLength)
	assert.NotEqual(t, first, second)
	assert.Regexp(t, "^[0-9a-f]+$", first)

	odd, err := GenerateToken(7)
	require.NoError(t, err)
	assert.Len(t, odd, 7)
}

func TestInspectPDF_RejectsNonPDF(t *testing.T) {
	_, err := InspectPDF([]byte("hello world"))
	assert.Error(t, err)

	_, err = InspectPDF(nil)
	assert.Error(t, err)
}

func TestInspectPDF_RejectsBrokenPDF(t *testing.T) {
	_, err := InspectPDF([]byte("%PDF-1.7\nnot really a pdf"))
	assert.Error(t, err)
}

func TestInspectPDF_CountsPages(t *testing.T) {
	content, err := os.ReadFile("testdata/one_page.pdf")
	require.NoError(t, err)

	info, err := InspectPDF(content)
	require.NoError(t, err)
	assert.Equal(t, 1, info.PageCount)
	assert.Equal(t, int64(len(content)), info.SizeBytes)
}

type sampleRequest struct {
	Email string `validate:"required,email"`
	Name  string `validate:"required"`
}

func TestValidateStruct(t *testing.T) {
	assert.NoError(t, ValidateStruct(sampleRequest{Email: "u@x.com", Name: "u"}))

	err := ValidateStruct(sampleRequest{Email: "not-an-email"})
	require.Error(t, err)
	assert.True(t, errors.Is(err, apperrors.ErrInvalidInput))
	assert.Contains(t, err.Error(), "email (email)")
	assert.Contains(t, err.Error(), "name (required)")
}

func TestHandleError_WritesEnvelope(t *testing.T) {
	rec := httptest.NewRecorder()
	HandleError(rec, apperrors.Clone(apperrors.ErrForbidden, "нет доступа"))

	assert.Equal(t, http.StatusForbidden, rec.Code)

	var body map[string]map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "FORBIDDEN", body["error"]["code"])
	assert.Equal(t, "нет доступа", body["error"]["message"])
}

func TestHandleError_HidesInternalDetails(t *testing.T) {
	rec := httptest.NewRecorder()
	HandleError(rec, errors.New("pq: password authentication failed"))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.NotContains(t, rec.Body.String(), "password authentication")
}

func TestWriteList_IncludesCount(t *testing.T) {
	rec := httptest.NewRecorder()
	WriteList(rec, []string{"a", "b"}, 2)

	var body struct {
		Data  []string `json:"data"`
		Count int      `json:"count"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, 2, body.Count)
	assert.Equal(t, []string{"a", "b"}, body.Data)
}
