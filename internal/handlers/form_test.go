package handlers

import (
	"bytes"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spicebyte/menu-app/internal/models"
)

func TestDecodeOrderedForm(t *testing.T) {
	tests := []struct {
		name string
		body string
		want []models.FormField
	}{
		{
			name: "keeps submission order",
			body: "qty_paneer=1&qty_samosa=2",
			want: []models.FormField{{Key: "qty_paneer", Value: "1"}, {Key: "qty_samosa", Value: "2"}},
		},
		{
			name: "unescapes keys and values",
			body: "qty_naan=+3+&note=extra%20spicy",
			want: []models.FormField{{Key: "qty_naan", Value: " 3 "}, {Key: "note", Value: "extra spicy"}},
		},
		{
			name: "first duplicate wins",
			body: "qty_cola=2&qty_cola=5",
			want: []models.FormField{{Key: "qty_cola", Value: "2"}},
		},
		{
			name: "missing equals gives empty value",
			body: "qty_roti&qty_naan=",
			want: []models.FormField{{Key: "qty_roti", Value: ""}, {Key: "qty_naan", Value: ""}},
		},
		{
			name: "skips bad escapes and empty pairs",
			body: "&qty_%zz=1&&qty_jamun=%G1&qty_chaas=1",
			want: []models.FormField{{Key: "qty_chaas", Value: "1"}},
		},
		{
			name: "empty body",
			body: "",
			want: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, decodeOrderedForm(tt.body))
		})
	}
}

func TestReadOrderedForm_Multipart(t *testing.T) {
	var body bytes.Buffer
	mw := multipart.NewWriter(&body)
	require.NoError(t, mw.WriteField("qty_tikka", "1"))
	require.NoError(t, mw.WriteField("qty_samosa", "2"))
	require.NoError(t, mw.WriteField("qty_tikka", "9"))
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, "/order", &body)
	req.Header.Set("Content-Type", mw.FormDataContentType())

	fields, err := readOrderedForm(httptest.NewRecorder(), req)

	require.NoError(t, err)
	assert.Equal(t, []models.FormField{
		{Key: "qty_tikka", Value: "1"},
		{Key: "qty_samosa", Value: "2"},
	}, fields)
}

func TestReadOrderedForm_NoContentType(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/order", strings.NewReader("qty_naan=2"))

	fields, err := readOrderedForm(httptest.NewRecorder(), req)

	require.NoError(t, err)
	assert.Equal(t, []models.FormField{{Key: "qty_naan", Value: "2"}}, fields)
}

func TestReadOrderedForm_UnsupportedContentType(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/order", strings.NewReader(`{"qty_naan":2}`))
	req.Header.Set("Content-Type", "application/json")

	_, err := readOrderedForm(httptest.NewRecorder(), req)

	assert.ErrorIs(t, err, ErrUnsupportedForm)
}

func TestReadOrderedForm_TooLarge(t *testing.T) {
	big := "qty_naan=" + strings.Repeat("1", maxFormBytes+1)
	req := httptest.NewRequest(http.MethodPost, "/order", strings.NewReader(big))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	_, err := readOrderedForm(httptest.NewRecorder(), req)

	var maxBytesErr *http.MaxBytesError
	assert.ErrorAs(t, err, &maxBytesErr)
}
