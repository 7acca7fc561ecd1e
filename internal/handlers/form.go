package handlers

import (
	"errors"
	"fmt"
	"io"
	"mime"
	"mime/multipart"
	"net/http"
	"net/url"
	"strings"

	"github.com/spicebyte/menu-app/internal/models"
)

// maxFormBytes caps the size of a submitted order form
const maxFormBytes = 1 << 20

var ErrUnsupportedForm = errors.New("unsupported form content type")

// readOrderedForm decodes a POSTed form into fields in submission order.
// Duplicate keys keep their first value.
func readOrderedForm(w http.ResponseWriter, r *http.Request) ([]models.FormField, error) {
	r.Body = http.MaxBytesReader(w, r.Body, maxFormBytes)

	mediaType := "application/x-www-form-urlencoded"
	var params map[string]string
	if ct := r.Header.Get("Content-Type"); ct != "" {
		var err error
		mediaType, params, err = mime.ParseMediaType(ct)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrUnsupportedForm, err)
		}
	}

	switch mediaType {
	case "application/x-www-form-urlencoded":
		body, err := io.ReadAll(r.Body)
		if err != nil {
			return nil, fmt.Errorf("read form body: %w", err)
		}
		return decodeOrderedForm(string(body)), nil
	case "multipart/form-data":
		return readMultipartForm(r.Body, params["boundary"])
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedForm, mediaType)
	}
}

// decodeOrderedForm parses an application/x-www-form-urlencoded body.
// Pairs that fail to unescape are skipped.
func decodeOrderedForm(body string) []models.FormField {
	var fields []models.FormField
	seen := make(map[string]bool)

	for _, pair := range strings.Split(body, "&") {
		if pair == "" {
			continue
		}
		rawKey, rawValue, _ := strings.Cut(pair, "=")

		key, err := url.QueryUnescape(rawKey)
		if err != nil {
			continue
		}
		value, err := url.QueryUnescape(rawValue)
		if err != nil {
			continue
		}

		fields = appendFirst(fields, seen, key, value)
	}

	return fields
}

func readMultipartForm(body io.Reader, boundary string) ([]models.FormField, error) {
	if boundary == "" {
		return nil, fmt.Errorf("%w: missing multipart boundary", ErrUnsupportedForm)
	}

	var fields []models.FormField
	seen := make(map[string]bool)

	reader := multipart.NewReader(body, boundary)
	for {
		part, err := reader.NextPart()
		if errors.Is(err, io.EOF) {
			return fields, nil
		}
		if err != nil {
			return nil, fmt.Errorf("read multipart form: %w", err)
		}

		name := part.FormName()
		if name == "" || part.FileName() != "" {
			part.Close()
			continue
		}

		value, err := io.ReadAll(part)
		part.Close()
		if err != nil {
			return nil, fmt.Errorf("read multipart field %s: %w", name, err)
		}

		fields = appendFirst(fields, seen, name, string(value))
	}
}

func appendFirst(fields []models.FormField, seen map[string]bool, key, value string) []models.FormField {
	if seen[key] {
		return fields
	}
	seen[key] = true
	return append(fields, models.FormField{Key: key, Value: value})
}
