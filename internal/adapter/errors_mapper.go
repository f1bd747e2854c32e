package adapter

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/MKhiriev/grocy-sync/models"
	"github.com/go-resty/resty/v2"
	"github.com/goccy/go-json"
)

func mapHTTPError(resp *resty.Response) error {
	if resp.StatusCode() >= http.StatusOK && resp.StatusCode() < http.StatusMultipleChoices {
		return nil
	}

	body := errorMessage(resp.Body())

	switch resp.StatusCode() {
	case http.StatusBadRequest:
		return fmt.Errorf("%w: %s", ErrBadRequest, body)
	case http.StatusUnauthorized:
		return fmt.Errorf("%w: %s", ErrUnauthorized, body)
	case http.StatusForbidden:
		return fmt.Errorf("%w: %s", ErrForbidden, body)
	case http.StatusNotFound:
		return fmt.Errorf("%w: %s", ErrNotFound, body)
	case http.StatusConflict:
		return fmt.Errorf("%w: %s", ErrConflict, body)
	case http.StatusBadGateway:
		return fmt.Errorf("%w: %w: %s", ErrNetwork, ErrBadGateway, body)
	case http.StatusInternalServerError:
		return fmt.Errorf("%w: %w: %s", ErrNetwork, ErrInternalServerError, body)
	default:
		if body == "" {
			body = http.StatusText(resp.StatusCode())
		}
		if resp.StatusCode() >= http.StatusInternalServerError {
			return fmt.Errorf("%w: http %d: %s", ErrNetwork, resp.StatusCode(), body)
		}
		return fmt.Errorf("http %d: %s", resp.StatusCode(), body)
	}
}

// errorMessage extracts error_message from a Grocy error body and falls back
// to the raw body.
func errorMessage(raw []byte) string {
	var er models.ErrorResponse
	if err := json.Unmarshal(raw, &er); err == nil && er.ErrorMessage != "" {
		return er.ErrorMessage
	}
	return strings.TrimSpace(string(raw))
}
