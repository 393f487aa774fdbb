package restclient

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"

	apperrors "github.com/louisbranch/conectareparo/internal/platform/errors"
)

// Metadata keys attached to wrapped API errors.
const (
	MetadataUpstreamMessage = "upstream_message"
	MetadataUpstreamStatus  = "upstream_status"
)

// APIError is the error body the API returns with non-2xx responses.
type APIError struct {
	Timestamp string `json:"timestamp"`
	Status    int    `json:"status"`
	Reason    string `json:"error"`
	Message   string `json:"message"`
	Path      string `json:"path"`
}

func (e *APIError) Error() string {
	return e.Message
}

// Code maps the response status to a domain error code.
func (e *APIError) Code() apperrors.Code {
	switch e.Status {
	case http.StatusNotFound:
		return apperrors.CodeNotFound
	case http.StatusBadRequest:
		return apperrors.CodeInvalidArgument
	case http.StatusConflict, http.StatusUnprocessableEntity:
		return apperrors.CodeFailedPrecondition
	default:
		return apperrors.CodeUnavailable
	}
}

func (e *APIError) wrap(op string) error {
	return apperrors.WrapWithMetadata(e.Code(), op+": "+e.Message, map[string]string{
		MetadataUpstreamMessage: e.Message,
		MetadataUpstreamStatus:  strconv.Itoa(e.Status),
	}, e)
}

// decodeAPIError reads the error body, tolerating empty or non-JSON bodies.
func decodeAPIError(resp *http.Response, path string) *APIError {
	apiErr := &APIError{}
	body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
	if len(body) > 0 {
		if err := json.Unmarshal(body, apiErr); err != nil {
			apiErr = &APIError{}
		}
	}
	apiErr.Status = resp.StatusCode
	apiErr.Message = strings.TrimSpace(apiErr.Message)
	if apiErr.Message == "" {
		apiErr.Message = fmt.Sprintf("HTTP error! status: %d", resp.StatusCode)
	}
	if apiErr.Path == "" {
		apiErr.Path = path
	}
	return apiErr
}
