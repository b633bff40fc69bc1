package api

import (
	"errors"
	"strconv"

	"github.com/danielgtaylor/huma/v2"

	domainerrors "github.com/foodgramapp/foodgram-server/internal/errors"
	"github.com/foodgramapp/foodgram-server/internal/http/response"
)

// EnvelopeTransformer wraps every JSON response body in the versioned envelope:
// {"v":1,"success":true,"data":...} or {"v":1,"success":false,"error":...,"code":...}.
// Raw byte bodies such as file downloads pass through untouched.
func EnvelopeTransformer(_ huma.Context, status string, v any) (any, error) {
	if b, ok := v.([]byte); ok {
		return b, nil
	}

	var apiErr *APIError
	if err, ok := v.(error); ok && errors.As(err, &apiErr) {
		return response.Envelope{
			Version: response.EnvelopeVersion,
			Success: false,
			Error:   apiErr.Message,
			Code:    apiErr.Code,
			Message: apiErr.Message,
			Details: apiErr.Details,
		}, nil
	}

	var domainErr *domainerrors.Error
	if err, ok := v.(error); ok && errors.As(err, &domainErr) {
		return response.Envelope{
			Version: response.EnvelopeVersion,
			Success: false,
			Error:   domainErr.Message,
			Code:    string(domainErr.Code),
			Message: domainErr.Message,
			Details: domainErr.Details,
		}, nil
	}

	code, _ := strconv.Atoi(status)
	if code >= 400 {
		message := ""
		if err, ok := v.(error); ok {
			message = err.Error()
		}
		return response.Envelope{
			Version: response.EnvelopeVersion,
			Success: false,
			Error:   message,
			Code:    string(response.CodeForStatus(code)),
			Message: message,
		}, nil
	}

	return response.Envelope{
		Version: response.EnvelopeVersion,
		Success: true,
		Data:    v,
	}, nil
}
