package errors

import (
	"encoding/json"
)

// ErrorResponse is the JSON form of an error, printed by the CLI in --json
// mode. The cause chain is not included.
type ErrorResponse struct {
	Code           string                 `json:"code"`
	Message        string                 `json:"message"`
	Classification string                 `json:"classification"`
	Context        map[string]interface{} `json:"context,omitempty"`

	// Cause is the text of the wrapped error, such as the API's rejection
	// detail. Empty when there is none.
	Cause string `json:"cause,omitempty"`
}

// ToJSON converts any error to an ErrorResponse. Returns nil if err is nil.
//
// For a PlatformError the message is the bare message and Cause holds the
// wrapped error's text; for a plain error the message is err.Error() and the
// code is CodeUnknown.
func ToJSON(err error) *ErrorResponse {
	if err == nil {
		return nil
	}

	message := err.Error()
	var (
		context map[string]interface{}
		cause   string
	)

	var platformErr PlatformError
	if As(err, &platformErr) {
		message = platformErr.Message()
		context = platformErr.Context()
		if inner := platformErr.Unwrap(); inner != nil {
			cause = inner.Error()
		}
	}

	return &ErrorResponse{
		Code:           string(GetCode(err)),
		Message:        message,
		Classification: string(GetClassification(err)),
		Context:        context,
		Cause:          cause,
	}
}

// MarshalJSON implements json.Marshaler for platformError.
func (e *platformError) MarshalJSON() ([]byte, error) {
	resp := &ErrorResponse{
		Code:           string(e.code),
		Message:        e.message,
		Classification: string(e.classification),
		Context:        e.context,
	}
	if e.cause != nil {
		resp.Cause = e.cause.Error()
	}

	data, err := json.Marshal(resp)
	if err != nil {
		return nil, Wrap(err, CodeInternal, "failed to marshal error response")
	}
	return data, nil
}
