package errors

import (
	"encoding/json"
)

// ErrorResponse is the flat JSON representation of an error, used by
// command-line front-ends that emit machine-readable output.
//
// The wrapped error chain is intentionally excluded; the operation, pathname
// and errno carry the information a caller needs to act on the failure.
type ErrorResponse struct {
	Code           string                 `json:"code"`
	Message        string                 `json:"message"`
	Classification string                 `json:"classification"`
	Op             string                 `json:"op,omitempty"`
	Path           string                 `json:"path,omitempty"`
	Errno          int                    `json:"errno,omitempty"`
	Context        map[string]interface{} `json:"context,omitempty"`
}

// ToJSON converts any error to an ErrorResponse suitable for JSON serialization.
// Returns nil if err is nil.
//
// For Error instances, extracts code, message, classification, operation,
// pathname, errno and context. For other errors, uses CodeUnknown,
// ClassificationPermanent and the error message.
func ToJSON(err error) *ErrorResponse {
	if err == nil {
		return nil
	}

	resp := &ErrorResponse{
		Code:           string(GetCode(err)),
		Message:        err.Error(),
		Classification: string(GetClassification(err)),
	}

	var fsErr Error
	if As(err, &fsErr) {
		resp.Message = fsErr.Message()
		resp.Op = fsErr.Op()
		resp.Path = fsErr.Path()
		resp.Errno = int(fsErr.Errno())
		resp.Context = fsErr.Context()
	}

	return resp
}

// MarshalJSON implements json.Marshaler for fsError.
func (e *fsError) MarshalJSON() ([]byte, error) {
	data, err := json.Marshal(ToJSON(e))
	if err != nil {
		return nil, &fsError{
			code:           CodeUnknown,
			classification: ClassificationPermanent,
			message:        "failed to marshal error response",
			cause:          err,
		}
	}
	return data, nil
}
