package connector

import (
	"fmt"

	"github.com/go-resty/resty/v2"
)

// Error is returned when the node answered, but with an error envelope or a
// non-2xx status.
type Error struct {
	Code    int
	Message string
	Path    string
}

func (e *Error) Error() string {
	return fmt.Sprintf("connector error, request path: %s, code: %d, message: %s", e.Path, e.Code, e.Message)
}

// Receive executes the request and unpacks the node's {ok, response, error}
// envelope into T.
func Receive[T any](r *resty.Request, path string, method string) (*T, error) {
	var result struct {
		OK       bool   `json:"ok"`
		Error    string `json:"error,omitempty"`
		Response *T     `json:"response,omitempty"`
	}
	r.SetResult(&result)
	r.SetError(&result)
	resp, err := r.Execute(method, path)
	if err != nil {
		return nil, err
	}
	if resp.IsError() || !result.OK {
		return nil, &Error{
			Code:    resp.StatusCode(),
			Message: result.Error,
			Path:    path,
		}
	}
	return result.Response, nil
}
