package exceptions

import (
	"adhd-intake-service/internal/pkg/constvars"
	"fmt"
	"runtime"
)

type CustomError struct {
	StatusCode    int         `json:"status_code"`
	Success       bool        `json:"success"`
	ClientMessage string      `json:"message"`
	DevMessage    string      `json:"dev_message,omitempty"`
	Details       interface{} `json:"details,omitempty"`
	Location      *Location   `json:"location,omitempty"`
	cause         error
}

type Location struct {
	File         string `json:"file"`
	Line         int    `json:"line"`
	FunctionName string `json:"function_name"`
}

func (e *CustomError) Error() string {
	if e.Location == nil {
		return e.DevMessage
	}
	return fmt.Sprintf("%s (%s:%d %s)", e.DevMessage, e.Location.File, e.Location.Line, e.Location.FunctionName)
}

func (e *CustomError) Unwrap() error {
	return e.cause
}

// WithDetails attaches structured data the client needs to act on the error.
func (e *CustomError) WithDetails(details interface{}) *CustomError {
	e.Details = details
	return e
}

func BuildNewCustomError(err error, statusCode int, clientMessage, devMessage string) *CustomError {
	location := getLocation(3)
	if err != nil {
		devMessage = fmt.Sprintf("%s: %s", devMessage, err.Error())
	}
	return &CustomError{
		StatusCode:    statusCode,
		ClientMessage: clientMessage,
		DevMessage:    devMessage,
		Location:      &location,
		cause:         err,
	}
}

func getLocation(skip int) Location {
	pc, file, line, ok := runtime.Caller(skip)
	if !ok {
		return Location{
			File:         constvars.ResponseUnknown,
			Line:         0,
			FunctionName: constvars.ResponseUnknown,
		}
	}
	function := runtime.FuncForPC(pc).Name()
	return Location{
		File:         file,
		Line:         line,
		FunctionName: function,
	}
}
