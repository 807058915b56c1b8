package dto

// FieldError identifies one invalid request field. Type is "required"
// or "invalid".
type FieldError struct {
	Param string `json:"param"`
	Type  string `json:"type"`
}

// Response is the envelope every endpoint returns: data on success,
// errors otherwise, never both.
type Response struct {
	Success bool         `json:"success"`
	Data    any          `json:"data,omitempty"`
	Errors  []FieldError `json:"errors,omitempty"`
}

func OK(data any) Response {
	return Response{Success: true, Data: data}
}

func Fail(errors ...FieldError) Response {
	return Response{Success: false, Errors: errors}
}

// FailCode wraps a single machine-readable error code in the envelope's
// error list.
func FailCode(code string) Response {
	return Response{Success: false, Errors: []FieldError{{Param: code, Type: "error"}}}
}

func required(param string) FieldError {
	return FieldError{Param: param, Type: "required"}
}

func invalid(param string) FieldError {
	return FieldError{Param: param, Type: "invalid"}
}
