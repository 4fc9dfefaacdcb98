package models

// Response status strings derived from the numeric status code.
const (
	StatusSuccess    = "success"
	StatusBadRequest = "bad request"
	StatusError      = "error"
)

// Response is the uniform envelope wrapping every API result: a data
// payload, a numeric status code for the transport layer, and a
// human-readable message. It is used on both the success and the error path.
type Response struct {
	Data       interface{}
	StatusCode int
	Message    string
}

// ResponseBody is the serialized shape of the envelope.
type ResponseBody struct {
	Data    interface{} `json:"data"`
	Message string      `json:"message"`
	Status  string      `json:"status"`
}

// NewResponse constructs an envelope. A nil data payload is normalized to an
// empty object so the serialized body always carries "data": {}.
func NewResponse(data interface{}, statusCode int, message string) *Response {
	if data == nil {
		data = map[string]interface{}{}
	}
	return &Response{
		Data:       data,
		StatusCode: statusCode,
		Message:    message,
	}
}

// Status derives the short status string from the numeric code.
func (r *Response) Status() string {
	switch {
	case r.StatusCode >= 200 && r.StatusCode < 300:
		return StatusSuccess
	case r.StatusCode >= 400 && r.StatusCode < 500:
		return StatusBadRequest
	default:
		return StatusError
	}
}

// Body produces the final response shape for serialization.
func (r *Response) Body() ResponseBody {
	return ResponseBody{
		Data:    r.Data,
		Message: r.Message,
		Status:  r.Status(),
	}
}
