package util

const (
	DateFormat = "2006-01-02"
	TimeFormat = "2006-01-02 15:04:05"
)

// Identity headers. Their values are recorded but never verified.
const (
	HeaderUserID    = "X-User-ID"
	HeaderStudentID = "X-Student-ID"
	HeaderRequestID = "X-Request-ID"

	AnonymousUser = "anonymous"
)

// Context keys set by the identity and request-id middleware.
const (
	CtxUserID    = "userID"
	CtxStudentID = "studentID"
	CtxRequestID = "requestID"
)
