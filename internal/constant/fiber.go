package constant

const (
	ContextKeyRequestID = "requestid"

	RequestIDHeader = "X-IE-Request-ID"
)
