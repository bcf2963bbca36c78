package constvars

const (
	LoggingRequestIDKey    = "request_id"
	LoggingOperationKey    = "operation"
	LoggingDurationKey     = "duration"
	LoggingSuccessKey      = "success"
	LoggingEndpointKey     = "endpoint"
	LoggingMethodKey       = "method"
	LoggingRemoteAddrKey   = "remote_addr"
	LoggingUserAgentKey    = "user_agent"
	LoggingErrorTypeKey    = "error_type"
	LoggingErrorCodeKey    = "error_code"
	LoggingErrorMessageKey = "error_message"
	LoggingUserIDKey       = "user_id"
	LoggingRoleKey         = "role"
)
