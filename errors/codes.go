package errors

// ErrorCode identifies an application error in API responses
type ErrorCode int

const (
	ErrorCode_HTTP_OK ErrorCode = 200

	// General
	ErrorCode_INTERNAL         ErrorCode = 1000
	ErrorCode_INVALID_ARGUMENT ErrorCode = 1001
	ErrorCode_NOT_FOUND        ErrorCode = 1002
	ErrorCode_ALREADY_EXISTS   ErrorCode = 1003
	ErrorCode_UNAUTHENTICATED  ErrorCode = 1004
	ErrorCode_INVALID_PAYLOAD  ErrorCode = 1005

	// Auth
	ErrorCode_AUTH_INVALID_TOKEN       ErrorCode = 2000
	ErrorCode_AUTH_INVALID_CREDENTIALS ErrorCode = 2001
	ErrorCode_AUTH_USER_ALREADY_EXISTS ErrorCode = 2002
	ErrorCode_AUTH_USER_NOT_FOUND      ErrorCode = 2003

	// Meeting flow
	ErrorCode_FLOW_CONFLICT      ErrorCode = 3000
	ErrorCode_FLOW_NOT_FOUND     ErrorCode = 3001
	ErrorCode_FLOW_INVALID_STATE ErrorCode = 3002
	ErrorCode_FLOW_BUSY          ErrorCode = 3003
	ErrorCode_FLOW_STALE         ErrorCode = 3004
	ErrorCode_SUMMARY_FAILED     ErrorCode = 3005

	// Meetings and contacts
	ErrorCode_MEETING_NOT_FOUND ErrorCode = 4000
	ErrorCode_CONTACT_INVALID   ErrorCode = 4001
	ErrorCode_ARCHIVE_DISABLED  ErrorCode = 4002

	// Integrations
	ErrorCode_INTEGRATION_EXTERNAL_API_FAILED ErrorCode = 5000
)

var errorCodeNames = map[ErrorCode]string{
	ErrorCode_HTTP_OK:                         "HTTP_OK",
	ErrorCode_INTERNAL:                        "INTERNAL",
	ErrorCode_INVALID_ARGUMENT:                "INVALID_ARGUMENT",
	ErrorCode_NOT_FOUND:                       "NOT_FOUND",
	ErrorCode_ALREADY_EXISTS:                  "ALREADY_EXISTS",
	ErrorCode_UNAUTHENTICATED:                 "UNAUTHENTICATED",
	ErrorCode_INVALID_PAYLOAD:                 "INVALID_PAYLOAD",
	ErrorCode_AUTH_INVALID_TOKEN:              "AUTH_INVALID_TOKEN",
	ErrorCode_AUTH_INVALID_CREDENTIALS:        "AUTH_INVALID_CREDENTIALS",
	ErrorCode_AUTH_USER_ALREADY_EXISTS:        "AUTH_USER_ALREADY_EXISTS",
	ErrorCode_AUTH_USER_NOT_FOUND:             "AUTH_USER_NOT_FOUND",
	ErrorCode_FLOW_CONFLICT:                   "FLOW_CONFLICT",
	ErrorCode_FLOW_NOT_FOUND:                  "FLOW_NOT_FOUND",
	ErrorCode_FLOW_INVALID_STATE:              "FLOW_INVALID_STATE",
	ErrorCode_FLOW_BUSY:                       "FLOW_BUSY",
	ErrorCode_FLOW_STALE:                      "FLOW_STALE",
	ErrorCode_SUMMARY_FAILED:                  "SUMMARY_FAILED",
	ErrorCode_MEETING_NOT_FOUND:               "MEETING_NOT_FOUND",
	ErrorCode_CONTACT_INVALID:                 "CONTACT_INVALID",
	ErrorCode_ARCHIVE_DISABLED:                "ARCHIVE_DISABLED",
	ErrorCode_INTEGRATION_EXTERNAL_API_FAILED: "INTEGRATION_EXTERNAL_API_FAILED",
}

// String returns the symbolic name of the code
func (c ErrorCode) String() string {
	if name, ok := errorCodeNames[c]; ok {
		return name
	}
	return "UNKNOWN"
}
