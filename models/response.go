package models

// Response codes
const (
	// Success
	CodeSuccess = 0

	// Client errors (1000-1999)
	CodeInvalidParams     = 1000 // invalid parameter value
	CodeMissingParams     = 1001 // required parameter missing
	CodeUserNotFound      = 1002 // user does not exist
	CodeNGONotFound       = 1003 // NGO does not exist or not approved
	CodeEventNotFound     = 1004 // event does not exist
	CodeAlreadyRegistered = 1005 // duplicate event registration
	CodeAlreadyReviewed   = 1006 // duplicate review for the same NGO
	CodeNoRecommendData   = 1007 // nothing to recommend
	CodeMaterialNotFound  = 1008 // material does not exist
	CodeAlreadyModerated  = 1009 // moderation request already resolved

	// Server errors (2000-2999)
	CodeServerError   = 2000 // internal server error
	CodeDatabaseError = 2001 // database error
)

// Messages keyed by response code
var CodeMessages = map[int]string{
	CodeSuccess:           "success",
	CodeInvalidParams:     "invalid parameter",
	CodeMissingParams:     "missing required parameter",
	CodeUserNotFound:      "user not found",
	CodeNGONotFound:       "organization not found",
	CodeEventNotFound:     "event not found",
	CodeAlreadyRegistered: "already registered for this event",
	CodeAlreadyReviewed:   "review already submitted for this organization",
	CodeNoRecommendData:   "no recommendations available",
	CodeMaterialNotFound:  "material not found",
	CodeAlreadyModerated:  "moderation request already resolved",
	CodeServerError:       "internal server error",
	CodeDatabaseError:     "database error",
}

// APIResponse is the uniform JSON envelope for every endpoint.
type APIResponse struct {
	Code    int         `json:"code" example:"0"`
	Message string      `json:"message" example:"success"`
	Data    interface{} `json:"data,omitempty"`
}

// NewSuccessResponse creates a success envelope.
func NewSuccessResponse(data interface{}) APIResponse {
	return APIResponse{
		Code:    CodeSuccess,
		Message: CodeMessages[CodeSuccess],
		Data:    data,
	}
}

// NewErrorResponse creates an error envelope with the canonical message.
func NewErrorResponse(code int, data interface{}) APIResponse {
	message, exists := CodeMessages[code]
	if !exists {
		message = "unknown error"
	}
	return APIResponse{
		Code:    code,
		Message: message,
		Data:    data,
	}
}

// NewCustomErrorResponse creates an error envelope with a custom message.
func NewCustomErrorResponse(code int, message string, data interface{}) APIResponse {
	return APIResponse{
		Code:    code,
		Message: message,
		Data:    data,
	}
}
