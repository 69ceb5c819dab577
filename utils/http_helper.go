package utils

import (
	"encoding/json"
	"net/http"
	"strconv"

	"ngo_discovery/models"
)

// WriteFormattedJSON writes indented JSON for readability.
func WriteFormattedJSON(w http.ResponseWriter, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "    ")
	encoder.Encode(data)
}

// WriteSuccessResponse writes a success envelope.
func WriteSuccessResponse(w http.ResponseWriter, data interface{}) {
	WriteFormattedJSON(w, models.NewSuccessResponse(data))
}

// WriteErrorResponse writes an error envelope with the canonical message.
func WriteErrorResponse(w http.ResponseWriter, code int, data interface{}) {
	WriteFormattedJSON(w, models.NewErrorResponse(code, data))
}

// WriteCustomErrorResponse writes an error envelope with a custom message.
func WriteCustomErrorResponse(w http.ResponseWriter, code int, message string, data interface{}) {
	WriteFormattedJSON(w, models.NewCustomErrorResponse(code, message, data))
}

// HandleServiceError maps a service-layer error onto the envelope: missing
// rows get the caller's not-found code, everything else is a server error.
func HandleServiceError(w http.ResponseWriter, err error, noDataCode int) {
	if IsSQLNoRowsError(err) {
		WriteErrorResponse(w, noDataCode, map[string]interface{}{})
	} else {
		WriteCustomErrorResponse(w, models.CodeServerError, err.Error(), map[string]interface{}{})
	}
}

// ParseIDParam parses a positive integer URL parameter, writing the error
// envelope itself when the value is unusable.
func ParseIDParam(w http.ResponseWriter, name, value string) (int64, bool) {
	if value == "" {
		WriteErrorResponse(w, models.CodeMissingParams, map[string]interface{}{
			"param": name,
		})
		return 0, false
	}

	id, err := strconv.ParseInt(value, 10, 64)
	if err != nil || id <= 0 {
		WriteErrorResponse(w, models.CodeInvalidParams, map[string]interface{}{
			"param": name,
			"value": value,
		})
		return 0, false
	}
	return id, true
}

// ParseLimitParam parses an optional limit query value; absent or malformed
// values fall back to zero, which the services replace with their default.
func ParseLimitParam(value string) int {
	if value == "" {
		return 0
	}
	limit, err := strconv.Atoi(value)
	if err != nil || limit < 0 {
		return 0
	}
	return limit
}
