package mobile

import (
	"encoding/json"
)

// Bridge structs for mobile data transfer
type MobileResponse struct {
	Success bool   `json:"success"`
	Data    any    `json:"data,omitempty"`
	Error   string `json:"error,omitempty"`
}

func createErrorResponse(err error) string {
	response := MobileResponse{
		Success: false,
		Error:   err.Error(),
	}
	result, _ := json.Marshal(response)
	return string(result)
}

func createSuccessResponse(data any) string {
	response := MobileResponse{
		Success: true,
		Data:    data,
	}
	result, err := json.Marshal(response)
	if err != nil {
		return createErrorResponse(err)
	}
	return string(result)
}
