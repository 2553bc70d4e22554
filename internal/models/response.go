package models

import "encoding/json"

// ----- Response Interface -----
type Response interface {
	ToJSON() ([]byte, error)
}

// ----- Calculate Response -----

type CalculateResponse struct {
	Operation string  `json:"operation"`
	First     float64 `json:"first"`
	Second    float64 `json:"second"`
	Result    float64 `json:"result"`
	Display   string  `json:"display"`
}

func (r *CalculateResponse) ToJSON() ([]byte, error) {
	return json.Marshal(r)
}

// ----- Error Response -----

type ErrorResponse struct {
	Error string    `json:"error"`
	Kind  ErrorKind `json:"kind,omitempty"`
}

func (r *ErrorResponse) ToJSON() ([]byte, error) {
	return json.Marshal(r)
}

// ----- Operations Response -----

type OperationInfo struct {
	Name   string `json:"name"`
	Symbol string `json:"symbol"`
}

type OperationsResponse struct {
	Operations []OperationInfo `json:"operations"`
}

func (r *OperationsResponse) ToJSON() ([]byte, error) {
	return json.Marshal(r)
}
