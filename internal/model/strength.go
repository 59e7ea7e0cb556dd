package model

import "github.com/vaultpass/pwstrength/internal/password"

// ClassifyRequest represents a password classification request.
// Password is a pointer so a missing field can be told apart from "".
type ClassifyRequest struct {
	Password *string  `json:"password"`
	Hints    []string `json:"hints,omitempty"`
}

// ClassifyResponse represents a password classification response.
// Estimate is nil unless the caller asked for one.
type ClassifyResponse struct {
	Strength  password.Level     `json:"strength"`
	Length    int                `json:"length"`
	Uppercase bool               `json:"uppercase"`
	Lowercase bool               `json:"lowercase"`
	Digit     bool               `json:"digit"`
	Symbol    bool               `json:"symbol"`
	Missing   []string           `json:"missing"`
	Estimate  *password.Estimate `json:"estimate,omitempty"`
}

// GenerateRequest represents a password generation request. Level is kept
// as free-form text and parsed by the service.
type GenerateRequest struct {
	Level string `json:"level"`
	Count int    `json:"count"`
}

// GenerateResponse represents a password generation response.
// Passwords is only set when more than one password was requested.
type GenerateResponse struct {
	Level     password.Level `json:"level"`
	Password  string         `json:"password"`
	Length    int            `json:"length"`
	Passwords []string       `json:"passwords,omitempty"`
}
