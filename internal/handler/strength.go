package handler

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/vaultpass/pwstrength/internal/model"
	"github.com/vaultpass/pwstrength/internal/password"
	"github.com/vaultpass/pwstrength/internal/service"
)

const maxBodyBytes = 1 << 20 // 1MB

var errTrailingData = errors.New("trailing data after JSON body")

// StrengthHandler handles HTTP requests for classification and generation.
type StrengthHandler struct {
	service *service.StrengthService
}

// NewStrengthHandler creates a new StrengthHandler.
func NewStrengthHandler(svc *service.StrengthService) *StrengthHandler {
	return &StrengthHandler{service: svc}
}

// HandleClassify handles POST /api/v1/classify requests.
func (h *StrengthHandler) HandleClassify(w http.ResponseWriter, r *http.Request) {
	var req model.ClassifyRequest
	if !decodeBody(w, r, &req) {
		return
	}

	resp, err := h.service.ClassifyWithEstimate(req)
	if err != nil {
		if errors.Is(err, service.ErrPasswordRequired) {
			writeJSON(w, http.StatusBadRequest, errorResponse(err.Error()))
			return
		}
		writeJSON(w, http.StatusInternalServerError, errorResponse("internal server error"))
		return
	}

	writeJSON(w, http.StatusOK, resp)
}

// HandleGenerate handles POST /api/v1/generate requests. An empty body
// generates a single Strong password.
func (h *StrengthHandler) HandleGenerate(w http.ResponseWriter, r *http.Request) {
	var req model.GenerateRequest
	if !decodeBody(w, r, &req) {
		return
	}

	resp, err := h.service.Generate(req)
	if err != nil {
		switch {
		case errors.Is(err, password.ErrInvalidLevel):
			writeJSON(w, http.StatusBadRequest, errorResponse(password.ErrInvalidLevel.Error()))
		case errors.Is(err, service.ErrCountOutOfRange):
			writeJSON(w, http.StatusBadRequest, errorResponse(err.Error()))
		default:
			writeJSON(w, http.StatusInternalServerError, errorResponse("internal server error"))
		}
		return
	}

	writeJSON(w, http.StatusOK, resp)
}

// decodeBody decodes a single JSON value from the body into v, treating an
// empty body as an empty object. It writes the error response and returns
// false on failure.
func decodeBody(w http.ResponseWriter, r *http.Request, v any) bool {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	defer r.Body.Close()

	dec := json.NewDecoder(r.Body)
	err := dec.Decode(v)
	if err == nil {
		// Anything after the first value, even another object, is rejected.
		if err = dec.Decode(&struct{}{}); err == nil {
			err = errTrailingData
		}
	}
	if err != nil && !errors.Is(err, io.EOF) {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			writeJSON(w, http.StatusRequestEntityTooLarge, errorResponse("request body too large"))
			return false
		}
		writeJSON(w, http.StatusBadRequest, errorResponse("invalid request body"))
		return false
	}
	return true
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func errorResponse(msg string) map[string]string {
	return map[string]string{"error": msg}
}
