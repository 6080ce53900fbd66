package utils

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/goccy/go-json"
	"github.com/indianiiot/telemetry-backend/internal/config"
	"github.com/indianiiot/telemetry-backend/internal/hdl"
)

type Response struct {
	Data any `json:"data"`
}

type ErrorsResponse struct {
	Errors []string `json:"errors"`
}

func SuccessResponse(w http.ResponseWriter, statusCode int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(
		&Response{
			Data: data,
		},
	)
}

func StatusResponse(w http.ResponseWriter, statusCode int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
}

func ErrResponse(w http.ResponseWriter, statusCode int, err error) {
	msgs := make([]string, 0, 1)
	var vErrs validator.ValidationErrors
	if ok := errors.As(err, &vErrs); ok {
		for _, v := range vErrs {
			msgs = append(msgs, v.Error())
		}
	} else {
		msgs = append(msgs, err.Error())
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(
		&ErrorsResponse{
			Errors: msgs,
		},
	)
}

// ParseAndValidate decodes the JSON body into dest and runs struct
// validation. It writes the 400 itself, callers just bail on false.
func ParseAndValidate(w http.ResponseWriter, r *http.Request, dest any) bool {
	if err := json.NewDecoder(r.Body).Decode(dest); err != nil {
		ErrResponse(w, http.StatusBadRequest, hdl.ErrDecodeRequest)
		return false
	}

	if err := validator.New().Struct(dest); err != nil {
		ErrResponse(w, http.StatusBadRequest, err)
		return false
	}

	return true
}

func ParsePaginationValues(r *http.Request) (int, int) {
	page, size := config.DefaultPage, config.DefaultSize

	if p, err := strconv.Atoi(r.URL.Query().Get("page")); err == nil && p > 0 {
		page = p
	}

	if s, err := strconv.Atoi(r.URL.Query().Get("size")); err == nil && s > 0 {
		size = s
	}

	return page, size
}

// ParseLimit reads the ?limit query value, falling back to the default
// readings cap.
func ParseLimit(r *http.Request) int {
	limit := config.DefaultReadingsCap
	if l, err := strconv.Atoi(r.URL.Query().Get("limit")); err == nil && l > 0 {
		limit = l
	}

	return limit
}

func ParseFiltersByURL(r *http.Request) map[string]any {
	filters := make(map[string]any)
	if status := r.URL.Query().Get("status"); status != "" {
		filters["status"] = status
	}

	return filters
}
