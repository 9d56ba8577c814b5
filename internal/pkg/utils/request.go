package utils

import (
	"io"
	"net/http"
	"strings"

	"patient-records-service/internal/pkg/constvars"
	"patient-records-service/internal/pkg/dto/requests"
	"patient-records-service/internal/pkg/exceptions"

	"github.com/goccy/go-json"
)

const maxRequestBodyBytes = 1 << 20

// DecodeAndValidate reads a JSON body into dst and runs struct validation.
func DecodeAndValidate(r *http.Request, dst interface{}) error {
	body, err := io.ReadAll(io.LimitReader(r.Body, maxRequestBodyBytes))
	if err != nil {
		return exceptions.ErrCannotParseJSON(err)
	}
	if err := json.Unmarshal(body, dst); err != nil {
		return exceptions.ErrCannotParseJSON(err)
	}
	if err := ValidateStruct(dst); err != nil {
		return exceptions.ErrInputValidation(err)
	}
	return nil
}

func BuildPatientFilter(r *http.Request, adminScope bool) requests.PatientFilter {
	query := r.URL.Query()
	return requests.PatientFilter{
		Search:     strings.TrimSpace(query.Get(constvars.URLQueryParamSearch)),
		Disease:    strings.TrimSpace(query.Get(constvars.URLQueryParamDisease)),
		SortBy:     strings.TrimSpace(query.Get(constvars.URLQueryParamSort)),
		AdminScope: adminScope,
	}
}
