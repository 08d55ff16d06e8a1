// Package models provides the internal data types for the trend
// intelligence pipeline: the validated request context and the raw and
// normalized per-video signal records.
package models

import (
	"github.com/go-playground/validator/v10"
)

// RequestContext carries the validated request parameters for one pipeline
// run. The HTTP collaborator normalizes and validates the inbound payload
// before the pipeline is invoked; the tags here re-check that contract.
type RequestContext struct {
	Keyword    string   `json:"keyword" validate:"required,min=2,max=100"`
	Region     string   `json:"region" validate:"required,len=2,uppercase"`
	CategoryID string   `json:"category" validate:"required"`
	DaysBack   int      `json:"daysBack" validate:"required,min=1,max=30"`
	Agents     []string `json:"agents" validate:"required,min=1,dive,required"`
}

// Validate validates the request context using go-playground/validator.
func (r *RequestContext) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}
