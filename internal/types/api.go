// Package types provides the request and response contracts for the
// profile-wizard HTTP API.
package types

import (
	"github.com/go-playground/validator/v10"
)

// BioRequest is the body for the bio elaboration endpoint.
type BioRequest struct {
	RawBio string `json:"rawBio" validate:"required"`
}

// BioResponse carries the rewritten biography.
type BioResponse struct {
	ImprovedBio string `json:"improvedBio"`
}

// WizardRequest is the body for one wizard step turn. A negative StepIndex
// is accepted and floored to 0 during processing.
type WizardRequest struct {
	UserID        string    `json:"user_id" validate:"required"`
	LanguageCode  string    `json:"language_code"`
	UserInputText string    `json:"user_input_text"`
	StepIndex     int       `json:"step_index"`
	FormState     FormState `json:"form_state"`
}

// WizardResponse is the result of one wizard step turn.
type WizardResponse struct {
	AssistantReply string    `json:"assistant_reply"`
	IsFinished     bool      `json:"is_finished"`
	StepIndex      int       `json:"step_index"`
	FormState      FormState `json:"form_state"`
}

// Validate validates the BioRequest using the validator.
func (r *BioRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}

// Validate validates the WizardRequest using the validator.
func (r *WizardRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}
