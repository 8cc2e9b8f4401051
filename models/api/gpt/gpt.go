package gptapimodels

import (
	"strings"

	"github.com/pkg/errors"
)

type GenerateDescriptionRequest struct {
	Prompt string `json:"prompt"`
}

func (r GenerateDescriptionRequest) Validate() error {
	if strings.TrimSpace(r.Prompt) == "" {
		return errors.New("prompt must not be empty")
	}
	return nil
}

type GenerateDescriptionResponse struct {
	Description string `json:"description"`
}
