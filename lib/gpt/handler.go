package gpthandler

import (
	"context"
	"regexp"
	"strings"

	log "github.com/sirupsen/logrus"

	yagptclient "event-staffing-bff/lib/gpt/yagpt-client"
	gptmodels "event-staffing-bff/models/api/gpt"
)

const descriptionInstruction = "You are an assistant for event organizers. " +
	"Write a short professional event description based on the details the user provides. " +
	"Answer with the description text only."

type Provider interface {
	GenerateEventDescription(ctx context.Context, req gptmodels.GenerateDescriptionRequest) (resp gptmodels.GenerateDescriptionResponse, err error)
}

var Instance Provider

func NewHandler(iamToken, catalogID string) {
	Instance = impl{
		client: yagptclient.NewClient(iamToken, catalogID),
	}
}

type impl struct {
	client yagptclient.Provider
}

var whitespaceRe = regexp.MustCompile(`\s+`)

func (i impl) GenerateEventDescription(ctx context.Context, req gptmodels.GenerateDescriptionRequest) (resp gptmodels.GenerateDescriptionResponse, err error) {
	if err = req.Validate(); err != nil {
		return resp, err
	}
	generated, err := i.client.Generate(ctx, descriptionInstruction, req.Prompt)
	if err != nil {
		log.WithError(err).Error("event description generation failed")
		return resp, err
	}
	// the model answers with paragraphs, the description field is single-line
	resp.Description = strings.TrimSpace(whitespaceRe.ReplaceAllString(generated, " "))
	return resp, nil
}
