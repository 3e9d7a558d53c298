package vapi

import (
	"context"
	"errors"
	"fmt"

	"github.com/influencerflow/backend/config"
	"github.com/influencerflow/backend/pkg/api"
	"github.com/influencerflow/backend/pkg/xcontext"
	"github.com/mitchellh/mapstructure"
)

const defaultAPIEndpoint = "https://api.vapi.ai"

// Error is returned when the vendor answers with a non-2xx status.
type Error struct {
	StatusCode int
	Message    string
}

func (e Error) Error() string {
	return fmt.Sprintf("vapi responded %d: %s", e.StatusCode, e.Message)
}

type Endpoint struct {
	apiKey       string
	apiGenerator api.Generator
}

func New(cfg config.VapiConfigs) *Endpoint {
	endpoint := cfg.APIEndpoint
	if endpoint == "" {
		endpoint = defaultAPIEndpoint
	}

	return &Endpoint{
		apiKey:       cfg.APIKey,
		apiGenerator: api.NewGenerator(endpoint),
	}
}

func (e *Endpoint) CreateAssistant(ctx context.Context, assistant Assistant) (CreatedAssistant, error) {
	resp, err := e.apiGenerator.New("/assistant").
		Body(api.Object{Value: assistant}).
		POST(ctx, api.OAuth2("Bearer", e.apiKey))
	if err != nil {
		return CreatedAssistant{}, err
	}

	body, err := checkResponse(ctx, resp)
	if err != nil {
		return CreatedAssistant{}, err
	}

	result := CreatedAssistant{}
	if err := mapstructure.Decode(body, &result); err != nil {
		return CreatedAssistant{}, err
	}

	if result.ID == "" {
		return CreatedAssistant{}, errors.New("vapi response has no assistant id")
	}

	return result, nil
}

func (e *Endpoint) CreateCall(ctx context.Context, req CallRequest) (Call, error) {
	resp, err := e.apiGenerator.New("/call").
		Body(api.Object{Value: req}).
		POST(ctx, api.OAuth2("Bearer", e.apiKey))
	if err != nil {
		return Call{}, err
	}

	body, err := checkResponse(ctx, resp)
	if err != nil {
		return Call{}, err
	}

	result := Call{}
	if err := mapstructure.Decode(body, &result); err != nil {
		return Call{}, err
	}

	if result.ID == "" {
		return Call{}, errors.New("vapi response has no call id")
	}

	return result, nil
}

func checkResponse(ctx context.Context, resp *api.Response) (api.JSON, error) {
	if !api.IsSuccess(resp.Code) {
		xcontext.Logger(ctx).Errorf("Invalid status code of vapi: %d %s", resp.Code, string(resp.RawBody))
		msg := string(resp.RawBody)
		if body, ok := resp.Body.(api.JSON); ok {
			if m, err := body.GetString("message"); err == nil && m != "" {
				msg = m
			}
		}

		return nil, Error{StatusCode: resp.Code, Message: msg}
	}

	body, ok := resp.Body.(api.JSON)
	if !ok {
		return nil, errors.New("invalid body format")
	}

	return body, nil
}
