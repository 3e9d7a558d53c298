package testutil

import (
	"context"
	"errors"

	"github.com/influencerflow/backend/pkg/api/mailgun"
	"github.com/influencerflow/backend/pkg/api/vapi"
)

type MockVapiEndpoint struct {
	CreateAssistantFunc func(ctx context.Context, assistant vapi.Assistant) (vapi.CreatedAssistant, error)
	CreateCallFunc      func(ctx context.Context, req vapi.CallRequest) (vapi.Call, error)
}

func (e *MockVapiEndpoint) CreateAssistant(ctx context.Context, assistant vapi.Assistant) (vapi.CreatedAssistant, error) {
	if e.CreateAssistantFunc != nil {
		return e.CreateAssistantFunc(ctx, assistant)
	}

	return vapi.CreatedAssistant{}, errors.New("not implemented")
}

func (e *MockVapiEndpoint) CreateCall(ctx context.Context, req vapi.CallRequest) (vapi.Call, error) {
	if e.CreateCallFunc != nil {
		return e.CreateCallFunc(ctx, req)
	}

	return vapi.Call{}, errors.New("not implemented")
}

type MockMailgunEndpoint struct {
	SendFunc func(ctx context.Context, msg mailgun.Message) (string, error)
}

func (e *MockMailgunEndpoint) Send(ctx context.Context, msg mailgun.Message) (string, error) {
	if e.SendFunc != nil {
		return e.SendFunc(ctx, msg)
	}

	return "", errors.New("not implemented")
}
