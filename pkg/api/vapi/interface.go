package vapi

import "context"

type IEndpoint interface {
	CreateAssistant(ctx context.Context, assistant Assistant) (CreatedAssistant, error)
	CreateCall(ctx context.Context, req CallRequest) (Call, error)
}
