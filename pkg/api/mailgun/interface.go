package mailgun

import "context"

type IEndpoint interface {
	Send(ctx context.Context, msg Message) (string, error)
}
