package mailgun

import (
	"context"
	"errors"
	"fmt"

	"github.com/influencerflow/backend/config"
	"github.com/influencerflow/backend/pkg/api"
	"github.com/influencerflow/backend/pkg/xcontext"
	"github.com/mitchellh/mapstructure"
)

const defaultAPIEndpoint = "https://api.mailgun.net"

type Message struct {
	From    string
	To      []string
	Subject string
	Text    string
	HTML    string
}

type sendResult struct {
	ID      string `mapstructure:"id"`
	Message string `mapstructure:"message"`
}

type Endpoint struct {
	apiKey string
	domain string
	sender string

	apiGenerator api.Generator
}

func New(cfg config.MailgunConfigs) *Endpoint {
	endpoint := cfg.APIEndpoint
	if endpoint == "" {
		endpoint = defaultAPIEndpoint
	}

	sender := cfg.Sender
	if sender == "" {
		sender = fmt.Sprintf("Mailgun Sandbox <postmaster@%s>", cfg.Domain)
	}

	return &Endpoint{
		apiKey:       cfg.APIKey,
		domain:       cfg.Domain,
		sender:       sender,
		apiGenerator: api.NewGenerator(endpoint),
	}
}

// Send delivers msg and returns the message id assigned by mailgun. An empty
// From uses the configured sender.
func (e *Endpoint) Send(ctx context.Context, msg Message) (string, error) {
	if len(msg.To) == 0 {
		return "", errors.New("message has no recipient")
	}

	from := msg.From
	if from == "" {
		from = e.sender
	}

	fields := [][2]string{{"from", from}}
	for _, to := range msg.To {
		fields = append(fields, [2]string{"to", to})
	}
	fields = append(fields, [2]string{"subject", msg.Subject})
	if msg.Text != "" {
		fields = append(fields, [2]string{"text", msg.Text})
	}
	if msg.HTML != "" {
		fields = append(fields, [2]string{"html", msg.HTML})
	}

	resp, err := e.apiGenerator.New("/v3/%s/messages", e.domain).
		Body(api.FormData{Fields: fields}).
		POST(ctx, api.BasicAuth("api", e.apiKey))
	if err != nil {
		return "", err
	}

	if !api.IsSuccess(resp.Code) {
		xcontext.Logger(ctx).Errorf("Invalid status code of mailgun: %d %s", resp.Code, string(resp.RawBody))
		return "", fmt.Errorf("invalid status code %d", resp.Code)
	}

	body, ok := resp.Body.(api.JSON)
	if !ok {
		return "", errors.New("invalid body format")
	}

	result := sendResult{}
	if err := mapstructure.Decode(body, &result); err != nil {
		return "", err
	}

	return result.ID, nil
}
