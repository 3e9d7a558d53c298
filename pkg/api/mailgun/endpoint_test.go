package mailgun

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/influencerflow/backend/config"
	"github.com/stretchr/testify/require"
)

func Test_Endpoint_Send(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/v3/mg.example.com/messages", r.URL.Path)

		user, pass, ok := r.BasicAuth()
		require.True(t, ok)
		require.Equal(t, "api", user)
		require.Equal(t, "mg-key", pass)

		require.NoError(t, r.ParseMultipartForm(1<<20))
		require.Equal(t, "Mailgun Sandbox <postmaster@mg.example.com>", r.FormValue("from"))
		require.Equal(t, "creator@example.com", r.FormValue("to"))
		require.Equal(t, "Start Your AI Outreach Call", r.FormValue("subject"))
		require.Equal(t, "text body", r.FormValue("text"))
		require.Equal(t, "<p>html</p>", r.FormValue("html"))

		_, _ = w.Write([]byte(`{"id":"<msg-1@mg.example.com>","message":"Queued. Thank you."}`))
	}))
	defer server.Close()

	endpoint := New(config.MailgunConfigs{
		APIEndpoint: server.URL,
		APIKey:      "mg-key",
		Domain:      "mg.example.com",
	})

	id, err := endpoint.Send(context.Background(), Message{
		To:      []string{"creator@example.com"},
		Subject: "Start Your AI Outreach Call",
		Text:    "text body",
		HTML:    "<p>html</p>",
	})
	require.NoError(t, err)
	require.Equal(t, "<msg-1@mg.example.com>", id)
}

func Test_Endpoint_Send_Failure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
		_, _ = w.Write([]byte(`Forbidden`))
	}))
	defer server.Close()

	endpoint := New(config.MailgunConfigs{APIEndpoint: server.URL, Domain: "mg.example.com"})
	_, err := endpoint.Send(context.Background(), Message{To: []string{"creator@example.com"}})
	require.Error(t, err)
}

func Test_Endpoint_Send_NoRecipient(t *testing.T) {
	endpoint := New(config.MailgunConfigs{Domain: "mg.example.com"})
	_, err := endpoint.Send(context.Background(), Message{})
	require.Error(t, err)
}
