package main

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestNewHTTPClient(t *testing.T) {
	t.Setenv("HTTP_CLIENT_TIMEOUT", "")
	require.NoError(t, os.Unsetenv("HTTP_CLIENT_TIMEOUT"))
	require.Zero(t, newHTTPClient().Timeout)

	t.Setenv("HTTP_CLIENT_TIMEOUT", "5s")
	require.Equal(t, 5*time.Second, newHTTPClient().Timeout)
}

func TestLoadEnvConfigs_TrustedProxies(t *testing.T) {
	t.Setenv("API_TRUSTED_PROXIES", "")
	require.Empty(t, loadEnvConfigs().ApiServer.TrustedProxies)

	t.Setenv("API_TRUSTED_PROXIES", "10.0.0.0/8, 192.168.1.1")
	require.Equal(t, []string{"10.0.0.0/8", "192.168.1.1"}, loadEnvConfigs().ApiServer.TrustedProxies)
}
