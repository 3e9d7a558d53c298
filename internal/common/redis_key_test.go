package common

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRedisKeySearchInfluencers(t *testing.T) {
	budget := 250.0
	require.Equal(t, "search:influencers:any:fitness", RedisKeySearchInfluencers("Fitness", nil))
	require.Equal(t, "search:influencers:250:fitness", RedisKeySearchInfluencers("fitness", &budget))
	require.NotEqual(t,
		RedisKeySearchInfluencers("fitness", nil),
		RedisKeySearchInfluencers("fitness", &budget),
	)
}

func TestExecuteHTMLTemplate_Escapes(t *testing.T) {
	s, err := ExecuteHTMLTemplate(OutreachFormPage, map[string]any{
		"AssistantID": "a1",
		"Action":      "/outreach-form",
		"Name":        "<script>",
	})
	require.NoError(t, err)
	require.Contains(t, s, "Outreach Form")
	require.Contains(t, s, `value="a1"`)
	require.NotContains(t, s, "<script>")
}
