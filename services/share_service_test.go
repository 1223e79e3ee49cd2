package services

import (
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildShareLink(t *testing.T) {
	link := BuildShareLink("alice", "Salad\nTotal Calories: 350 kcal", "https://nutri-app.onrender.com")

	require.True(t, strings.HasPrefix(link, "https://wa.me/?text="))

	parsed, err := url.Parse(link)
	require.NoError(t, err)
	msg := parsed.Query().Get("text")

	assert.Contains(t, msg, "NutriVision - Nutrition Report")
	assert.Contains(t, msg, "User: alice")
	assert.Contains(t, msg, "Salad\nTotal Calories: 350 kcal")
	assert.Contains(t, msg, "Download full PDF:\nhttps://nutri-app.onrender.com")
}

func TestBuildShareLinkEncodesWholeMessage(t *testing.T) {
	link := BuildShareLink("alice", "tricky & text = stuff", "https://example.com")

	// everything after the single text parameter must be one encoded value
	encoded := strings.TrimPrefix(link, "https://wa.me/?text=")
	assert.NotContains(t, encoded, " ")
	assert.NotContains(t, encoded, "\n")
	assert.NotContains(t, encoded, "&")
	assert.NotContains(t, encoded, "=")
}

func TestBuildShareLinkNoTruncation(t *testing.T) {
	long := strings.Repeat("Very detailed ingredient line\n", 500)
	link := BuildShareLink("bob", long, "https://example.com")

	parsed, err := url.Parse(link)
	require.NoError(t, err)
	assert.Contains(t, parsed.Query().Get("text"), long)
}
