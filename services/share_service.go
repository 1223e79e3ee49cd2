package services

import (
	"fmt"
	"net/url"
)

const whatsAppBase = "https://wa.me/?text="

const shareTemplate = `
NutriVision - Nutrition Report

User: %s

%s

Download full PDF:
%s
`

// BuildShareLink composes the share message and percent-encodes the whole
// thing as the single text query parameter on the WhatsApp deep link.
// The message is never truncated; overly long analyses may exceed what
// WhatsApp accepts in practice.
func BuildShareLink(username, rawText, appURL string) string {
	msg := fmt.Sprintf(shareTemplate, username, rawText, appURL)
	return whatsAppBase + url.QueryEscape(msg)
}
