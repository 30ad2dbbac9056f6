// Package whatsapp composes order messages and the deep links that hand them to the chat app.
package whatsapp

import (
	"net/url"
	"strings"
)

const (
	chatBaseURL = "https://wa.me/"
	sendBaseURL = "https://api.whatsapp.com/send"
)

// NormalizePhone keeps only the digits of a phone number.
func NormalizePhone(phone string) string {
	var b strings.Builder
	for _, r := range phone {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// ChatLink opens a chat with phone prefilled with text.
func ChatLink(phone, text string) string {
	return chatBaseURL + NormalizePhone(phone) + "?text=" + escape(text)
}

// SendLink opens the send screen for phone prefilled with text.
func SendLink(phone, text string) string {
	return sendBaseURL + "?phone=" + NormalizePhone(phone) + "&text=" + escape(text)
}

// escape percent-encodes text the way browsers encode URI components.
func escape(text string) string {
	return strings.ReplaceAll(url.QueryEscape(text), "+", "%20")
}
