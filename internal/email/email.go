// Package email sends contact-form notifications through the Resend
// HTTP API. Without an API key configured it degrades to logging the
// message locally so the contact form keeps working in development.
package email

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"strings"
)

const defaultEndpoint = "https://api.resend.com/emails"

type Client struct {
	apiKey   string
	from     string
	endpoint string
	http     *http.Client
}

func NewClient(apiKey string) *Client {
	return &Client{
		apiKey:   apiKey,
		from:     "Portfolio <noreply@varunsingla.com>",
		endpoint: defaultEndpoint,
		http:     http.DefaultClient,
	}
}

type sendRequest struct {
	From    string   `json:"from"`
	To      []string `json:"to"`
	Subject string   `json:"subject"`
	HTML    string   `json:"html"`
}

// Send delivers one HTML email. With no API key configured the message
// is logged and nil is returned; with a key configured, provider
// errors propagate to the caller.
func (c *Client) Send(to, subject, html string) error {
	if c.apiKey == "" {
		log.Printf("email: no API key configured, logging instead of sending")
		log.Printf("email: to=%s subject=%q", to, subject)
		return nil
	}

	body, err := json.Marshal(sendRequest{
		From:    c.from,
		To:      []string{to},
		Subject: subject,
		HTML:    html,
	})
	if err != nil {
		return fmt.Errorf("email: encoding request: %w", err)
	}

	req, err := http.NewRequest(http.MethodPost, c.endpoint, bytes.NewBuffer(body))
	if err != nil {
		return fmt.Errorf("email: building request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("email: sending: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		detail, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("email: provider returned %d: %s", resp.StatusCode, detail)
	}
	return nil
}

// ContactNotification renders the HTML body for a new contact-form
// submission.
func ContactNotification(name, fromEmail, company, subject, message string) string {
	var b strings.Builder
	b.WriteString("<h2>New Contact Form Submission</h2>")
	fmt.Fprintf(&b, "<p><strong>Name:</strong> %s</p>", name)
	fmt.Fprintf(&b, "<p><strong>Email:</strong> %s</p>", fromEmail)
	if company != "" {
		fmt.Fprintf(&b, "<p><strong>Company:</strong> %s</p>", company)
	}
	fmt.Fprintf(&b, "<p><strong>Subject:</strong> %s</p>", subject)
	b.WriteString("<p><strong>Message:</strong></p>")
	fmt.Fprintf(&b, `<div style="background-color: #f3f4f6; padding: 15px; border-radius: 5px;">%s</div>`,
		strings.ReplaceAll(message, "\n", "<br>"))
	return b.String()
}
