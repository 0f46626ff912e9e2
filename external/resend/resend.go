package resend

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"os"
	"time"
)

type Mailer struct {
	apiKey  string
	from    string
	client  *http.Client
	baseURL string
}

func NewMailer(from string) (*Mailer, error) {
	key := os.Getenv("RESEND_API_KEY")
	if key == "" {
		return nil, errors.New("RESEND_API_KEY not set")
	}

	return &Mailer{
		apiKey: key,
		from:   from,
		client: &http.Client{
			Timeout: 5 * time.Second,
		},
		baseURL: "https://api.resend.com",
	}, nil
}

type sendRequest struct {
	From    string   `json:"from"`
	To      []string `json:"to"`
	Subject string   `json:"subject"`
	HTML    string   `json:"html"`
}

func (m *Mailer) SendVerificationEmail(
	ctx context.Context,
	toEmail string,
	verifyURL string,
) error {
	body := sendRequest{
		From:    m.from,
		To:      []string{toEmail},
		Subject: "Verify your RestaunaX email",
		HTML: `
			<p>Welcome to RestaunaX!</p>
			<p>Please verify your email by clicking the link below before signing in:</p>
			<p><a href="` + verifyURL + `">Verify Email</a></p>
		`,
	}

	b, _ := json.Marshal(body)

	req, _ := http.NewRequestWithContext(
		ctx,
		http.MethodPost,
		m.baseURL+"/emails",
		bytes.NewBuffer(b),
	)

	req.Header.Set("Authorization", "Bearer "+m.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := m.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		buf := new(bytes.Buffer)
		buf.ReadFrom(resp.Body)
		return errors.New(
			"failed to send verification email: " + buf.String(),
		)
	}

	return nil
}
