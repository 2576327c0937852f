package captcha

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"strings"
)

const verifyURL = "https://www.google.com/recaptcha/api/siteverify"

// Verifier reports whether a submitted challenge token is valid.
type Verifier interface {
	Verify(ctx context.Context, token string) (bool, error)
}

type recaptchaVerifier struct {
	secret     string
	httpClient *http.Client
}

func New(secret string) Verifier {
	return &recaptchaVerifier{
		secret:     secret,
		httpClient: &http.Client{},
	}
}

func (v *recaptchaVerifier) Verify(ctx context.Context, token string) (bool, error) {
	form := url.Values{}
	form.Set("secret", v.secret)
	form.Set("response", token)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, verifyURL, strings.NewReader(form.Encode()))
	if err != nil {
		return false, err
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := v.httpClient.Do(req)
	if err != nil {
		return false, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return false, err
	}

	var result struct {
		Success bool `json:"success"`
	}
	if err := json.Unmarshal(body, &result); err != nil {
		return false, err
	}

	return result.Success, nil
}
