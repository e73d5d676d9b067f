package auth

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
)

// defaultIdentityEndpoint is the Identity Toolkit REST base used when no
// override is configured.
const defaultIdentityEndpoint = "https://identitytoolkit.googleapis.com/v1"

// Client talks to the hosted identity service for email/password accounts.
// Every call fails independently with a human-readable message; callers
// surface the message directly.
type Client struct {
	APIKey     string
	Endpoint   string
	HTTPClient *http.Client
}

// NewClient reads IDENTITY_API_KEY and the optional IDENTITY_ENDPOINT
// override from the environment.
func NewClient() *Client {
	endpoint := os.Getenv("IDENTITY_ENDPOINT")
	if endpoint == "" {
		endpoint = defaultIdentityEndpoint
	}
	return &Client{
		APIKey:     os.Getenv("IDENTITY_API_KEY"),
		Endpoint:   endpoint,
		HTTPClient: &http.Client{},
	}
}

type identityResponse struct {
	LocalID     string `json:"localId"`
	Email       string `json:"email"`
	DisplayName string `json:"displayName"`
	IDToken     string `json:"idToken"`
	Error       *struct {
		Message string `json:"message"`
	} `json:"error,omitempty"`
}

// SignIn exchanges email/password for a session and a signed token.
func (c *Client) SignIn(ctx context.Context, email, password string) (Session, string, error) {
	resp, err := c.post(ctx, "accounts:signInWithPassword", map[string]interface{}{
		"email":             email,
		"password":          password,
		"returnSecureToken": true,
	})
	if err != nil {
		return Session{}, "", err
	}
	sess := Session{
		UserID:   resp.LocalID,
		Email:    resp.Email,
		Name:     resp.DisplayName,
		Provider: "password",
	}
	return sess, issueJWT(resp.Email, "user", resp.LocalID, resp.DisplayName, ""), nil
}

// SignUp creates an account with a display name and returns the session.
func (c *Client) SignUp(ctx context.Context, email, password, displayName string) (Session, string, error) {
	resp, err := c.post(ctx, "accounts:signUp", map[string]interface{}{
		"email":             email,
		"password":          password,
		"returnSecureToken": true,
	})
	if err != nil {
		return Session{}, "", err
	}

	// The sign-up call cannot set a display name; a follow-up update does.
	if displayName != "" {
		if _, err := c.post(ctx, "accounts:update", map[string]interface{}{
			"idToken":           resp.IDToken,
			"displayName":       displayName,
			"returnSecureToken": false,
		}); err != nil {
			return Session{}, "", err
		}
	}

	sess := Session{
		UserID:   resp.LocalID,
		Email:    resp.Email,
		Name:     displayName,
		Provider: "password",
	}
	return sess, issueJWT(resp.Email, "user", resp.LocalID, displayName, ""), nil
}

// RequestPasswordReset asks the identity service to send a reset email.
func (c *Client) RequestPasswordReset(ctx context.Context, email string) error {
	_, err := c.post(ctx, "accounts:sendOobCode", map[string]interface{}{
		"requestType": "PASSWORD_RESET",
		"email":       email,
	})
	return err
}

func (c *Client) post(ctx context.Context, action string, payload map[string]interface{}) (*identityResponse, error) {
	jsonData, _ := json.Marshal(payload)
	url := fmt.Sprintf("%s/%s?key=%s", c.Endpoint, action, c.APIKey)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewBuffer(jsonData))
	if err != nil {
		return nil, fmt.Errorf("identity request failed: %v", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to reach identity service: %v", err)
	}
	defer resp.Body.Close()

	body, _ := io.ReadAll(resp.Body)

	var idResp identityResponse
	if err := json.Unmarshal(body, &idResp); err != nil {
		return nil, fmt.Errorf("failed to parse identity response: %v", err)
	}
	if resp.StatusCode != http.StatusOK {
		if idResp.Error != nil {
			return nil, fmt.Errorf("%s", humanizeIdentityError(idResp.Error.Message))
		}
		return nil, fmt.Errorf("identity service error (%d)", resp.StatusCode)
	}
	return &idResp, nil
}

// humanizeIdentityError converts the service's SCREAMING_SNAKE codes into
// messages fit to show a user.
func humanizeIdentityError(code string) string {
	switch {
	case code == "EMAIL_NOT_FOUND" || code == "INVALID_PASSWORD" || strings.HasPrefix(code, "INVALID_LOGIN_CREDENTIALS"):
		return "Incorrect email or password"
	case code == "EMAIL_EXISTS":
		return "An account with this email already exists"
	case strings.HasPrefix(code, "WEAK_PASSWORD"):
		return "Password should be at least 6 characters"
	case strings.HasPrefix(code, "TOO_MANY_ATTEMPTS"):
		return "Too many attempts, please try again later"
	case code == "INVALID_EMAIL":
		return "Invalid email address"
	default:
		return "Authentication failed: " + code
	}
}
