package identity

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"scoutline-backend/internal/domain"
	"scoutline-backend/pkg/apperror"
)

// Client talks to the external identity provider's backend API. The provider
// owns user records and role metadata; this service never stores them.
type Client struct {
	baseURL    string
	secretKey  string
	httpClient *http.Client
}

func NewClient(baseURL, secretKey string) *Client {
	return &Client{
		baseURL:   strings.TrimRight(baseURL, "/"),
		secretKey: secretKey,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

// wire shape of the provider's user object
type providerUser struct {
	ID             string            `json:"id"`
	FirstName      string            `json:"first_name"`
	LastName       string            `json:"last_name"`
	ImageURL       string            `json:"image_url"`
	PublicMetadata map[string]string `json:"public_metadata"`
	EmailAddresses []struct {
		ID           string `json:"id"`
		EmailAddress string `json:"email_address"`
	} `json:"email_addresses"`
	PrimaryEmailAddressID string `json:"primary_email_address_id"`
}

func (u *providerUser) primaryEmail() string {
	for _, e := range u.EmailAddresses {
		if e.ID == u.PrimaryEmailAddressID {
			return e.EmailAddress
		}
	}
	if len(u.EmailAddresses) > 0 {
		return u.EmailAddresses[0].EmailAddress
	}
	return ""
}

// GetUser fetches the user's profile from the provider.
func (c *Client) GetUser(ctx context.Context, userID string) (*domain.IdentityUser, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, fmt.Sprintf("%s/v1/users/%s", c.baseURL, userID), nil)
	if err != nil {
		return nil, err
	}
	c.setHeaders(req)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, apperror.New(http.StatusInternalServerError, "Identity service unavailable", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return nil, apperror.Unauthorized("User not found")
	}
	if resp.StatusCode >= 400 {
		return nil, c.decodeError(resp)
	}

	var user providerUser
	if err := json.NewDecoder(resp.Body).Decode(&user); err != nil {
		return nil, apperror.New(http.StatusInternalServerError, "Failed to parse identity response", err)
	}

	return &domain.IdentityUser{
		ID:             user.ID,
		Email:          user.primaryEmail(),
		FirstName:      user.FirstName,
		LastName:       user.LastName,
		ImageURL:       user.ImageURL,
		PublicMetadata: user.PublicMetadata,
	}, nil
}

// SetUserRole writes the role into the user's public metadata.
func (c *Client) SetUserRole(ctx context.Context, userID, role string) error {
	body := map[string]interface{}{
		"public_metadata": map[string]string{
			"role": role,
		},
	}
	jsonBody, _ := json.Marshal(body)

	req, err := http.NewRequestWithContext(ctx, http.MethodPatch,
		fmt.Sprintf("%s/v1/users/%s/metadata", c.baseURL, userID), bytes.NewBuffer(jsonBody))
	if err != nil {
		return err
	}
	c.setHeaders(req)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return apperror.New(http.StatusInternalServerError, "Identity service unavailable", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		return c.decodeError(resp)
	}
	return nil
}

func (c *Client) setHeaders(req *http.Request) {
	req.Header.Set("Authorization", "Bearer "+c.secretKey)
	req.Header.Set("Content-Type", "application/json")
}

func (c *Client) decodeError(resp *http.Response) error {
	var errResp struct {
		Errors []struct {
			Message string `json:"message"`
		} `json:"errors"`
	}
	_ = json.NewDecoder(resp.Body).Decode(&errResp)

	msg := "Identity provider request failed"
	if len(errResp.Errors) > 0 && errResp.Errors[0].Message != "" {
		msg = errResp.Errors[0].Message
	}

	if resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden {
		return apperror.Unauthorized(msg)
	}
	return apperror.New(http.StatusInternalServerError, msg, fmt.Errorf("identity provider status %d", resp.StatusCode))
}
