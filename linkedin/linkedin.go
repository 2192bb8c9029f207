// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package linkedin

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/endpoints"

	"github.com/danielhkuo/linkvote/config"
)

const defaultUserInfoURL = "https://api.linkedin.com/v2/userinfo"

// Profile is the subset of the OIDC userinfo response this service uses.
// Sub is the canonical subject identifier for the rest of the system.
type Profile struct {
	Sub   string `json:"sub"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// Client is the OAuth bridge to LinkedIn: build the authorization URL,
// exchange the callback code, fetch the profile. The exported fields exist so
// tests can point it at a fake provider.
type Client struct {
	OAuth       *oauth2.Config
	UserInfoURL string
	HTTPClient  *http.Client
}

func New(cfg config.Config) *Client {
	return &Client{
		OAuth: &oauth2.Config{
			ClientID:     cfg.LinkedInClientID,
			ClientSecret: cfg.LinkedInClientSecret,
			RedirectURL:  cfg.LinkedInRedirectURI,
			Endpoint:     endpoints.LinkedIn,
			Scopes:       []string{"openid", "profile", "email"},
		},
		UserInfoURL: defaultUserInfoURL,
		HTTPClient:  &http.Client{Timeout: 10 * time.Second},
	}
}

// AuthCodeURL returns the provider authorization URL for the given state.
func (c *Client) AuthCodeURL(state string) string {
	return c.OAuth.AuthCodeURL(state)
}

// FetchProfile exchanges an authorization code for an access token and
// fetches the user's OIDC profile with it.
func (c *Client) FetchProfile(ctx context.Context, code string) (Profile, error) {
	ctx = context.WithValue(ctx, oauth2.HTTPClient, c.HTTPClient)

	token, err := c.OAuth.Exchange(ctx, code)
	if err != nil {
		return Profile{}, fmt.Errorf("failed to exchange authorization code: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.UserInfoURL, nil)
	if err != nil {
		return Profile{}, err
	}
	req.Header.Set("Authorization", "Bearer "+token.AccessToken)

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return Profile{}, fmt.Errorf("failed to fetch profile: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return Profile{}, fmt.Errorf("profile fetch returned status %d", resp.StatusCode)
	}

	var p Profile
	if err := json.NewDecoder(resp.Body).Decode(&p); err != nil {
		return Profile{}, fmt.Errorf("failed to decode profile: %w", err)
	}
	if p.Sub == "" {
		return Profile{}, errors.New("profile response missing subject")
	}
	return p, nil
}
