// Package github implements the OAuth handshake against GitHub.
package github

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"sync"
	"time"

	"stockroom/config"
	"stockroom/internal/domain/entity"
	"stockroom/internal/domain/service"

	"github.com/pkg/errors"
)

const (
	githubAuthorizeURL = "https://github.com/login/oauth/authorize"
	githubTokenURL     = "https://github.com/login/oauth/access_token"
	githubUserURL      = "https://api.github.com/user"

	stateTTL = 10 * time.Minute
)

// OAuthService handles GitHub OAuth infrastructure operations
type OAuthService struct {
	clientID     string
	clientSecret string
	callbackURL  string
	scopes       string

	httpClient *http.Client

	// State storage for CSRF protection
	stateMutex sync.Mutex
	stateStore map[string]time.Time
}

// NewOAuthService creates a new GitHub OAuth service
func NewOAuthService(cfg *config.Config) service.OAuthService {
	return &OAuthService{
		clientID:     cfg.GitHubOAuth.ClientID,
		clientSecret: cfg.GitHubOAuth.ClientSecret,
		callbackURL:  cfg.GitHubOAuth.CallbackURL,
		scopes:       cfg.GitHubOAuth.Scopes,
		httpClient:   &http.Client{Timeout: 15 * time.Second},
		stateStore:   make(map[string]time.Time),
	}
}

// AuthorizationURL constructs the GitHub authorization URL with a state
// parameter stored for later CSRF validation.
func (s *OAuthService) AuthorizationURL() string {
	state := s.generateState()
	s.storeState(state)

	params := url.Values{}
	params.Set("client_id", s.clientID)
	params.Set("redirect_uri", s.callbackURL)
	if s.scopes != "" {
		params.Set("scope", s.scopes)
	}
	params.Set("state", state)

	return githubAuthorizeURL + "?" + params.Encode()
}

// ValidateState validates the state parameter to prevent CSRF attacks. Each
// state validates at most once.
func (s *OAuthService) ValidateState(state string) bool {
	s.stateMutex.Lock()
	defer s.stateMutex.Unlock()

	expiry, exists := s.stateStore[state]
	if !exists {
		return false
	}

	// Single use, whether expired or not.
	delete(s.stateStore, state)

	return time.Now().Before(expiry)
}

// ExchangeCode exchanges an authorization code for an access token.
func (s *OAuthService) ExchangeCode(ctx context.Context, code string) (string, error) {
	data := url.Values{}
	data.Set("client_id", s.clientID)
	data.Set("client_secret", s.clientSecret)
	data.Set("code", code)
	data.Set("redirect_uri", s.callbackURL)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, githubTokenURL, strings.NewReader(data.Encode()))
	if err != nil {
		return "", errors.Wrap(err, "failed to create token exchange request")
	}

	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("Accept", "application/json")

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return "", errors.Wrap(err, "failed to exchange code for token")
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)

		return "", errors.Errorf("token exchange failed with status %d: %s", resp.StatusCode, string(body))
	}

	var tokenResponse struct {
		AccessToken      string `json:"access_token"`
		TokenType        string `json:"token_type"`
		Scope            string `json:"scope"`
		Error            string `json:"error"`
		ErrorDescription string `json:"error_description"`
	}

	if err := json.NewDecoder(resp.Body).Decode(&tokenResponse); err != nil {
		return "", errors.Wrap(err, "failed to decode token response")
	}

	// GitHub reports grant errors with a 200 status and an error body.
	if tokenResponse.Error != "" {
		return "", errors.Errorf("token exchange rejected: %s: %s", tokenResponse.Error, tokenResponse.ErrorDescription)
	}
	if tokenResponse.AccessToken == "" {
		return "", errors.New("token exchange returned an empty access token")
	}

	return tokenResponse.AccessToken, nil
}

// FetchProfile retrieves the identity profile using an access token.
func (s *OAuthService) FetchProfile(ctx context.Context, accessToken string) (*entity.IdentityProfile, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, githubUserURL, nil)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create user request")
	}

	req.Header.Set("Authorization", "Bearer "+accessToken)
	req.Header.Set("Accept", "application/vnd.github+json")

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return nil, errors.Wrap(err, "failed to fetch user profile")
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)

		return nil, errors.Errorf("user request failed with status %d: %s", resp.StatusCode, string(body))
	}

	var githubUser struct {
		ID        int64  `json:"id"`
		Login     string `json:"login"`
		Name      string `json:"name"`
		AvatarURL string `json:"avatar_url"`
	}

	if err := json.NewDecoder(resp.Body).Decode(&githubUser); err != nil {
		return nil, errors.Wrap(err, "failed to decode user response")
	}

	return &entity.IdentityProfile{
		ProviderID: strconv.FormatInt(githubUser.ID, 10),
		Username:   githubUser.Login,
		Name:       githubUser.Name,
		AvatarURL:  githubUser.AvatarURL,
	}, nil
}

// generateState generates a cryptographically secure random state string
func (s *OAuthService) generateState() string {
	bytes := make([]byte, 32)
	rand.Read(bytes)

	return hex.EncodeToString(bytes)
}

// storeState stores a state parameter with expiration time
func (s *OAuthService) storeState(state string) {
	s.stateMutex.Lock()
	defer s.stateMutex.Unlock()

	s.stateStore[state] = time.Now().Add(stateTTL)

	// Clean up expired states while we hold the lock.
	now := time.Now()
	for stored, expiry := range s.stateStore {
		if now.After(expiry) {
			delete(s.stateStore, stored)
		}
	}
}
