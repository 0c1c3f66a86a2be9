package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"
)

// ErrUnauthenticated is returned when the server rejects the stored token.
// The session is cleared before it is returned.
var ErrUnauthenticated = errors.New("client: not authenticated")

// Client talks to the FinLearn backend and maintains the local session.
type Client struct {
	baseURL    string
	httpClient *http.Client
	store      Store
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient replaces the default HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.httpClient = hc }
}

// New creates a Client for the given backend base URL, persisting session
// state in store.
func New(baseURL string, store Store, opts ...Option) *Client {
	c := &Client{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: 15 * time.Second},
		store:      store,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Profile is the server-side view of the authenticated user.
type Profile struct {
	ID        string `json:"_id"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	IsPremium bool   `json:"isPremium"`
	Role      Role   `json:"role"`
}

type loginResponse struct {
	Token string `json:"token"`
	Role  Role   `json:"role"`
	Admin *struct {
		ID   string `json:"id"`
		Name string `json:"name"`
	} `json:"admin"`
}

type errorResponse struct {
	Error string `json:"error"`
}

func (c *Client) do(ctx context.Context, method, path string, body any, bearer string, out any) (int, error) {
	var reqBody io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return 0, err
		}
		reqBody = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if err != nil {
		return 0, err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if bearer != "" {
		req.Header.Set("Authorization", "Bearer "+bearer)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return 0, err
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return resp.StatusCode, err
	}

	if resp.StatusCode >= 400 {
		var er errorResponse
		if json.Unmarshal(data, &er) == nil && er.Error != "" {
			return resp.StatusCode, fmt.Errorf("client: %s (%d)", er.Error, resp.StatusCode)
		}
		return resp.StatusCode, fmt.Errorf("client: unexpected status %d", resp.StatusCode)
	}

	if out != nil {
		if err := json.Unmarshal(data, out); err != nil {
			return resp.StatusCode, err
		}
	}
	return resp.StatusCode, nil
}

// Login authenticates a user with credentials, saves the session and
// populates the premium flag from the profile.
func (c *Client) Login(ctx context.Context, email, password string) (Session, error) {
	var lr loginResponse
	creds := map[string]string{"email": email, "password": password}
	if _, err := c.do(ctx, http.MethodPost, "/api/auth/user/login", creds, "", &lr); err != nil {
		return Session{}, err
	}
	return c.establishUserSession(ctx, lr.Token)
}

// AdminLogin authenticates an admin and saves the session.
func (c *Client) AdminLogin(ctx context.Context, email, password string) (Session, error) {
	var lr loginResponse
	creds := map[string]string{"email": email, "password": password}
	if _, err := c.do(ctx, http.MethodPost, "/api/auth/admin/login", creds, "", &lr); err != nil {
		return Session{}, err
	}
	session := Session{Token: lr.Token, Role: RoleAdmin}
	if err := c.store.Save(session); err != nil {
		return Session{}, err
	}
	return session, nil
}

// Register creates a user account and saves the resulting session.
func (c *Client) Register(ctx context.Context, name, email, password string) (Session, error) {
	var lr loginResponse
	body := map[string]string{"name": name, "email": email, "password": password}
	if _, err := c.do(ctx, http.MethodPost, "/api/auth/user/register", body, "", &lr); err != nil {
		return Session{}, err
	}
	return c.establishUserSession(ctx, lr.Token)
}

// establishUserSession fetches the profile for the freshly issued token and
// saves the full session. A profile failure saves nothing, so the store never
// holds a half-authenticated state.
func (c *Client) establishUserSession(ctx context.Context, token string) (Session, error) {
	profile, err := c.fetchProfile(ctx, token)
	if err != nil {
		return Session{}, err
	}
	session := Session{Token: token, Role: RoleUser, IsPremium: profile.IsPremium}
	if err := c.store.Save(session); err != nil {
		return Session{}, err
	}
	return session, nil
}

func (c *Client) fetchProfile(ctx context.Context, token string) (*Profile, error) {
	var profile Profile
	status, err := c.do(ctx, http.MethodGet, "/api/user/profile", nil, token, &profile)
	if err != nil {
		if status == http.StatusUnauthorized {
			return nil, ErrUnauthenticated
		}
		return nil, err
	}
	return &profile, nil
}

// Profile returns the authenticated user's profile. A 401 clears the session.
func (c *Client) Profile(ctx context.Context) (*Profile, error) {
	session, err := c.store.Load()
	if err != nil {
		return nil, ErrUnauthenticated
	}
	profile, err := c.fetchProfile(ctx, session.Token)
	if errors.Is(err, ErrUnauthenticated) {
		_ = c.store.Clear()
	}
	return profile, err
}

// Refresh re-derives the premium flag from the server. Call it after any
// entitlement-changing action such as a premium upgrade; the mirror in the
// store is stale until then.
func (c *Client) Refresh(ctx context.Context) (Session, error) {
	session, err := c.store.Load()
	if err != nil {
		return Session{}, ErrUnauthenticated
	}
	if session.Role != RoleUser {
		return session, nil
	}
	profile, err := c.fetchProfile(ctx, session.Token)
	if err != nil {
		if errors.Is(err, ErrUnauthenticated) {
			_ = c.store.Clear()
		}
		return Session{}, err
	}
	session.IsPremium = profile.IsPremium
	if err := c.store.Save(session); err != nil {
		return Session{}, err
	}
	return session, nil
}

// Logout clears the local session. For admin sessions the server is notified
// best effort; tokens are stateless so the clear is what ends the session.
func (c *Client) Logout(ctx context.Context) error {
	session, err := c.store.Load()
	if err == nil && session.Role == RoleAdmin {
		_, _ = c.do(ctx, http.MethodPost, "/api/auth/admin/logout", nil, session.Token, nil)
	}
	return c.store.Clear()
}

// HandleGoogleCallback completes the OAuth flow on the frontend callback
// route. The raw URL is the one the backend redirected the browser to. A
// missing token parameter yields an error and a redirect decision without
// touching the store; a profile failure after saving clears the session so
// no half-authenticated state survives.
func (c *Client) HandleGoogleCallback(ctx context.Context, rawURL string) (Decision, error) {
	parsed, err := url.Parse(rawURL)
	if err != nil {
		return denied(RoleUser), err
	}
	token := parsed.Query().Get("token")
	if token == "" {
		return denied(RoleUser), errors.New("client: callback missing token")
	}

	if _, err := c.establishUserSession(ctx, token); err != nil {
		_ = c.store.Clear()
		return denied(RoleUser), err
	}
	return Decision{Authorized: true}, nil
}
