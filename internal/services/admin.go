// Admin client for authenticated product mutations.
//
// The admin API expects a bearer token. Tokens are obtained either by
// password login or by importing one from a browser "Copy as cURL" snippet,
// and are persisted to disk as an [oauth2.Token] so sessions survive
// restarts, the same way the web admin panel keeps its token in local
// storage.
package services

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"
	"os"
	"path/filepath"

	"github.com/JAX838/delight-vision-sounds/internal/shared"
	"golang.org/x/oauth2"
)

// AdminService performs authenticated mutations against the store API.
type AdminService struct {
	baseURL    string
	httpClient *http.Client
	tokenPath  string
	token      *oauth2.Token
}

// NewAdminService creates an admin client persisting its token at tokenPath.
func NewAdminService(baseURL string, client *http.Client, tokenPath string) *AdminService {
	if baseURL == "" {
		baseURL = "http://localhost:5000"
	}
	if client == nil {
		client = http.DefaultClient
	}

	return &AdminService{
		baseURL:    baseURL,
		httpClient: client,
		tokenPath:  tokenPath,
	}
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginResponse struct {
	Token string `json:"token"`
}

type apiError struct {
	Message string `json:"message"`
}

// Login authenticates against the admin API and persists the issued token.
// A failed login leaves no token behind.
func (s *AdminService) Login(ctx context.Context, email, password string) error {
	if email == "" || password == "" {
		return fmt.Errorf("%w: email and password", shared.ErrMissingArgument)
	}

	body, err := json.Marshal(loginRequest{Email: email, Password: password})
	if err != nil {
		return fmt.Errorf("failed to encode login request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.baseURL+"/api/admin/login", bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("login request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusUnauthorized {
		return fmt.Errorf("%w: %s", shared.ErrAuthFailed, responseMessage(resp.Body))
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("%w: status %d", shared.ErrAPIRequest, resp.StatusCode)
	}

	var login loginResponse
	if err := json.NewDecoder(resp.Body).Decode(&login); err != nil {
		return fmt.Errorf("failed to decode login response: %w", err)
	}
	if login.Token == "" {
		return fmt.Errorf("%w: login response carried no token", shared.ErrAuthFailed)
	}

	return s.ImportToken(login.Token)
}

// ImportToken stores a bearer token obtained out of band (e.g. parsed from a
// browser cURL snippet) and persists it.
func (s *AdminService) ImportToken(accessToken string) error {
	if accessToken == "" {
		return fmt.Errorf("%w: empty token", shared.ErrInvalidArgument)
	}

	token := &oauth2.Token{AccessToken: accessToken, TokenType: "Bearer"}
	if err := s.saveToken(token); err != nil {
		return err
	}

	s.token = token
	return nil
}

// Authenticated reports whether a usable admin token is available.
func (s *AdminService) Authenticated() bool {
	token, err := s.currentToken()
	return err == nil && token.Valid()
}

// Logout removes the persisted admin token.
func (s *AdminService) Logout() error {
	s.token = nil
	if err := os.Remove(s.tokenPath); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to remove token: %w", err)
	}
	return nil
}

// UpdateProduct issues a multipart PUT updating the product's fields,
// specifications, and optionally its image.
func (s *AdminService) UpdateProduct(ctx context.Context, id string, update ProductUpdate) error {
	if id == "" {
		return fmt.Errorf("%w: product id", shared.ErrMissingArgument)
	}

	token, err := s.currentToken()
	if err != nil {
		return err
	}
	if !token.Valid() {
		return shared.ErrTokenExpired
	}

	body, contentType, err := buildUpdateBody(update)
	if err != nil {
		return err
	}

	endpoint := fmt.Sprintf("%s/api/products/%s", s.baseURL, url.PathEscape(id))
	req, err := http.NewRequestWithContext(ctx, http.MethodPut, endpoint, body)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", contentType)
	req.Header.Set("Authorization", "Bearer "+token.AccessToken)

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("update request failed: %w", err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusUnauthorized:
		return fmt.Errorf("%w: %s", shared.ErrNotAuthenticated, responseMessage(resp.Body))
	case resp.StatusCode == http.StatusNotFound:
		return fmt.Errorf("%w: %s", shared.ErrProductNotFound, id)
	case resp.StatusCode < 200 || resp.StatusCode >= 300:
		return fmt.Errorf("%w: %s", shared.ErrAPIRequest, responseMessage(resp.Body))
	}

	return nil
}

// buildUpdateBody assembles the multipart form for a product update.
func buildUpdateBody(update ProductUpdate) (io.Reader, string, error) {
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)

	fields := map[string]string{
		"name":           update.Name,
		"description":    update.Description,
		"price":          update.Price,
		"stock":          update.Stock,
		"specifications": string(update.Specifications),
	}
	if update.CategoryID != "" {
		fields["category"] = update.CategoryID
	}

	for key, value := range fields {
		if err := w.WriteField(key, value); err != nil {
			return nil, "", fmt.Errorf("failed to write form field %s: %w", key, err)
		}
	}

	if update.ImagePath != "" {
		file, err := os.Open(update.ImagePath)
		if err != nil {
			return nil, "", fmt.Errorf("failed to open image: %w", err)
		}
		defer file.Close()

		part, err := w.CreateFormFile("image", filepath.Base(update.ImagePath))
		if err != nil {
			return nil, "", fmt.Errorf("failed to create image part: %w", err)
		}
		if _, err := io.Copy(part, file); err != nil {
			return nil, "", fmt.Errorf("failed to copy image: %w", err)
		}
	}

	if err := w.Close(); err != nil {
		return nil, "", fmt.Errorf("failed to finalize form: %w", err)
	}

	return &buf, w.FormDataContentType(), nil
}

// currentToken returns the cached token, loading it from disk on first use.
func (s *AdminService) currentToken() (*oauth2.Token, error) {
	if s.token != nil {
		return s.token, nil
	}

	data, err := os.ReadFile(s.tokenPath)
	if os.IsNotExist(err) {
		return nil, fmt.Errorf("%w: run 'dvs admin login' first", shared.ErrNotAuthenticated)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read token: %w", err)
	}

	var token oauth2.Token
	if err := json.Unmarshal(data, &token); err != nil {
		return nil, fmt.Errorf("%w: stored token is malformed", shared.ErrNotAuthenticated)
	}
	if token.AccessToken == "" {
		return nil, fmt.Errorf("%w: stored token is empty", shared.ErrNotAuthenticated)
	}

	s.token = &token
	return s.token, nil
}

// saveToken persists the token with owner-only permissions.
func (s *AdminService) saveToken(token *oauth2.Token) error {
	if err := os.MkdirAll(filepath.Dir(s.tokenPath), 0700); err != nil {
		return fmt.Errorf("failed to create token directory: %w", err)
	}

	data, err := json.Marshal(token)
	if err != nil {
		return fmt.Errorf("failed to encode token: %w", err)
	}

	if err := os.WriteFile(s.tokenPath, data, 0600); err != nil {
		return fmt.Errorf("failed to write token: %w", err)
	}

	return nil
}

// responseMessage extracts the API's error message, falling back to a generic one.
func responseMessage(body io.Reader) string {
	var apiErr apiError
	if err := json.NewDecoder(body).Decode(&apiErr); err == nil && apiErr.Message != "" {
		return apiErr.Message
	}
	return "request rejected"
}
