package sheetstore

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	"golang.org/x/oauth2/google"
	"golang.org/x/oauth2/jwt"
	"google.golang.org/api/option"
	sheets "google.golang.org/api/sheets/v4"

	"github.com/AnthonySaastify/Dr.Viva-v2/config"
)

var (
	// ErrMissingCredentials means the service-account env vars are absent
	// or malformed. Detected at client construction, reported per call.
	ErrMissingCredentials = errors.New("missing Google Sheets credentials")

	// ErrRowNotFound means no sheet row carries the requested task ID.
	ErrRowNotFound = errors.New("task row not found")
)

// Client lazily builds the authenticated Sheets service so that a process
// started without credentials still boots and fails per call with a
// descriptive error instead of crashing.
type Client struct {
	spreadsheetID string
	sheetName     string

	mu    sync.Mutex
	srv   *sheets.Service
	newFn func(ctx context.Context) (*sheets.Service, error)
}

func NewClient(cfg config.Config) *Client {
	return &Client{
		spreadsheetID: cfg.SpreadsheetID,
		sheetName:     cfg.SheetName,
		newFn: func(ctx context.Context) (*sheets.Service, error) {
			return newService(ctx, cfg)
		},
	}
}

// NewClientWithService wires a pre-built Sheets service, typically one
// pointed at a fake backend in tests.
func NewClientWithService(srv *sheets.Service, spreadsheetID, sheetName string) *Client {
	return &Client{
		spreadsheetID: spreadsheetID,
		sheetName:     sheetName,
		srv:           srv,
	}
}

func (c *Client) service(ctx context.Context) (*sheets.Service, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.srv != nil {
		return c.srv, nil
	}
	srv, err := c.newFn(ctx)
	if err != nil {
		return nil, err
	}
	c.srv = srv
	return srv, nil
}

func newService(ctx context.Context, cfg config.Config) (*sheets.Service, error) {
	if cfg.GoogleClientEmail == "" || cfg.GooglePrivateKey == "" {
		return nil, fmt.Errorf("%w: please check GOOGLE_CLIENT_EMAIL and GOOGLE_PRIVATE_KEY environment variables", ErrMissingCredentials)
	}

	key, err := normalizePrivateKey(cfg.GooglePrivateKey)
	if err != nil {
		return nil, err
	}

	conf := &jwt.Config{
		Email:      cfg.GoogleClientEmail,
		PrivateKey: []byte(key),
		Scopes:     []string{sheets.SpreadsheetsScope},
		TokenURL:   google.JWTTokenURL,
	}

	srv, err := sheets.NewService(ctx, option.WithHTTPClient(conf.Client(ctx)))
	if err != nil {
		return nil, fmt.Errorf("unable to create Sheets client: %w", err)
	}
	return srv, nil
}

// normalizePrivateKey repairs the usual env-var manglings of a PEM key:
// surrounding quotes and literal \n sequences.
func normalizePrivateKey(key string) (string, error) {
	k := strings.TrimSpace(key)
	k = strings.Trim(k, `"'`)
	k = strings.ReplaceAll(k, `\n`, "\n")
	if !strings.Contains(k, "-----BEGIN") {
		return "", fmt.Errorf("%w: GOOGLE_PRIVATE_KEY is not in PEM format", ErrMissingCredentials)
	}
	return k, nil
}
