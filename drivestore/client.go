package drivestore

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	"golang.org/x/oauth2/google"
	"golang.org/x/oauth2/jwt"
	drive "google.golang.org/api/drive/v3"
	"google.golang.org/api/option"

	"github.com/AnthonySaastify/Dr.Viva-v2/config"
)

var (
	// ErrMissingCredentials means the Drive service-account env vars are
	// absent or malformed.
	ErrMissingCredentials = errors.New("missing Google Drive credentials")

	// ErrSubjectNotMapped means the subject has no configured Drive folder.
	ErrSubjectNotMapped = errors.New("subject has no Drive folder mapping")
)

// Client wraps the Drive API for attachment storage. The subject->folder
// mapping is injected configuration, not package state, so tests can run
// isolated instances. The underlying service is built lazily for the same
// reason as the Sheets client: missing credentials fail per call.
type Client struct {
	subjectFolders map[string]string
	pageSize       int64

	mu    sync.Mutex
	srv   *drive.Service
	newFn func(ctx context.Context) (*drive.Service, error)
}

func NewClient(cfg config.Config) *Client {
	return &Client{
		subjectFolders: cfg.SubjectFolders,
		pageSize:       int64(cfg.DrivePageSize),
		newFn: func(ctx context.Context) (*drive.Service, error) {
			return newService(ctx, cfg)
		},
	}
}

// NewClientWithService wires a pre-built Drive service, typically one
// pointed at a fake backend in tests.
func NewClientWithService(srv *drive.Service, subjectFolders map[string]string, pageSize int64) *Client {
	return &Client{
		subjectFolders: subjectFolders,
		pageSize:       pageSize,
		srv:            srv,
	}
}

func (c *Client) service(ctx context.Context) (*drive.Service, error) {
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

func newService(ctx context.Context, cfg config.Config) (*drive.Service, error) {
	if cfg.GoogleClientEmail == "" || cfg.GooglePrivateKey == "" {
		return nil, fmt.Errorf("%w: please check GOOGLE_CLIENT_EMAIL and GOOGLE_PRIVATE_KEY environment variables", ErrMissingCredentials)
	}

	key := strings.ReplaceAll(strings.Trim(strings.TrimSpace(cfg.GooglePrivateKey), `"'`), `\n`, "\n")
	if !strings.Contains(key, "-----BEGIN") {
		return nil, fmt.Errorf("%w: GOOGLE_PRIVATE_KEY is not in PEM format", ErrMissingCredentials)
	}

	conf := &jwt.Config{
		Email:      cfg.GoogleClientEmail,
		PrivateKey: []byte(key),
		Scopes: []string{
			drive.DriveFileScope,
			drive.DriveMetadataReadonlyScope,
		},
		TokenURL: google.JWTTokenURL,
	}

	srv, err := drive.NewService(ctx, option.WithHTTPClient(conf.Client(ctx)))
	if err != nil {
		return nil, fmt.Errorf("unable to create Drive client: %w", err)
	}
	return srv, nil
}
