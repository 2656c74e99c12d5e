package hiremind

import (
	"net/http"
	"time"

	"go.uber.org/zap"
)

const (
	defaultBaseURL = "http://localhost:8000"
	defaultTimeout = 30 * time.Second
	userAgent      = "hiremind/hiremind-cli"

	uploadPath     = "/api/upload"
	candidatesPath = "/api/candidates"
	matchPath      = "/api/match"
)

// Client talks to the HireMind API. It is the single point of contact with
// the remote service and owns the base URL, the timeout and the error
// normalization. It is constructed explicitly and passed to consumers; there
// is no package-level instance.
type Client struct {
	logger     *zap.Logger
	HTTPClient *http.Client
	UserAgent  string
	BaseURL    string
}

// New creates a client for the given base URL. An empty baseURL selects the
// default local development address.
func New(logger *zap.Logger, baseURL string) *Client {
	if baseURL == "" {
		baseURL = defaultBaseURL
	}

	return &Client{
		logger:  logger,
		BaseURL: baseURL,
		HTTPClient: &http.Client{
			Timeout: defaultTimeout,
		},
		UserAgent: userAgent,
	}
}
