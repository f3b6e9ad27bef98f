package jobseq

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"sync"
	"time"

	lru "github.com/hashicorp/golang-lru/v2"
)

const (
	defaultBaseURL         = "http://jobseq.eqsuite.com"
	defaultTimeout         = 30 * time.Second
	defaultLookupCacheSize = 64
)

// Client is the JobsEQ API client. Endpoint methods hang off the per-family
// service fields.
type Client struct {
	baseURL         string
	httpClient      *http.Client
	timeout         time.Duration
	token           string
	logger          *slog.Logger
	lookupCacheSize int
	lookupCache     *lru.Cache[string, []byte]

	mu            sync.Mutex
	serverVersion string

	common service

	// Services grouping the JobsEQ analytic families.
	Core         *CoreService
	Lookup       *LookupService
	IOMix        *IndustryOccupationMixService
	Trends       *TrendsService
	SupplyChain  *SupplyChainService
	Demographics *DemographicsService
	SkillGaps    *SkillGapsService
	Maps         *MapsService
	Impact       *EconomicImpactService
	AwardsGap    *AwardsGapService
	RTI          *RTIService
	DataFetch    *DataFetchService
}

type service struct {
	client *Client
}

// NewClient creates a JobsEQ client and performs the password-grant token
// exchange with the given credentials. When [WithToken] supplies a
// pre-acquired bearer token, the credentials are ignored and no exchange
// happens.
func NewClient(ctx context.Context, username, password string, opts ...Option) (*Client, error) {
	c := &Client{
		baseURL:         defaultBaseURL,
		httpClient:      http.DefaultClient,
		timeout:         defaultTimeout,
		logger:          slog.New(slog.NewTextHandler(io.Discard, nil)),
		lookupCacheSize: defaultLookupCacheSize,
	}

	for _, opt := range opts {
		opt(c)
	}

	cache, err := lru.New[string, []byte](c.lookupCacheSize)
	if err != nil {
		return nil, err
	}
	c.lookupCache = cache

	if c.token == "" {
		token, err := c.authenticate(ctx, username, password)
		if err != nil {
			return nil, err
		}
		c.token = token
	}

	c.common.client = c
	c.Core = (*CoreService)(&c.common)
	c.Lookup = (*LookupService)(&c.common)
	c.IOMix = (*IndustryOccupationMixService)(&c.common)
	c.Trends = (*TrendsService)(&c.common)
	c.SupplyChain = (*SupplyChainService)(&c.common)
	c.Demographics = (*DemographicsService)(&c.common)
	c.SkillGaps = (*SkillGapsService)(&c.common)
	c.Maps = (*MapsService)(&c.common)
	c.Impact = (*EconomicImpactService)(&c.common)
	c.AwardsGap = (*AwardsGapService)(&c.common)
	c.RTI = (*RTIService)(&c.common)
	c.DataFetch = (*DataFetchService)(&c.common)

	return c, nil
}

// Token returns the bearer token the client authenticates with.
func (c *Client) Token() string {
	return c.token
}

// ServerVersion returns the API version the server last reported in an
// X-Api-Version response header, or "" if none has been seen. Feed it to
// [CheckCompatibility] to detect drift between the SDK and the server.
func (c *Client) ServerVersion() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.serverVersion
}

func (c *Client) setServerVersion(v string) {
	if v == "" {
		return
	}
	c.mu.Lock()
	c.serverVersion = v
	c.mu.Unlock()
}
