package queryrdap

import (
	"context"
	"errors"
	"net"
	"net/http"
	"net/netip"
	"net/url"
	"time"

	"phishabuser/internal/queryerror"

	"github.com/openrdap/rdap"
	"github.com/openrdap/rdap/bootstrap"
	"github.com/openrdap/rdap/bootstrap/cache"
	"github.com/rotisserie/eris"
	"golang.org/x/time/rate"
)

type Options struct {
	UserAgent string
	Timeout   time.Duration
	// BootstrapURL overrides the IANA bootstrap base, it must end with a slash
	BootstrapURL string
	// BootstrapCacheDir enables the openrdap disk cache when set
	BootstrapCacheDir string
	// RateLimit caps registry requests per second, 0 disables it
	RateLimit float64
	RateBurst int
}

// Client implements Registry on top of openrdap. It keeps no per-lookup state.
type Client struct {
	bootstrap *bootstrap.Client
	rdap      *rdap.Client
	limiter   *rate.Limiter
}

type userAgentTransport struct {
	userAgent string
	next      http.RoundTripper
}

func (t *userAgentTransport) RoundTrip(r *http.Request) (*http.Response, error) {
	if t.userAgent != "" && r.Header.Get("User-Agent") == "" {
		r = r.Clone(r.Context())
		r.Header.Set("User-Agent", t.userAgent)
	}

	return t.next.RoundTrip(r)
}

func New(opts Options) (*Client, error) {
	httpClient := &http.Client{
		Timeout: opts.Timeout,
		Transport: &userAgentTransport{
			userAgent: opts.UserAgent,
			next:      http.DefaultTransport,
		},
	}

	bs := &bootstrap.Client{HTTP: httpClient}

	if opts.BootstrapURL != "" {
		baseURL, err := url.Parse(opts.BootstrapURL)
		if err != nil {
			return nil, eris.Wrapf(err, "invalid bootstrap url %q", opts.BootstrapURL)
		}
		bs.BaseURL = baseURL
	}

	if opts.BootstrapCacheDir != "" {
		c := cache.NewDiskCache()
		if c == nil {
			return nil, eris.New("could not create the RDAP disk cache")
		}
		c.Dir = opts.BootstrapCacheDir
		bs.Cache = c
	} else {
		bs.Cache = cache.NewMemoryCache()
	}

	client := &Client{
		bootstrap: bs,
		rdap: &rdap.Client{
			HTTP:      httpClient,
			Bootstrap: bs,
			UserAgent: opts.UserAgent,
		},
	}

	if opts.RateLimit > 0 {
		burst := opts.RateBurst
		if burst < 1 {
			burst = 1
		}
		client.limiter = rate.NewLimiter(rate.Limit(opts.RateLimit), burst)
	}

	return client, nil
}

func (c *Client) FindDNSServers(ctx context.Context, domain string) ([]*url.URL, error) {
	return c.lookup(ctx, &bootstrap.Question{RegistryType: bootstrap.DNS, Query: domain})
}

func (c *Client) FindIPServers(ctx context.Context, ip netip.Addr) ([]*url.URL, error) {
	if !ip.IsValid() {
		return nil, eris.Wrap(queryerror.ErrMalformedInput, "invalid ip address")
	}

	registryType := bootstrap.IPv6
	if ip.Is4() {
		registryType = bootstrap.IPv4
	}

	return c.lookup(ctx, &bootstrap.Question{RegistryType: registryType, Query: ip.String()})
}

func (c *Client) lookup(ctx context.Context, question *bootstrap.Question) ([]*url.URL, error) {
	answer, err := c.bootstrap.Lookup(question.WithContext(ctx))
	if err != nil {
		return nil, eris.Wrapf(queryerror.ErrTransport, "bootstrap lookup of %s failed: %s", question.Query, err)
	}

	if answer == nil || len(answer.URLs) == 0 {
		return nil, eris.Wrapf(queryerror.ErrNoServer, "no registry serves %s", question.Query)
	}

	return answer.URLs, nil
}

func (c *Client) QueryDomain(ctx context.Context, server *url.URL, domain string) (*Record, error) {
	req := rdap.NewDomainRequest(domain).WithContext(ctx)
	req.Server = server

	resp, err := c.do(ctx, req)
	if err != nil {
		return nil, err
	}

	object, ok := resp.Object.(*rdap.Domain)
	if !ok || object == nil {
		return nil, eris.Wrapf(queryerror.ErrNotFound, "%s answered %s with %T", server, domain, resp.Object)
	}

	return &Record{Events: object.Events, Entities: object.Entities}, nil
}

func (c *Client) QueryIP(ctx context.Context, server *url.URL, ip netip.Addr) (*Record, error) {
	if !ip.IsValid() {
		return nil, eris.Wrap(queryerror.ErrMalformedInput, "invalid ip address")
	}

	req := rdap.NewIPRequest(net.IP(ip.AsSlice())).WithContext(ctx)
	req.Server = server

	resp, err := c.do(ctx, req)
	if err != nil {
		return nil, err
	}

	object, ok := resp.Object.(*rdap.IPNetwork)
	if !ok || object == nil {
		return nil, eris.Wrapf(queryerror.ErrNotFound, "%s answered %s with %T", server, ip, resp.Object)
	}

	return &Record{Events: object.Events, Entities: object.Entities}, nil
}

func (c *Client) do(ctx context.Context, req *rdap.Request) (*rdap.Response, error) {
	if req.Server == nil {
		return nil, eris.Wrapf(queryerror.ErrNoServer, "no server given for %s", req.Query)
	}

	if c.limiter != nil {
		if err := c.limiter.Wait(ctx); err != nil {
			return nil, eris.Wrapf(queryerror.ErrTransport, "rate limiter: %s", err)
		}
	}

	resp, err := c.rdap.Do(req)
	if err != nil {
		return nil, classify(ctx, req, err)
	}

	if resp == nil {
		return nil, eris.Wrapf(queryerror.ErrNotFound, "empty response for %s", req.Query)
	}

	return resp, nil
}

// classify maps openrdap failures onto the queryerror taxonomy. openrdap
// reports unreachable servers and 5xx answers as NoWorkingServers.
func classify(ctx context.Context, req *rdap.Request, err error) error {
	switch {
	case isClientError(rdap.ObjectDoesNotExist, err):
		return eris.Wrapf(queryerror.ErrNotFound, "%s: %s not found", req.Server, req.Query)
	case isClientError(rdap.NoWorkingServers, err):
		return eris.Wrapf(queryerror.ErrTransport, "%s: %s: %s", req.Server, req.Query, err)
	}

	var ce rdap.ClientError
	var pce *rdap.ClientError
	if ctx.Err() == nil && (errors.As(err, &pce) || errors.As(err, &ce)) {
		return eris.Wrapf(queryerror.ErrNotFound, "%s: %s: %s", req.Server, req.Query, err)
	}

	return eris.Wrapf(queryerror.ErrTransport, "%s: %s: %s", req.Server, req.Query, err)
}

func isClientError(t rdap.ClientErrorType, err error) bool {
	var ce rdap.ClientError
	if errors.As(err, &ce) {
		return ce.Type == t
	}

	var pce *rdap.ClientError
	if errors.As(err, &pce) && pce != nil {
		return pce.Type == t
	}

	return false
}
