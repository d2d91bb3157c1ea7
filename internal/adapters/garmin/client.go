// Package garmin is the HTTP adapter for the remote backend that owns all
// wellness data and the OAuth/guest session endpoints. Every call
// propagates transport and HTTP errors to the caller unmodified; there is
// no retry or backoff at this layer.
package garmin

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/cookiejar"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/pkg/errors"
	"go.uber.org/zap"

	"hrvibe/internal/domain"
)

// DefaultLimit is the backend's default page size for summary lists.
const DefaultLimit = 30

type Client struct {
	baseURL string
	http    *http.Client
	log     *zap.SugaredLogger
}

// NewClient builds a backend client rooted at baseURL. The client keeps a
// cookie jar because the backend session is cookie-based: the admin session
// cookie set during the OAuth flow must ride along on every call.
func NewClient(baseURL string, timeout time.Duration, log *zap.SugaredLogger) (*Client, error) {
	jar, err := cookiejar.New(nil)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create cookie jar")
	}

	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http: &http.Client{
			Jar:     jar,
			Timeout: timeout,
		},
		log: log,
	}, nil
}

// AdminLoginURL is the backend endpoint that starts the OAuth authorization
// flow. It is a browser redirect target, not a JSON API.
func (c *Client) AdminLoginURL() string {
	return c.baseURL + "/oauth2/authorization/github"
}

func (c *Client) get(ctx context.Context, path string, query url.Values, out interface{}) error {
	return c.do(ctx, http.MethodGet, path, query, out)
}

func (c *Client) do(ctx context.Context, method, path string, query url.Values, out interface{}) error {
	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, method, u, nil)
	if err != nil {
		return errors.Wrapf(err, "failed to build request for %s", path)
	}
	req.Header.Set("Accept", "application/json")

	c.log.Debugw("backend call", "method", method, "path", path)

	resp, err := c.http.Do(req)
	if err != nil {
		return errors.Wrapf(err, "request to %s failed", path)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &StatusError{Code: resp.StatusCode, Path: path}
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return errors.Wrapf(err, "failed to decode response from %s", path)
	}
	return nil
}

func (c *Client) DaySummaries(ctx context.Context, limit int) ([]domain.DaySummary, error) {
	if limit <= 0 {
		limit = DefaultLimit
	}
	var out []domain.DaySummary
	q := url.Values{"limit": {strconv.Itoa(limit)}}
	if err := c.get(ctx, "/garmin/days", q, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) DaySummary(ctx context.Context, day string) (domain.DaySummary, error) {
	var out domain.DaySummary
	if err := c.get(ctx, "/garmin/days/"+url.PathEscape(day), nil, &out); err != nil {
		return domain.DaySummary{}, err
	}
	return out, nil
}

func (c *Client) RecentSummaries(ctx context.Context, referenceDate string) (domain.RecentSummaries, error) {
	var out domain.RecentSummaries
	if err := c.get(ctx, "/garmin/recent/"+url.PathEscape(referenceDate), nil, &out); err != nil {
		return domain.RecentSummaries{}, err
	}
	return out, nil
}

func (c *Client) WeekSummaries(ctx context.Context, limit int) ([]domain.WeekSummary, error) {
	if limit <= 0 {
		limit = DefaultLimit
	}
	var out []domain.WeekSummary
	q := url.Values{"limit": {strconv.Itoa(limit)}}
	if err := c.get(ctx, "/garmin/weeks", q, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) WeekSummary(ctx context.Context, referenceDate string) (domain.WeekSummary, error) {
	var out domain.WeekSummary
	if err := c.get(ctx, "/garmin/weeks/"+url.PathEscape(referenceDate), nil, &out); err != nil {
		return domain.WeekSummary{}, err
	}
	return out, nil
}

func (c *Client) MonthSummaries(ctx context.Context, year *int) ([]domain.MonthSummary, error) {
	var q url.Values
	if year != nil {
		q = url.Values{"year": {strconv.Itoa(*year)}}
	}
	var out []domain.MonthSummary
	if err := c.get(ctx, "/garmin/months", q, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) YearSummaries(ctx context.Context) ([]domain.YearSummary, error) {
	var out []domain.YearSummary
	if err := c.get(ctx, "/garmin/years", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// CheckAdmin asks the backend whether an admin OAuth session exists. A 401
// here is the expected answer for a plain visitor and is returned as a
// StatusError for the session store to branch on.
func (c *Client) CheckAdmin(ctx context.Context) (domain.Session, error) {
	return c.checkSession(ctx, "/auth/admin", domain.RoleAdmin)
}

// CheckGuest asks the backend for a guest session.
func (c *Client) CheckGuest(ctx context.Context) (domain.Session, error) {
	return c.checkSession(ctx, "/auth/guest", domain.RoleGuest)
}

func (c *Client) checkSession(ctx context.Context, path string, defaultRole domain.Role) (domain.Session, error) {
	var raw struct {
		Username  string      `json:"username"`
		FirstName string      `json:"firstName"`
		LastName  string      `json:"lastName"`
		City      string      `json:"city"`
		Country   string      `json:"country"`
		Role      domain.Role `json:"role"`
	}
	if err := c.get(ctx, path, nil, &raw); err != nil {
		return domain.Session{}, err
	}
	return formatSession(raw.Username, raw.FirstName, raw.LastName, raw.City, raw.Country, raw.Role, defaultRole), nil
}

// Logout tears down the backend session.
func (c *Client) Logout(ctx context.Context) error {
	return c.do(ctx, http.MethodPost, "/auth/logout", nil, nil)
}

// formatSession fills any fields the backend omitted with placeholder
// values, the same defaults the dashboard has always displayed.
func formatSession(username, firstName, lastName, city, country string, role, defaultRole domain.Role) domain.Session {
	s := domain.Session{
		Username:  username,
		FirstName: firstName,
		LastName:  lastName,
		City:      city,
		Country:   country,
		Role:      role,
	}
	if s.Username == "" {
		s.Username = "UserName"
	}
	if s.FirstName == "" {
		s.FirstName = "First Name"
	}
	if s.LastName == "" {
		s.LastName = "Last Name"
	}
	if s.City == "" {
		s.City = "City"
	}
	if s.Country == "" {
		s.Country = "Country"
	}
	if s.Role == "" {
		s.Role = defaultRole
	}
	return s
}
