// Package client is a thin HTTP client for the causeway API. Read results
// for public resources are cached in-process.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/patrickmn/go-cache"

	"github.com/causewayhq/causeway"
	"github.com/causewayhq/causeway/internal/domain"
)

const defaultTimeout = 3 * time.Second

type Client struct {
	client    *http.Client
	cache     *cache.Cache
	baseURL   string
	userAgent string
	token     string
}

func New(baseURL string) *Client {
	httpClient := http.Client{
		Timeout: defaultTimeout,
	}

	c := &Client{
		client:    &httpClient,
		cache:     cache.New(10*time.Minute, 15*time.Minute),
		baseURL:   baseURL,
		userAgent: "causeway-client",
	}
	httpClient.Transport = c
	return c
}

func (c *Client) RoundTrip(req *http.Request) (*http.Response, error) {
	req.Header.Set("User-Agent", c.userAgent)
	return http.DefaultTransport.RoundTrip(req)
}

// SetToken attaches a bearer token to subsequent requests.
func (c *Client) SetToken(token string) {
	c.token = token
}

func (c *Client) request(ctx context.Context, method, path string, body any, response any) error {
	var reqBody *bytes.Buffer = bytes.NewBuffer(nil)
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to encode request body: %v", err)
		}
		reqBody = bytes.NewBuffer(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if err != nil {
		return fmt.Errorf("failed to create request: %v", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("failed to perform request: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		var apiErr struct {
			Error string `json:"error"`
		}
		json.NewDecoder(resp.Body).Decode(&apiErr)
		return fmt.Errorf("unexpected status code %d: %s", resp.StatusCode, apiErr.Error)
	}

	if response == nil {
		return nil
	}

	err = json.NewDecoder(resp.Body).Decode(response)
	if err != nil {
		return fmt.Errorf("failed to decode response: %v", err)
	}

	return nil
}

func (c *Client) Login(ctx context.Context, email, password string) error {
	var session struct {
		Token string `json:"token"`
	}
	err := c.request(ctx, http.MethodPost, "/api/v1/auth/login", causeway.LoginRequest{
		Email:    email,
		Password: password,
	}, &session)
	if err != nil {
		return err
	}
	c.token = session.Token
	return nil
}

// GetCampaign caches hits: public campaign pages tolerate briefly stale
// reads.
func (c *Client) GetCampaign(ctx context.Context, id string) (domain.Campaign, error) {
	cacheKey := "campaign:" + id
	if cached, ok := c.cache.Get(cacheKey); ok {
		return cached.(domain.Campaign), nil
	}

	var campaign domain.Campaign
	err := c.request(ctx, http.MethodGet, "/api/v1/campaigns/"+url.PathEscape(id), nil, &campaign)
	if err != nil {
		return domain.Campaign{}, err
	}

	c.cache.Set(cacheKey, campaign, cache.DefaultExpiration)
	return campaign, nil
}

func (c *Client) ListCampaigns(ctx context.Context, search string, page, limit int) (causeway.Page[domain.Campaign], error) {
	query := url.Values{}
	if search != "" {
		query.Set("search", search)
	}
	if page > 0 {
		query.Set("page", strconv.Itoa(page))
	}
	if limit > 0 {
		query.Set("limit", strconv.Itoa(limit))
	}

	path := "/api/v1/campaigns"
	if encoded := query.Encode(); encoded != "" {
		path += "?" + encoded
	}

	var result causeway.Page[domain.Campaign]
	err := c.request(ctx, http.MethodGet, path, nil, &result)
	return result, err
}

func (c *Client) GetCampaignStats(ctx context.Context, campaignID string) (domain.DonationStats, error) {
	var stats domain.DonationStats
	err := c.request(ctx, http.MethodGet, "/api/v1/campaigns/"+url.PathEscape(campaignID)+"/stats", nil, &stats)
	return stats, err
}

func (c *Client) Donate(ctx context.Context, req causeway.CreateDonationRequest) (domain.Donation, error) {
	var donation domain.Donation
	err := c.request(ctx, http.MethodPost, "/api/v1/donations", req, &donation)
	return donation, err
}

func (c *Client) Me(ctx context.Context) (domain.User, error) {
	var user domain.User
	err := c.request(ctx, http.MethodGet, "/api/v1/me", nil, &user)
	return user, err
}
