package repo

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/pkg/errors"
	"github.com/uphy/productfeed/model"
)

// ProductQuery selects every product with its attribute pairs and resolved image URLs.
const ProductQuery = `*[_type == "product"]{
  _id,
  title,
  sku,
  description,
  price,
  inStock,
  weight,
  dimensions,
  attributes[]{ name, value },
  images[]{ asset->{ url } }
}`

const (
	DefaultDataset    = "production"
	DefaultAPIVersion = "2023-01-01"

	apiHost = "api.sanity.io"
	cdnHost = "apicdn.sanity.io"
)

type (
	SanityConfig struct {
		ProjectID  string
		Dataset    string
		APIVersion string
		// UseCDN reads from the edge cache instead of the live API.
		UseCDN bool
		Token  string
		// BaseURL replaces https://<project>.<host> when set.
		BaseURL string
	}
	SanityStore struct {
		client   *http.Client
		endpoint string
		token    string
	}
	queryResponse struct {
		Result *[]model.Product `json:"result"`
		Error  *queryError      `json:"error"`
	}
	queryError struct {
		Type        string `json:"type"`
		Description string `json:"description"`
	}
)

func NewSanityStore(c SanityConfig, client *http.Client) (*SanityStore, error) {
	if client == nil {
		client = http.DefaultClient
	}
	dataset := c.Dataset
	if dataset == "" {
		dataset = DefaultDataset
	}
	version := c.APIVersion
	if version == "" {
		version = DefaultAPIVersion
	}
	if !strings.HasPrefix(version, "v") {
		version = "v" + version
	}

	base := strings.TrimSuffix(c.BaseURL, "/")
	if base == "" {
		if c.ProjectID == "" {
			return nil, errors.New("sanity: 'projectId' is required")
		}
		host := apiHost
		if c.UseCDN {
			host = cdnHost
		}
		base = fmt.Sprintf("https://%s.%s", c.ProjectID, host)
	}
	endpoint := fmt.Sprintf("%s/%s/data/query/%s", base, version, url.PathEscape(dataset))
	if _, err := url.Parse(endpoint); err != nil {
		return nil, errors.Wrapf(err, "sanity: invalid endpoint: endpoint=%s", endpoint)
	}
	return &SanityStore{client: client, endpoint: endpoint, token: c.Token}, nil
}

// Endpoint returns the query URL without the query parameter.
func (s *SanityStore) Endpoint() string {
	return s.endpoint
}

func (s *SanityStore) FetchProducts(ctx context.Context) ([]model.Product, error) {
	products, err := s.query(ctx)
	if err != nil {
		return nil, fetchError("sanity", err)
	}
	return products, nil
}

func (s *SanityStore) query(ctx context.Context) ([]model.Product, error) {
	u := s.endpoint + "?" + url.Values{"query": {ProductQuery}}.Encode()
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")
	if s.token != "" {
		req.Header.Set("Authorization", "Bearer "+s.token)
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, errors.Wrap(err, "failed on GET request")
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, errors.Wrap(err, "failed to read response")
	}
	var r queryResponse
	decodeErr := json.Unmarshal(body, &r)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		if decodeErr == nil && r.Error != nil && r.Error.Description != "" {
			return nil, errors.Errorf("query rejected: status=%d, type=%s, description=%s", resp.StatusCode, r.Error.Type, r.Error.Description)
		}
		return nil, errors.Errorf("unexpected status: status=%d", resp.StatusCode)
	}
	if decodeErr != nil {
		return nil, errors.Wrap(decodeErr, "failed to decode response")
	}
	if r.Result == nil {
		return nil, errors.New("response has no 'result'")
	}
	return *r.Result, nil
}

func (s *SanityStore) Close() error {
	return nil
}
