package geocode

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/redis/go-redis/v9"

	"quotation-service/src/pkg/log"
)

// Address is the postal record a zip code resolves to.
type Address struct {
	Zip            string `json:"cp"`
	Settlement     string `json:"asentamiento"`
	SettlementType string `json:"tipo_asentamiento"`
	Municipality   string `json:"municipio"`
	State          string `json:"estado"`
	City           string `json:"ciudad"`
	Country        string `json:"pais"`
}

// Resolver looks up a Mexican postal code. A lookup that resolves to nothing
// returns (nil, nil); callers turn that into a not-found response.
type Resolver interface {
	Lookup(ctx context.Context, zip string) (*Address, error)
}

const cacheTTL = 24 * time.Hour

type CopomexClient struct {
	baseURL string
	token   string
	http    *http.Client
	cache   redis.UniversalClient
	log     log.Log
}

func NewCopomexClient(baseURL, token string, cache redis.UniversalClient, logger log.Log) *CopomexClient {
	return &CopomexClient{
		baseURL: baseURL,
		token:   token,
		http:    &http.Client{Timeout: 10 * time.Second},
		cache:   cache,
		log:     logger,
	}
}

type copomexEntry struct {
	Error    bool    `json:"error"`
	Response Address `json:"response"`
}

func (c *CopomexClient) Lookup(ctx context.Context, zip string) (*Address, error) {
	key := "GEOCODE:ZIP:" + zip
	if c.cache != nil {
		if cached, err := c.cache.Get(ctx, key).Result(); err == nil {
			var address Address
			if err := json.Unmarshal([]byte(cached), &address); err == nil {
				return &address, nil
			}
		}
	}

	url := fmt.Sprintf("%s/query/info_cp/%s?token=%s", c.baseURL, zip, c.token)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.http.Do(req)
	if err != nil {
		c.log.Error("geocode", fmt.Sprintf("copomex request failed: %v", err), "Lookup", zip)
		return nil, nil
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		c.log.Error("geocode", fmt.Sprintf("copomex returned status %d", resp.StatusCode), "Lookup", zip)
		return nil, nil
	}

	var payload []copomexEntry
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		c.log.Error("geocode", fmt.Sprintf("copomex payload decode failed: %v", err), "Lookup", zip)
		return nil, nil
	}
	if len(payload) == 0 || payload[0].Error {
		return nil, nil
	}

	address := payload[0].Response
	if c.cache != nil {
		if data, err := json.Marshal(address); err == nil {
			if err := c.cache.Set(ctx, key, data, cacheTTL).Err(); err != nil {
				c.log.Error("geocode", fmt.Sprintf("cache write failed: %v", err), "Lookup", zip)
			}
		}
	}
	return &address, nil
}
