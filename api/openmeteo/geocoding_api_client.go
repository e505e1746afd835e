package openmeteo

import (
	"context"
	"net/url"

	"weather-dashboard/api"
	"weather-dashboard/models"
)

const SEARCH_ENDPOINT = "/v1/search"

// GeocodingApiClient embeds the common HTTPClient
type GeocodingApiClient struct {
	*api.HTTPClient
}

// NewGeocodingApiClient creates a new instance of GeocodingApiClient
func NewGeocodingApiClient(httpClient *api.HTTPClient) *GeocodingApiClient {
	return &GeocodingApiClient{
		HTTPClient: httpClient,
	}
}

// SearchCity asks for the single best English match for name.
func (c *GeocodingApiClient) SearchCity(ctx context.Context, name string) (*models.GeocodingResponse, error) {
	query := url.Values{}
	query.Set("name", name)
	query.Set("count", "1")
	query.Set("language", "en")
	query.Set("format", "json")

	var response models.GeocodingResponse
	if err := c.Request(ctx, "GET", SEARCH_ENDPOINT, query, nil, nil, &response); err != nil {
		return nil, err
	}
	return &response, nil
}
