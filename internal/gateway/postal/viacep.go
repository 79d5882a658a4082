// Package postal resolves Brazilian postal codes through a ViaCEP-compatible API.
package postal

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"logistics-backoffice/internal/apperr"
	"logistics-backoffice/internal/docnum"
	"logistics-backoffice/internal/domain"
	"logistics-backoffice/internal/gateway/retry"
)

// Client is a ViaCEP HTTP client.
type Client struct {
	base *url.URL
	http *http.Client
}

// NewClient creates a client for the API rooted at baseURL.
func NewClient(baseURL string, hc *http.Client) (*Client, error) {
	u, err := url.Parse(strings.TrimRight(baseURL, "/"))
	if err != nil {
		return nil, fmt.Errorf("postal: parse base url: %w", err)
	}
	if hc == nil {
		hc = &http.Client{Timeout: 5 * time.Second}
	}
	return &Client{base: u, http: hc}, nil
}

type viaCEPResponse struct {
	CEP        string `json:"cep"`
	Logradouro string `json:"logradouro"`
	Bairro     string `json:"bairro"`
	Localidade string `json:"localidade"`
	UF         string `json:"uf"`
	Erro       any    `json:"erro"`
}

func (r viaCEPResponse) notFound() bool {
	switch v := r.Erro.(type) {
	case bool:
		return v
	case string:
		return v == "true"
	default:
		return false
	}
}

// Lookup resolves an 8-digit postal code. Unknown codes return apperr.ErrNotFound,
// malformed ones apperr.ErrInvalid.
func (c *Client) Lookup(ctx context.Context, postalCode string) (*domain.Address, error) {
	code := docnum.Digits(postalCode)
	if !docnum.ValidPostalCode(code) {
		return nil, apperr.ErrInvalid
	}
	endpoint := c.base.String() + "/ws/" + code + "/json/"

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("postal: build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("postal: lookup %s: %w", code, err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusBadRequest:
		return nil, apperr.ErrInvalid
	case resp.StatusCode == http.StatusNotFound:
		return nil, apperr.ErrNotFound
	case resp.StatusCode < 200 || resp.StatusCode > 299:
		return nil, &retry.StatusError{Service: "postal", Code: resp.StatusCode}
	}

	var body viaCEPResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, fmt.Errorf("postal: decode %s: %w", code, err)
	}
	if body.notFound() {
		return nil, apperr.ErrNotFound
	}
	return &domain.Address{
		Street:     body.Logradouro,
		District:   body.Bairro,
		City:       body.Localidade,
		State:      body.UF,
		PostalCode: code,
	}, nil
}
