package infra

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/JordiGD/Parcial2-Soft1/internal/model"
)

// bebidaPayload is the beverage JSON served by the bebidas API.
type bebidaPayload struct {
	ID    int     `json:"id"`
	Name  string  `json:"name"`
	Size  string  `json:"size"`
	Price float64 `json:"price"`
}

// BebidasClient consults the bebidas API over HTTP. Calls go through a
// circuit breaker so order intake fast-fails while the catalog is down
// instead of piling up blocked requests.
type BebidasClient struct {
	baseURL    string
	httpClient *http.Client
	cb         *CircuitBreaker
}

func NewBebidasClient(baseURL string, cb *CircuitBreaker) *BebidasClient {
	return &BebidasClient{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: 10 * time.Second},
		cb:         cb,
	}
}

// ObtenerBebida resolves a beverage by name via GET /menu/{name}.
// A 404 from the catalog is a valid answer — (nil, nil) — and does not count
// as a breaker failure.
func (c *BebidasClient) ObtenerBebida(ctx context.Context, nombre string) (*model.Drink, error) {
	var drink *model.Drink

	err := c.cb.Execute(func() error {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet,
			c.baseURL+"/menu/"+url.PathEscape(nombre), nil)
		if err != nil {
			return fmt.Errorf("bebidas: create request: %w", err)
		}

		resp, err := c.httpClient.Do(req)
		if err != nil {
			return fmt.Errorf("bebidas: api unreachable: %w", err)
		}
		defer resp.Body.Close()

		switch resp.StatusCode {
		case http.StatusOK:
			var payload bebidaPayload
			if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
				return fmt.Errorf("bebidas: decode response: %w", err)
			}
			drink = &model.Drink{Name: payload.Name, Size: payload.Size, Price: payload.Price}
			return nil
		case http.StatusNotFound:
			return nil
		default:
			return fmt.Errorf("bebidas: api returned %d", resp.StatusCode)
		}
	})
	if err != nil {
		return nil, err
	}
	return drink, nil
}
