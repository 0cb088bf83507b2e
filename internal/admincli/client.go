package admincli

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/dhanamorganics/storefront/internal/models"
)

// Client is a thin typed wrapper over the storefront admin API.
type Client struct {
	baseURL string
	token   string
	http    *http.Client
}

func NewClient(baseURL, token string) *Client {
	return &Client{baseURL: baseURL, token: token, http: &http.Client{}}
}

func (c *Client) do(ctx context.Context, method, path string, body any, out any) error {
	var reader io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return err
		}
		reader = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		var apiErr struct {
			Error string `json:"error"`
		}
		if err := json.NewDecoder(resp.Body).Decode(&apiErr); err == nil && apiErr.Error != "" {
			return fmt.Errorf("%s %s: %s", method, path, apiErr.Error)
		}
		return fmt.Errorf("%s %s: %s", method, path, resp.Status)
	}

	if out == nil {
		return nil
	}
	return json.NewDecoder(resp.Body).Decode(out)
}

type sessionResponse struct {
	User  models.UserProfile `json:"user"`
	Token string             `json:"token"`
}

// Login authenticates and returns the session token.
func (c *Client) Login(ctx context.Context, email, password string) (string, error) {
	var resp sessionResponse
	err := c.do(ctx, http.MethodPost, "/api/auth/login",
		map[string]string{"email": email, "password": password}, &resp)
	if err != nil {
		return "", err
	}
	c.token = resp.Token
	return resp.Token, nil
}

func (c *Client) Stats(ctx context.Context) (map[string]int, error) {
	stats := make(map[string]int)
	if err := c.do(ctx, http.MethodGet, "/api/admin/stats", nil, &stats); err != nil {
		return nil, err
	}
	return stats, nil
}

func (c *Client) Products(ctx context.Context) ([]models.Product, error) {
	var products []models.Product
	if err := c.do(ctx, http.MethodGet, "/api/products", nil, &products); err != nil {
		return nil, err
	}
	return products, nil
}

func (c *Client) AddProduct(ctx context.Context, p models.Product) (models.Product, error) {
	var created models.Product
	if err := c.do(ctx, http.MethodPost, "/api/admin/products", p, &created); err != nil {
		return models.Product{}, err
	}
	return created, nil
}

func (c *Client) UpdateProduct(ctx context.Context, id string, upd models.ProductUpdate) (models.Product, error) {
	var updated models.Product
	if err := c.do(ctx, http.MethodPut, "/api/admin/products/"+id, upd, &updated); err != nil {
		return models.Product{}, err
	}
	return updated, nil
}

func (c *Client) DeleteProduct(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/api/admin/products/"+id, nil, nil)
}

func (c *Client) Sections(ctx context.Context) ([]models.ContentSection, error) {
	var sections []models.ContentSection
	if err := c.do(ctx, http.MethodGet, "/api/content", nil, &sections); err != nil {
		return nil, err
	}
	return sections, nil
}

func (c *Client) UpdateSection(ctx context.Context, id string, fields []models.ContentField) error {
	return c.do(ctx, http.MethodPut, "/api/admin/content/"+id,
		map[string]any{"fields": fields}, nil)
}

type imageUploadResponse struct {
	Key string `json:"key"`
	URL string `json:"url"`
}

// ImageUploadURL asks the server for a presigned PUT URL for a new image of
// the given product.
func (c *Client) ImageUploadURL(ctx context.Context, productID string) (string, string, error) {
	var resp imageUploadResponse
	err := c.do(ctx, http.MethodPost, "/api/admin/products/"+productID+"/image-upload", nil, &resp)
	if err != nil {
		return "", "", err
	}
	return resp.Key, resp.URL, nil
}
