package client

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
)

// ProductService handles product catalog API calls
type ProductService struct {
	client *Client
}

// CreateProductRequest represents a request to create a product
type CreateProductRequest struct {
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
}

// UpdateProductRequest represents a partial product update
type UpdateProductRequest struct {
	Name        *string `json:"name,omitempty"`
	Description *string `json:"description,omitempty"`
}

// List retrieves products with skip/limit pagination
func (s *ProductService) List(ctx context.Context, opts *ListOptions) ([]Product, error) {
	path := "/products" + encodeListOptions(opts)

	var products []Product
	if err := s.client.doRequest(ctx, "GET", path, nil, &products); err != nil {
		return nil, err
	}
	return products, nil
}

// Get retrieves a single product by ID
func (s *ProductService) Get(ctx context.Context, id int64) (*Product, error) {
	var p Product
	if err := s.client.doRequest(ctx, "GET", fmt.Sprintf("/products/%d", id), nil, &p); err != nil {
		return nil, err
	}
	return &p, nil
}

// Create creates a new product
func (s *ProductService) Create(ctx context.Context, req CreateProductRequest) (*Product, error) {
	var p Product
	if err := s.client.doRequest(ctx, "POST", "/products", req, &p); err != nil {
		return nil, err
	}
	return &p, nil
}

// Update applies a partial update to a product
func (s *ProductService) Update(ctx context.Context, id int64, req UpdateProductRequest) (*Product, error) {
	var p Product
	if err := s.client.doRequest(ctx, "PUT", fmt.Sprintf("/products/%d", id), req, &p); err != nil {
		return nil, err
	}
	return &p, nil
}

// Delete deletes a product
func (s *ProductService) Delete(ctx context.Context, id int64) error {
	return s.client.doRequest(ctx, "DELETE", fmt.Sprintf("/products/%d", id), nil, nil)
}

func encodeListOptions(opts *ListOptions) string {
	if opts == nil {
		return ""
	}
	query := url.Values{}
	if opts.Skip > 0 {
		query.Set("skip", strconv.Itoa(opts.Skip))
	}
	if opts.Limit > 0 {
		query.Set("limit", strconv.Itoa(opts.Limit))
	}
	if len(query) == 0 {
		return ""
	}
	return "?" + query.Encode()
}
