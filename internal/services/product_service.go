package services

import (
	"context"

	"github.com/cloudsentry/cloudsentry/internal/domain/product"
	"github.com/cloudsentry/cloudsentry/internal/pkg/logger"
)

// ProductService implements product.Service
type ProductService struct {
	repo   product.Repository
	logger *logger.Logger
}

// NewProductService creates a new product service
func NewProductService(repo product.Repository, log *logger.Logger) product.Service {
	return &ProductService{repo: repo, logger: log}
}

// Create creates a new product
func (s *ProductService) Create(ctx context.Context, p *product.Product) (*product.Product, error) {
	if _, err := s.repo.Create(ctx, p); err != nil {
		return nil, err
	}

	s.logger.Infof("product created: id=%d name=%s", p.ID, p.Name)
	return p, nil
}

// GetByID retrieves a product by ID
func (s *ProductService) GetByID(ctx context.Context, id int64) (*product.Product, error) {
	return s.repo.GetByID(ctx, id)
}

// List retrieves products with offset/limit
func (s *ProductService) List(ctx context.Context, skip, limit int) ([]*product.Product, error) {
	return s.repo.List(ctx, skip, limit)
}

// Update applies a partial update: only the fields present in upd change
func (s *ProductService) Update(ctx context.Context, id int64, upd product.Update) (*product.Product, error) {
	p, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if upd.Name != nil {
		p.Name = *upd.Name
	}
	if upd.Description != nil {
		p.Description = *upd.Description
	}

	if err := s.repo.Update(ctx, p); err != nil {
		return nil, err
	}

	return p, nil
}

// Delete deletes a product
func (s *ProductService) Delete(ctx context.Context, id int64) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}

	s.logger.Infof("product deleted: id=%d", id)
	return nil
}
