package dto

// CreateProductRequest represents a product creation request
type CreateProductRequest struct {
	Name        string `json:"name" validate:"required,max=128"`
	Description string `json:"description,omitempty" validate:"max=1024"`
}

// UpdateProductRequest represents a partial product update
type UpdateProductRequest struct {
	Name        *string `json:"name,omitempty" validate:"omitempty,min=1,max=128"`
	Description *string `json:"description,omitempty" validate:"omitempty,max=1024"`
}
