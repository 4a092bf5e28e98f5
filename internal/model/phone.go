package model

// Phone represents a phone listed in the shop catalog
type Phone struct {
	ID            int     `json:"phoneId"`
	Brand         string  `json:"brand"`
	Model         string  `json:"model"`
	Price         float64 `json:"price"`
	Description   string  `json:"description"`
	Condition     string  `json:"condition"`
	StockQuantity int     `json:"stockQuantity"`
}

// CreatePhoneRequest is used for adding a new phone to the catalog
type CreatePhoneRequest struct {
	Brand         string  `json:"brand" binding:"required"`
	Model         string  `json:"model" binding:"required"`
	Price         float64 `json:"price" binding:"required,gt=0"`
	Description   string  `json:"description"`
	Condition     string  `json:"condition" binding:"required"`
	StockQuantity int     `json:"stockQuantity" binding:"omitempty,gte=0"`
}

type UpdatePhoneRequest struct {
	Brand         *string  `json:"brand,omitempty"`
	Model         *string  `json:"model,omitempty"`
	Price         *float64 `json:"price,omitempty" binding:"omitempty,gt=0"`
	Description   *string  `json:"description,omitempty"`
	Condition     *string  `json:"condition,omitempty"`
	StockQuantity *int     `json:"stockQuantity,omitempty" binding:"omitempty,gte=0"`
}
