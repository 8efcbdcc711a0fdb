// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"github.com/spendwise/backend/internal/application/usecase/transaction"
)

// CreateTransactionRequest represents the request body for transaction creation.
type CreateTransactionRequest struct {
	Type        string  `json:"type" binding:"required,oneof=expense income"`
	Amount      float64 `json:"amount" binding:"required,gt=0"`
	Category    string  `json:"category" binding:"required,min=1,max=100"`
	Description string  `json:"description" binding:"required,min=1,max=255"`
	Date        string  `json:"date" binding:"required"`
}

// UpdateTransactionRequest represents the request body for transaction update.
type UpdateTransactionRequest struct {
	Type        *string  `json:"type,omitempty" binding:"omitempty,oneof=expense income"`
	Amount      *float64 `json:"amount,omitempty" binding:"omitempty,gt=0"`
	Category    *string  `json:"category,omitempty" binding:"omitempty,min=1,max=100"`
	Description *string  `json:"description,omitempty" binding:"omitempty,min=1,max=255"`
	Date        *string  `json:"date,omitempty"`
}

// TransactionResponse represents a single transaction in API responses.
type TransactionResponse struct {
	ID          string `json:"id"`
	UserID      string `json:"user_id"`
	Type        string `json:"type"`
	Amount      string `json:"amount"`
	Category    string `json:"category"`
	Description string `json:"description"`
	Date        string `json:"date"`
	CreatedAt   string `json:"created_at"`
	UpdatedAt   string `json:"updated_at"`
}

// PaginationResponse represents pagination metadata in API responses.
type PaginationResponse struct {
	Page       int   `json:"page"`
	PageSize   int   `json:"page_size"`
	Total      int64 `json:"total"`
	TotalPages int   `json:"total_pages"`
	HasNext    bool  `json:"has_next"`
	HasPrev    bool  `json:"has_prev"`
}

// TransactionListResponse represents the response body for transaction listing.
type TransactionListResponse struct {
	Transactions []TransactionResponse `json:"transactions"`
	Pagination   PaginationResponse    `json:"pagination"`
}

// ToTransactionResponse maps a use case transaction output to its response DTO.
func ToTransactionResponse(txn *transaction.TransactionOutput) TransactionResponse {
	return TransactionResponse{
		ID:          txn.ID.String(),
		UserID:      txn.UserID.String(),
		Type:        string(txn.Type),
		Amount:      txn.Amount.String(),
		Category:    txn.Category,
		Description: txn.Description,
		Date:        txn.Date.UTC().Format("2006-01-02T15:04:05Z07:00"),
		CreatedAt:   txn.CreatedAt.UTC().Format("2006-01-02T15:04:05Z07:00"),
		UpdatedAt:   txn.UpdatedAt.UTC().Format("2006-01-02T15:04:05Z07:00"),
	}
}

// ToTransactionListResponse maps a listing output to its response DTO.
func ToTransactionListResponse(output *transaction.ListTransactionsOutput) TransactionListResponse {
	transactions := make([]TransactionResponse, len(output.Transactions))
	for i, txn := range output.Transactions {
		transactions[i] = ToTransactionResponse(txn)
	}

	return TransactionListResponse{
		Transactions: transactions,
		Pagination: PaginationResponse{
			Page:       output.Pagination.Page,
			PageSize:   output.Pagination.PageSize,
			Total:      output.Pagination.Total,
			TotalPages: output.Pagination.TotalPages,
			HasNext:    output.Pagination.HasNext,
			HasPrev:    output.Pagination.HasPrev,
		},
	}
}
