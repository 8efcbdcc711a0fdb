// Package category contains the category directory use case.
package category

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/spendwise/backend/internal/application/adapter"
	domainerror "github.com/spendwise/backend/internal/domain/error"
)

// ListCategoriesInput represents the input for listing categories.
type ListCategoriesInput struct {
	UserID uuid.UUID
}

// ListCategoriesOutput represents the output of listing categories.
type ListCategoriesOutput struct {
	Categories []string
}

// ListCategoriesUseCase returns the distinct set of categories a user has
// ever used, across all transactions, for filter population. No date or type
// scoping applies here.
type ListCategoriesUseCase struct {
	transactionRepo adapter.TransactionRepository
}

// NewListCategoriesUseCase creates a new ListCategoriesUseCase instance.
func NewListCategoriesUseCase(transactionRepo adapter.TransactionRepository) *ListCategoriesUseCase {
	return &ListCategoriesUseCase{
		transactionRepo: transactionRepo,
	}
}

// Execute performs the category listing.
func (uc *ListCategoriesUseCase) Execute(ctx context.Context, input ListCategoriesInput) (*ListCategoriesOutput, error) {
	categories, err := uc.transactionRepo.DistinctCategories(ctx, input.UserID)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domainerror.ErrStoreUnavailable, err)
	}

	return &ListCategoriesOutput{
		Categories: categories,
	}, nil
}
