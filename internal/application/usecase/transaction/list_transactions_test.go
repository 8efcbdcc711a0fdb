package transaction

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/spendwise/backend/internal/domain/entity"
	domainerror "github.com/spendwise/backend/internal/domain/error"
)

// seedTransactions stores count expense transactions for userID, one per day
// starting at 2024-01-01, with strictly increasing CreatedAt.
func seedTransactions(repo *fakeTransactionRepository, userID uuid.UUID, count int) {
	base := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	for i := 0; i < count; i++ {
		repo.transactions = append(repo.transactions, &entity.Transaction{
			ID:          uuid.New(),
			UserID:      userID,
			Type:        entity.TransactionTypeExpense,
			Amount:      decimal.NewFromInt(int64(i + 1)),
			Category:    "Groceries",
			Description: "Weekly shop",
			Date:        base.AddDate(0, 0, i),
			CreatedAt:   base.Add(time.Duration(i) * time.Minute),
			UpdatedAt:   base.Add(time.Duration(i) * time.Minute),
		})
	}
}

func TestListTransactionsPagination(t *testing.T) {
	userID := uuid.New()

	t.Run("applies default page and page size", func(t *testing.T) {
		repo := &fakeTransactionRepository{}
		seedTransactions(repo, userID, 25)
		uc := NewListTransactionsUseCase(repo, 100)

		output, err := uc.Execute(context.Background(), ListTransactionsInput{UserID: userID})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if len(output.Transactions) != DefaultPageSize {
			t.Fatalf("expected %d transactions, got %d", DefaultPageSize, len(output.Transactions))
		}
		p := output.Pagination
		if p.Page != 1 || p.PageSize != DefaultPageSize {
			t.Fatalf("expected page 1 size %d, got page %d size %d", DefaultPageSize, p.Page, p.PageSize)
		}
		if p.Total != 25 || p.TotalPages != 2 {
			t.Fatalf("expected total 25 over 2 pages, got %d over %d", p.Total, p.TotalPages)
		}
		if !p.HasNext || p.HasPrev {
			t.Fatalf("expected HasNext=true HasPrev=false, got %v %v", p.HasNext, p.HasPrev)
		}
	})

	t.Run("caps page size at the configured maximum", func(t *testing.T) {
		repo := &fakeTransactionRepository{}
		seedTransactions(repo, userID, 15)
		uc := NewListTransactionsUseCase(repo, 10)

		output, err := uc.Execute(context.Background(), ListTransactionsInput{
			UserID:   userID,
			PageSize: 500,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if output.Pagination.PageSize != 10 {
			t.Fatalf("expected page size capped at 10, got %d", output.Pagination.PageSize)
		}
		if len(output.Transactions) != 10 {
			t.Fatalf("expected 10 transactions, got %d", len(output.Transactions))
		}
	})

	t.Run("normalizes page below one", func(t *testing.T) {
		repo := &fakeTransactionRepository{}
		seedTransactions(repo, userID, 3)
		uc := NewListTransactionsUseCase(repo, 100)

		output, err := uc.Execute(context.Background(), ListTransactionsInput{
			UserID: userID,
			Page:   -2,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if output.Pagination.Page != 1 {
			t.Fatalf("expected page 1, got %d", output.Pagination.Page)
		}
	})

	t.Run("page beyond the last is empty, not an error", func(t *testing.T) {
		repo := &fakeTransactionRepository{}
		seedTransactions(repo, userID, 5)
		uc := NewListTransactionsUseCase(repo, 100)

		output, err := uc.Execute(context.Background(), ListTransactionsInput{
			UserID:   userID,
			Page:     9,
			PageSize: 5,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(output.Transactions) != 0 {
			t.Fatalf("expected empty page, got %d transactions", len(output.Transactions))
		}
		p := output.Pagination
		if p.Total != 5 || p.TotalPages != 1 {
			t.Fatalf("expected total 5 over 1 page, got %d over %d", p.Total, p.TotalPages)
		}
		if p.HasNext || !p.HasPrev {
			t.Fatalf("expected HasNext=false HasPrev=true, got %v %v", p.HasNext, p.HasPrev)
		}
	})

	t.Run("last page flags", func(t *testing.T) {
		repo := &fakeTransactionRepository{}
		seedTransactions(repo, userID, 25)
		uc := NewListTransactionsUseCase(repo, 100)

		output, err := uc.Execute(context.Background(), ListTransactionsInput{
			UserID:   userID,
			Page:     2,
			PageSize: 20,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(output.Transactions) != 5 {
			t.Fatalf("expected 5 transactions on the last page, got %d", len(output.Transactions))
		}
		p := output.Pagination
		if p.HasNext || !p.HasPrev {
			t.Fatalf("expected HasNext=false HasPrev=true, got %v %v", p.HasNext, p.HasPrev)
		}
	})
}

func TestListTransactionsFiltering(t *testing.T) {
	userID := uuid.New()
	otherUser := uuid.New()

	repo := &fakeTransactionRepository{}
	seedTransactions(repo, userID, 4)
	seedTransactions(repo, otherUser, 4)
	uc := NewListTransactionsUseCase(repo, 100)

	t.Run("scopes results to the requesting user", func(t *testing.T) {
		output, err := uc.Execute(context.Background(), ListTransactionsInput{UserID: userID})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if output.Pagination.Total != 4 {
			t.Fatalf("expected 4 owned transactions, got %d", output.Pagination.Total)
		}
		for _, txn := range output.Transactions {
			if txn.UserID != userID {
				t.Fatalf("leaked transaction owned by %s", txn.UserID)
			}
		}
	})

	t.Run("end date is inclusive of the whole day", func(t *testing.T) {
		output, err := uc.Execute(context.Background(), ListTransactionsInput{
			UserID: userID,
			Filter: RawFilter{
				StartDate: "2024-01-01",
				EndDate:   "2024-01-02",
			},
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if output.Pagination.Total != 2 {
			t.Fatalf("expected 2 transactions in range, got %d", output.Pagination.Total)
		}
	})

	t.Run("rejects an inverted date range", func(t *testing.T) {
		_, err := uc.Execute(context.Background(), ListTransactionsInput{
			UserID: userID,
			Filter: RawFilter{
				StartDate: "2024-02-01",
				EndDate:   "2024-01-01",
			},
		})
		if !errors.Is(err, domainerror.ErrInvalidDateRange) {
			t.Fatalf("expected ErrInvalidDateRange, got %v", err)
		}
	})

	t.Run("rejects an unknown sort key", func(t *testing.T) {
		_, err := uc.Execute(context.Background(), ListTransactionsInput{
			UserID:  userID,
			SortKey: "description",
		})
		if !errors.Is(err, domainerror.ErrInvalidSortKey) {
			t.Fatalf("expected ErrInvalidSortKey, got %v", err)
		}
	})
}

func TestListTransactionsSorting(t *testing.T) {
	userID := uuid.New()
	repo := &fakeTransactionRepository{}
	seedTransactions(repo, userID, 3)
	uc := NewListTransactionsUseCase(repo, 100)

	t.Run("defaults to date descending", func(t *testing.T) {
		output, err := uc.Execute(context.Background(), ListTransactionsInput{UserID: userID})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		for i := 1; i < len(output.Transactions); i++ {
			if output.Transactions[i].Date.After(output.Transactions[i-1].Date) {
				t.Fatal("expected transactions ordered by date descending")
			}
		}
	})

	t.Run("sorts by amount ascending", func(t *testing.T) {
		output, err := uc.Execute(context.Background(), ListTransactionsInput{
			UserID:        userID,
			SortKey:       "amount",
			SortDirection: "asc",
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		for i := 1; i < len(output.Transactions); i++ {
			if output.Transactions[i].Amount.LessThan(output.Transactions[i-1].Amount) {
				t.Fatal("expected transactions ordered by amount ascending")
			}
		}
	})

	t.Run("breaks ties by newest created first", func(t *testing.T) {
		tieRepo := &fakeTransactionRepository{}
		base := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
		first := uuid.New()
		second := uuid.New()
		for i, id := range []uuid.UUID{first, second} {
			tieRepo.transactions = append(tieRepo.transactions, &entity.Transaction{
				ID:          id,
				UserID:      userID,
				Type:        entity.TransactionTypeExpense,
				Amount:      decimal.NewFromInt(10),
				Category:    "Groceries",
				Description: "Weekly shop",
				Date:        base,
				CreatedAt:   base.Add(time.Duration(i) * time.Second),
			})
		}
		tieUC := NewListTransactionsUseCase(tieRepo, 100)

		output, err := tieUC.Execute(context.Background(), ListTransactionsInput{UserID: userID})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if output.Transactions[0].ID != second || output.Transactions[1].ID != first {
			t.Fatal("expected the more recently created transaction first on equal dates")
		}
	})
}

func TestListTransactionsStoreFailure(t *testing.T) {
	repo := &fakeTransactionRepository{failWith: errStoreDown}
	uc := NewListTransactionsUseCase(repo, 100)

	_, err := uc.Execute(context.Background(), ListTransactionsInput{UserID: uuid.New()})
	if !errors.Is(err, domainerror.ErrStoreUnavailable) {
		t.Fatalf("expected ErrStoreUnavailable, got %v", err)
	}
}
