package cashmovement

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/gestor-financeiro/backend/internal/domain/entity"
	domainerror "github.com/gestor-financeiro/backend/internal/domain/error"
)

type memoryRepository struct {
	movements map[uuid.UUID]*entity.CashMovement
}

func newMemoryRepository() *memoryRepository {
	return &memoryRepository{movements: make(map[uuid.UUID]*entity.CashMovement)}
}

func (r *memoryRepository) Create(_ context.Context, m *entity.CashMovement) error {
	r.movements[m.ID] = m
	return nil
}

func (r *memoryRepository) FindByID(_ context.Context, id uuid.UUID) (*entity.CashMovement, error) {
	m, ok := r.movements[id]
	if !ok {
		return nil, domainerror.ErrCashMovementNotFound
	}
	copied := *m
	return &copied, nil
}

func (r *memoryRepository) FindByOwner(_ context.Context, ownerID uuid.UUID) ([]*entity.CashMovement, error) {
	var out []*entity.CashMovement
	for _, m := range r.movements {
		if m.OwnerID == ownerID {
			out = append(out, m)
		}
	}
	return out, nil
}

func (r *memoryRepository) Update(_ context.Context, m *entity.CashMovement) error {
	r.movements[m.ID] = m
	return nil
}

func (r *memoryRepository) Delete(_ context.Context, id uuid.UUID) error {
	delete(r.movements, id)
	return nil
}

func strPtr(s string) *string { return &s }

func errorCode(err error) domainerror.CashMovementErrorCode {
	var cashErr *domainerror.CashMovementError
	if errors.As(err, &cashErr) {
		return cashErr.Code
	}
	return ""
}

func TestCreateCashMovementUseCase_Validation(t *testing.T) {
	ownerID := uuid.New()
	valid := CreateCashMovementInput{
		OwnerID:  ownerID,
		Date:     time.Date(2025, time.January, 10, 0, 0, 0, 0, time.UTC),
		Type:     entity.CashMovementTypeIncome,
		Category: strPtr("Vendas"),
		Amount:   decimal.RequireFromString("1000"),
	}

	tests := []struct {
		name   string
		mutate func(*CreateCashMovementInput)
		code   domainerror.CashMovementErrorCode
	}{
		{"valid", func(*CreateCashMovementInput) {}, ""},
		{"missing date", func(in *CreateCashMovementInput) { in.Date = time.Time{} }, domainerror.ErrCodeMissingCashMovementDate},
		{"unknown type", func(in *CreateCashMovementInput) { in.Type = "transfer" }, domainerror.ErrCodeInvalidCashMovementType},
		{"zero amount", func(in *CreateCashMovementInput) { in.Amount = decimal.Zero }, domainerror.ErrCodeInvalidCashMovementAmount},
		{"negative amount", func(in *CreateCashMovementInput) { in.Amount = decimal.NewFromInt(-5) }, domainerror.ErrCodeInvalidCashMovementAmount},
		{"sub-cent amount", func(in *CreateCashMovementInput) { in.Amount = decimal.RequireFromString("0.004") }, domainerror.ErrCodeInvalidCashMovementAmount},
		{"three decimal places", func(in *CreateCashMovementInput) { in.Amount = decimal.RequireFromString("12.345") }, domainerror.ErrCodeInvalidCashMovementAmount},
		{"trailing zero decimals", func(in *CreateCashMovementInput) { in.Amount = decimal.RequireFromString("12.3400") }, ""},
		{"largest storable amount", func(in *CreateCashMovementInput) { in.Amount = decimal.RequireFromString("9999999999999.99") }, ""},
		{"fourteen integer digits", func(in *CreateCashMovementInput) { in.Amount = decimal.RequireFromString("10000000000000") }, domainerror.ErrCodeInvalidCashMovementAmount},
		{"long description", func(in *CreateCashMovementInput) { in.Description = strPtr(strings.Repeat("a", 256)) }, domainerror.ErrCodeCashMovementFieldTooLong},
		{"long category", func(in *CreateCashMovementInput) { in.Category = strPtr(strings.Repeat("ç", 101)) }, domainerror.ErrCodeCashMovementFieldTooLong},
		{"category at limit", func(in *CreateCashMovementInput) { in.Category = strPtr(strings.Repeat("ç", 100)) }, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := newMemoryRepository()
			input := valid
			tt.mutate(&input)

			out, err := NewCreateCashMovementUseCase(repo).Execute(context.Background(), input)

			if tt.code == "" {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				if _, ok := repo.movements[out.Movement.ID]; !ok {
					t.Error("expected movement to be stored")
				}
				return
			}
			if code := errorCode(err); code != tt.code {
				t.Errorf("expected code %s, got %s (%v)", tt.code, code, err)
			}
			if len(repo.movements) != 0 {
				t.Error("expected nothing stored on validation failure")
			}
		})
	}
}

func TestUpdateCashMovementUseCase_Execute(t *testing.T) {
	ownerID := uuid.New()
	repo := newMemoryRepository()
	created, err := NewCreateCashMovementUseCase(repo).Execute(context.Background(), CreateCashMovementInput{
		OwnerID: ownerID,
		Date:    time.Date(2025, time.January, 10, 0, 0, 0, 0, time.UTC),
		Type:    entity.CashMovementTypeExpense,
		Amount:  decimal.RequireFromString("40"),
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	uc := NewUpdateCashMovementUseCase(repo)

	t.Run("partial update keeps other fields", func(t *testing.T) {
		newAmount := decimal.RequireFromString("45.90")
		out, err := uc.Execute(context.Background(), UpdateCashMovementInput{
			OwnerID:  ownerID,
			ID:       created.Movement.ID,
			Amount:   &newAmount,
			Category: strPtr("Fornecedores"),
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !out.Movement.Amount.Equal(newAmount) {
			t.Errorf("amount = %s, want %s", out.Movement.Amount, newAmount)
		}
		if out.Movement.Type != entity.CashMovementTypeExpense {
			t.Errorf("type changed to %s", out.Movement.Type)
		}
		if got := repo.movements[created.Movement.ID].GroupKey(); got != "Fornecedores" {
			t.Errorf("stored category = %q", got)
		}
	})

	t.Run("other owner is rejected", func(t *testing.T) {
		_, err := uc.Execute(context.Background(), UpdateCashMovementInput{OwnerID: uuid.New(), ID: created.Movement.ID})
		if !errors.Is(err, domainerror.ErrNotAuthorizedCashMovement) {
			t.Errorf("expected ErrNotAuthorizedCashMovement, got %v", err)
		}
	})

	t.Run("missing movement", func(t *testing.T) {
		_, err := uc.Execute(context.Background(), UpdateCashMovementInput{OwnerID: ownerID, ID: uuid.New()})
		if code := errorCode(err); code != domainerror.ErrCodeCashMovementNotFound {
			t.Errorf("expected %s, got %s", domainerror.ErrCodeCashMovementNotFound, code)
		}
	})
}

func TestDeleteCashMovementUseCase_Execute(t *testing.T) {
	ownerID := uuid.New()
	repo := newMemoryRepository()
	movement := entity.NewCashMovement(ownerID, time.Now(), entity.CashMovementTypeIncome, nil, nil, decimal.NewFromInt(10))
	repo.movements[movement.ID] = movement
	uc := NewDeleteCashMovementUseCase(repo)

	if err := uc.Execute(context.Background(), DeleteCashMovementInput{OwnerID: uuid.New(), ID: movement.ID}); err == nil {
		t.Fatal("expected other owner to be rejected")
	}
	if err := uc.Execute(context.Background(), DeleteCashMovementInput{OwnerID: ownerID, ID: movement.ID}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	out, err := NewListCashMovementsUseCase(repo).Execute(context.Background(), ListCashMovementsInput{OwnerID: ownerID})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(out.Movements) != 0 {
		t.Errorf("expected empty list, got %d", len(out.Movements))
	}
}
