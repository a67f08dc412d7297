package steps

import (
	"context"
	"fmt"
	"time"

	"github.com/cucumber/godog"
	"github.com/shopspring/decimal"

	"github.com/gestor-financeiro/backend/internal/domain/entity"
	"github.com/gestor-financeiro/backend/internal/integration/persistence"
)

func registerDataSteps(ctx *godog.ScenarioContext) {
	ctx.Step(`^"([^"]*)" has the cash movements:$`, hasTheCashMovements)
	ctx.Step(`^"([^"]*)" has the ledger entries:$`, hasTheLedgerEntries)
}

// tableRows maps each data row to its header names.
func tableRows(table *godog.Table) []map[string]string {
	if len(table.Rows) == 0 {
		return nil
	}
	header := table.Rows[0].Cells
	rows := make([]map[string]string, 0, len(table.Rows)-1)
	for _, row := range table.Rows[1:] {
		values := make(map[string]string, len(header))
		for i, cell := range row.Cells {
			values[header[i].Value] = cell.Value
		}
		rows = append(rows, values)
	}
	return rows
}

func optional(value string) *string {
	if value == "" {
		return nil
	}
	return &value
}

func parseRow(row map[string]string) (time.Time, decimal.Decimal, error) {
	date, err := time.Parse("2006-01-02", row["date"])
	if err != nil {
		return time.Time{}, decimal.Zero, fmt.Errorf("invalid date %q: %w", row["date"], err)
	}
	amount, err := decimal.NewFromString(row["amount"])
	if err != nil {
		return time.Time{}, decimal.Zero, fmt.Errorf("invalid amount %q: %w", row["amount"], err)
	}
	return date, amount, nil
}

func hasTheCashMovements(ctx context.Context, alias string, table *godog.Table) error {
	tc := GetTestContext(ctx)
	repo := persistence.NewCashMovementRepository(injector.DB)
	ownerID := tc.userID(alias)

	for _, row := range tableRows(table) {
		date, amount, err := parseRow(row)
		if err != nil {
			return err
		}
		movement := entity.NewCashMovement(
			ownerID,
			date,
			entity.CashMovementType(row["type"]),
			optional(row["category"]),
			optional(row["description"]),
			amount,
		)
		if err := repo.Create(ctx, movement); err != nil {
			return fmt.Errorf("failed to seed cash movement: %w", err)
		}
	}
	return nil
}

func hasTheLedgerEntries(ctx context.Context, alias string, table *godog.Table) error {
	tc := GetTestContext(ctx)
	repo := persistence.NewLedgerEntryRepository(injector.DB)
	ownerID := tc.userID(alias)

	for _, row := range tableRows(table) {
		date, amount, err := parseRow(row)
		if err != nil {
			return err
		}
		entry := entity.NewLedgerEntry(
			ownerID,
			date,
			row["type"],
			nil,
			optional(row["description"]),
			amount,
		)
		if err := repo.Create(ctx, entry); err != nil {
			return fmt.Errorf("failed to seed ledger entry: %w", err)
		}
	}
	return nil
}
