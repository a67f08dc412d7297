// Package entity defines the core business entities for the domain layer.
package entity

import (
	"sort"

	"github.com/shopspring/decimal"
)

// TrendMonths is the number of trailing calendar months in a monthly trend.
const TrendMonths = 6

// TrendBucket holds the totals of one calendar month.
type TrendBucket struct {
	MonthLabel  string          `json:"month_label"`
	Income      decimal.Decimal `json:"income"`
	CashExpense decimal.Decimal `json:"cash_expense"`
	LedgerDebt  decimal.Decimal `json:"ledger_debt"`
}

// ReportData is the aggregated view of cash movements and ledger entries for a period.
// It is recomputed on every request and never persisted.
type ReportData struct {
	TotalIncome      decimal.Decimal            `json:"total_income"`
	TotalCashExpense decimal.Decimal            `json:"total_cash_expense"`
	TotalLedgerDebt  decimal.Decimal            `json:"total_ledger_debt"`
	NetBalance       decimal.Decimal            `json:"net_balance"` // income - cash expense
	ByCategory       map[string]decimal.Decimal `json:"by_category"`
	ByLedgerType     map[string]decimal.Decimal `json:"by_ledger_type"`
	MonthlyTrend     []TrendBucket              `json:"monthly_trend"`
	CashMovements    []*CashMovement            `json:"cash_movements"`
	LedgerEntries    []*LedgerEntry             `json:"ledger_entries"`
}

// TotalExpense returns cash expense plus ledger debt.
func (d *ReportData) TotalExpense() decimal.Decimal {
	return d.TotalCashExpense.Add(d.TotalLedgerDebt)
}

// AmountEntry is a single key/amount pair of a breakdown.
type AmountEntry struct {
	Key    string
	Amount decimal.Decimal
}

// SortedByAmount returns the breakdown sorted by amount descending, then key ascending.
func SortedByAmount(breakdown map[string]decimal.Decimal) []AmountEntry {
	entries := make([]AmountEntry, 0, len(breakdown))
	for key, amount := range breakdown {
		entries = append(entries, AmountEntry{Key: key, Amount: amount})
	}
	sort.Slice(entries, func(i, j int) bool {
		if c := entries[i].Amount.Cmp(entries[j].Amount); c != 0 {
			return c > 0
		}
		return entries[i].Key < entries[j].Key
	})
	return entries
}

// SortedByKey returns the breakdown sorted by key ascending.
func SortedByKey(breakdown map[string]decimal.Decimal) []AmountEntry {
	entries := make([]AmountEntry, 0, len(breakdown))
	for key, amount := range breakdown {
		entries = append(entries, AmountEntry{Key: key, Amount: amount})
	}
	sort.Slice(entries, func(i, j int) bool {
		return entries[i].Key < entries[j].Key
	})
	return entries
}
