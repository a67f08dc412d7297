package report

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/gestor-financeiro/backend/internal/application/adapter"
	"github.com/gestor-financeiro/backend/internal/domain/entity"
)

// monthAbbreviations holds Portuguese month abbreviations for trend labels.
var monthAbbreviations = map[time.Month]string{
	time.January:   "Jan",
	time.February:  "Fev",
	time.March:     "Mar",
	time.April:     "Abr",
	time.May:       "Mai",
	time.June:      "Jun",
	time.July:      "Jul",
	time.August:    "Ago",
	time.September: "Set",
	time.October:   "Out",
	time.November:  "Nov",
	time.December:  "Dez",
}

// Aggregator computes ReportData from raw record collections.
// It has no side effects; "now" comes from the injected clock.
type Aggregator struct {
	clock adapter.Clock
}

// NewAggregator creates a new Aggregator instance.
func NewAggregator(clock adapter.Clock) *Aggregator {
	return &Aggregator{clock: clock}
}

// Aggregate filters both collections with include and computes totals,
// groupings and the trailing monthly trend. The trend always spans the
// last TrendMonths calendar months over the unfiltered collections.
func (a *Aggregator) Aggregate(
	movements []*entity.CashMovement,
	entries []*entity.LedgerEntry,
	include Predicate,
) *entity.ReportData {
	data := &entity.ReportData{
		TotalIncome:      decimal.Zero,
		TotalCashExpense: decimal.Zero,
		TotalLedgerDebt:  decimal.Zero,
		ByCategory:       make(map[string]decimal.Decimal),
		ByLedgerType:     make(map[string]decimal.Decimal),
		CashMovements:    make([]*entity.CashMovement, 0),
		LedgerEntries:    make([]*entity.LedgerEntry, 0),
	}

	trend, firstMonth := newTrend(a.clock.Now())

	for _, m := range movements {
		if pos := trendPosition(m.Date, firstMonth); pos >= 0 {
			if m.Type == entity.CashMovementTypeIncome {
				trend[pos].Income = trend[pos].Income.Add(m.Amount)
			} else {
				trend[pos].CashExpense = trend[pos].CashExpense.Add(m.Amount)
			}
		}

		if !include(m.Date) {
			continue
		}
		data.CashMovements = append(data.CashMovements, m)

		if m.Type == entity.CashMovementTypeIncome {
			data.TotalIncome = data.TotalIncome.Add(m.Amount)
		} else {
			data.TotalCashExpense = data.TotalCashExpense.Add(m.Amount)
		}
		key := m.GroupKey()
		data.ByCategory[key] = sumInto(data.ByCategory, key, m.Amount)
	}

	for _, e := range entries {
		if pos := trendPosition(e.Date, firstMonth); pos >= 0 {
			trend[pos].LedgerDebt = trend[pos].LedgerDebt.Add(e.Amount)
		}

		if !include(e.Date) {
			continue
		}
		data.LedgerEntries = append(data.LedgerEntries, e)

		data.TotalLedgerDebt = data.TotalLedgerDebt.Add(e.Amount)
		key := e.GroupKey()
		data.ByLedgerType[key] = sumInto(data.ByLedgerType, key, e.Amount)
	}

	data.NetBalance = data.TotalIncome.Sub(data.TotalCashExpense)
	data.MonthlyTrend = trend

	return data
}

// sumInto returns the current group sum plus amount.
func sumInto(groups map[string]decimal.Decimal, key string, amount decimal.Decimal) decimal.Decimal {
	current, ok := groups[key]
	if !ok {
		return amount
	}
	return current.Add(amount)
}

// monthIndex numbers calendar months continuously across years.
func monthIndex(date time.Time) int {
	return date.Year()*12 + int(date.Month()) - 1
}

// newTrend builds the zero-valued trend buckets ending at now's month, oldest first,
// and returns the month index of the first bucket.
func newTrend(now time.Time) ([]entity.TrendBucket, int) {
	first := monthIndex(now) - (entity.TrendMonths - 1)
	trend := make([]entity.TrendBucket, entity.TrendMonths)
	for i := range trend {
		idx := first + i
		month := time.Month(idx%12 + 1)
		trend[i] = entity.TrendBucket{
			MonthLabel:  fmt.Sprintf("%s %d", monthAbbreviations[month], idx/12),
			Income:      decimal.Zero,
			CashExpense: decimal.Zero,
			LedgerDebt:  decimal.Zero,
		}
	}
	return trend, first
}

// trendPosition returns the bucket position of date, or -1 when it is outside the trend.
func trendPosition(date time.Time, firstMonth int) int {
	pos := monthIndex(date) - firstMonth
	if pos < 0 || pos >= entity.TrendMonths {
		return -1
	}
	return pos
}
