package accounting

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/shilohridge/backoffice/internal/domain/models"
	"github.com/shilohridge/backoffice/internal/manager"
)

const dateLayout = "2006-01-02"

// Summary aggregates the books over a period.
type Summary struct {
	TotalExpenses     decimal.Decimal            `json:"total_expenses"`
	TotalRevenue      decimal.Decimal            `json:"total_revenue"`
	NetProfit         decimal.Decimal            `json:"net_profit"`
	ExpenseCount      int                        `json:"expense_count"`
	RevenueCount      int                        `json:"revenue_count"`
	ExpenseByCategory map[string]decimal.Decimal `json:"expense_by_category"`
	RevenueByType     map[string]decimal.Decimal `json:"revenue_by_type"`
}

// MonthlyReport is a month-keyed breakdown for a calendar year.
type MonthlyReport struct {
	Year   int          `json:"year"`
	Months []MonthTotal `json:"months"`
}

// MonthTotal holds one month's totals. Month is 1-12.
type MonthTotal struct {
	Month    int             `json:"month"`
	Expenses decimal.Decimal `json:"expenses"`
	Revenue  decimal.Decimal `json:"revenue"`
	Net      decimal.Decimal `json:"net"`
}

// Service aggregates expenses and revenue into summaries and reports.
type Service struct {
	expenses *manager.Collection[models.Expense]
	revenue  *manager.Collection[models.Revenue]
	logger   *zap.Logger
}

// NewService wires a new accounting service instance.
func NewService(expenses *manager.Collection[models.Expense], revenue *manager.Collection[models.Revenue], logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{expenses: expenses, revenue: revenue, logger: logger}
}

// Summary totals both ledgers between start and end (inclusive; zero values
// mean unbounded). Rows with unparseable dates are skipped, not fatal.
func (s *Service) Summary(ctx context.Context, start, end time.Time) (Summary, error) {
	expenses, err := s.expenses.List(ctx, manager.Filter{})
	if err != nil {
		return Summary{}, err
	}
	revenue, err := s.revenue.List(ctx, manager.Filter{})
	if err != nil {
		return Summary{}, err
	}

	out := Summary{
		ExpenseByCategory: map[string]decimal.Decimal{},
		RevenueByType:     map[string]decimal.Decimal{},
	}
	for _, e := range expenses {
		when, err := time.Parse(dateLayout, e.Date)
		if err != nil {
			s.logger.Debug("skip expense with invalid date", zap.String("id", e.ID), zap.String("date", e.Date))
			continue
		}
		if !within(when, start, end) {
			continue
		}
		out.TotalExpenses = out.TotalExpenses.Add(e.Amount)
		out.ExpenseByCategory[e.Category] = out.ExpenseByCategory[e.Category].Add(e.Amount)
		out.ExpenseCount++
	}
	for _, r := range revenue {
		when, err := time.Parse(dateLayout, r.Date)
		if err != nil {
			s.logger.Debug("skip revenue with invalid date", zap.String("id", r.ID), zap.String("date", r.Date))
			continue
		}
		if !within(when, start, end) {
			continue
		}
		out.TotalRevenue = out.TotalRevenue.Add(r.Amount)
		out.RevenueByType[r.Type] = out.RevenueByType[r.Type].Add(r.Amount)
		out.RevenueCount++
	}
	out.NetProfit = out.TotalRevenue.Sub(out.TotalExpenses)
	return out, nil
}

// Monthly breaks a calendar year down month by month.
func (s *Service) Monthly(ctx context.Context, year int) (MonthlyReport, error) {
	expenses, err := s.expenses.List(ctx, manager.Filter{})
	if err != nil {
		return MonthlyReport{}, err
	}
	revenue, err := s.revenue.List(ctx, manager.Filter{})
	if err != nil {
		return MonthlyReport{}, err
	}

	report := MonthlyReport{Year: year, Months: make([]MonthTotal, 12)}
	for i := range report.Months {
		report.Months[i].Month = i + 1
	}
	for _, e := range expenses {
		when, err := time.Parse(dateLayout, e.Date)
		if err != nil || when.Year() != year {
			continue
		}
		m := &report.Months[int(when.Month())-1]
		m.Expenses = m.Expenses.Add(e.Amount)
	}
	for _, r := range revenue {
		when, err := time.Parse(dateLayout, r.Date)
		if err != nil || when.Year() != year {
			continue
		}
		m := &report.Months[int(when.Month())-1]
		m.Revenue = m.Revenue.Add(r.Amount)
	}
	for i := range report.Months {
		report.Months[i].Net = report.Months[i].Revenue.Sub(report.Months[i].Expenses)
	}
	return report, nil
}

// Categories returns the closed expense and revenue category lists used to
// populate entry forms.
func (s *Service) Categories() (expenses, revenue []models.FinanceCategory) {
	return models.ExpenseCategories, models.RevenueCategories
}

func within(when, start, end time.Time) bool {
	if !start.IsZero() && when.Before(start) {
		return false
	}
	if !end.IsZero() && when.After(end) {
		return false
	}
	return true
}
