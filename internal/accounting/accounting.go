// Package accounting implements the profit-and-reserve calculations of
// the ledger. All functions are pure: they read the passed collections
// and never touch the store.
//
// Stakeholders are identified by opaque ids. The functions work for any
// number of stakeholders; the default configuration has two.
package accounting

import (
	"github.com/familybiz/backend/internal/models"
	"github.com/familybiz/backend/internal/types"
	"github.com/shopspring/decimal"
)

var hundred = decimal.NewFromInt(100)

// DefaultStakeholders is the stakeholder set of the two-owner family
// business that the storage schema is built around.
func DefaultStakeholders() []string {
	return []string{models.StakeholderHusband, models.StakeholderWife}
}

// Config holds the accounting parameters derived from the settings.
type Config struct {
	// CostPercent is the percentage of deduct-flagged income that goes
	// into the cost reserve.
	CostPercent int

	// DefaultShares maps stakeholder id to the default profit-split
	// percentage used when a transaction has no override. Stakeholders
	// missing from the map fall back to an equal split.
	DefaultShares map[string]int

	// Stakeholders is the ordered stakeholder set.
	Stakeholders []string
}

// ConfigFromSettings maps the stored settings onto the engine
// configuration.
func ConfigFromSettings(settings models.Settings) Config {
	return Config{
		CostPercent: settings.CostPercent,
		DefaultShares: map[string]int{
			models.StakeholderHusband: settings.HusbandShare,
			models.StakeholderWife:    settings.WifeShare,
		},
		Stakeholders: DefaultStakeholders(),
	}
}

// defaultShare returns the configured default split percentage for the
// stakeholder, or an equal split when none is configured.
func (c Config) defaultShare(stakeholder string) int {
	if share, ok := c.DefaultShares[stakeholder]; ok {
		return share
	}

	if len(c.Stakeholders) == 0 {
		return 0
	}

	return 100 / len(c.Stakeholders)
}

// percentOf returns amount * percent / 100.
func percentOf(amount decimal.Decimal, percent int) decimal.Decimal {
	return amount.Mul(decimal.NewFromInt(int64(percent))).Div(hundred)
}

// Share is the position of one stakeholder in a distribution.
type Share struct {
	Amount decimal.Decimal `json:"amount"` // The stakeholder's amount
	Share  decimal.Decimal `json:"share"`  // The stakeholder's percentage of the total
}

// Overview is the investment-ownership split between the stakeholders.
type Overview struct {
	Total        decimal.Decimal  `json:"total"`        // Sum of all contributions
	Stakeholders map[string]Share `json:"stakeholders"` // Contribution and ownership share per stakeholder
}

// InvestmentOverview computes the ownership split from the capital
// contributions. An empty ledger yields zero amounts and zero shares for
// every stakeholder; there is no division by zero.
func InvestmentOverview(stakeholders []string, investments []models.Investment) Overview {
	totals := make(map[string]decimal.Decimal, len(stakeholders))
	for _, id := range stakeholders {
		totals[id] = decimal.Zero
	}

	total := decimal.Zero
	for _, investment := range investments {
		// Contributions by unknown investors still count towards the
		// total so that the shares stay consistent
		totals[investment.Investor] = totals[investment.Investor].Add(investment.Amount)
		total = total.Add(investment.Amount)
	}

	shares := make(map[string]Share, len(totals))
	for id, amount := range totals {
		share := decimal.Zero
		if total.IsPositive() {
			share = amount.Div(total).Mul(hundred)
		}

		shares[id] = Share{Amount: amount, Share: share}
	}

	return Overview{Total: total, Stakeholders: shares}
}

// Summary are the aggregates of one calendar month.
type Summary struct {
	Income          decimal.Decimal      `json:"income"`          // Income of the month
	Expense         decimal.Decimal      `json:"expense"`         // Expenses of the month, excluding reserve withdrawals
	NetProfit       decimal.Decimal      `json:"netProfit"`       // Income minus expenses
	TotalInvestment decimal.Decimal      `json:"totalInvestment"` // Capital contributed over all time
	Transactions    []models.Transaction `json:"transactions"`    // The month's transactions
	AllTransactions []models.Transaction `json:"-"`               // The unfiltered ledger, for downstream aggregation
}

// MonthlySummary aggregates the transactions of the given calendar
// month. Reserve withdrawals are not business expenses and do not count.
func MonthlySummary(transactions []models.Transaction, investments []models.Investment, month types.Month) Summary {
	summary := Summary{
		Income:          decimal.Zero,
		Expense:         decimal.Zero,
		TotalInvestment: decimal.Zero,
		Transactions:    make([]models.Transaction, 0),
		AllTransactions: transactions,
	}

	for _, investment := range investments {
		summary.TotalInvestment = summary.TotalInvestment.Add(investment.Amount)
	}

	for _, transaction := range transactions {
		if !transaction.Date.In(month) {
			continue
		}

		summary.Transactions = append(summary.Transactions, transaction)

		switch {
		case transaction.Type == models.TransactionIncome:
			summary.Income = summary.Income.Add(transaction.Amount)
		case transaction.Type == models.TransactionExpense && !transaction.ExcludedFromExpenses():
			summary.Expense = summary.Expense.Add(transaction.Amount)
		}
	}

	summary.NetProfit = summary.Income.Sub(summary.Expense)
	return summary
}

// Reserve is the state of the cost reserve.
type Reserve struct {
	TotalDeducted    decimal.Decimal     `json:"totalDeducted"`    // Accumulated cost deductions from flagged income
	TotalInvestments decimal.Decimal     `json:"totalInvestments"` // Capital contributed by the stakeholders
	TotalWithdrawn   decimal.Decimal     `json:"totalWithdrawn"`   // Sum of all withdrawals
	Balance          decimal.Decimal     `json:"balance"`          // TotalDeducted + TotalInvestments - TotalWithdrawn
	CostPercent      int                 `json:"costPercent"`      // The percentage used for the deductions
	Withdrawals      []models.Withdrawal `json:"withdrawals"`      // The withdrawal history
}

// CostReserve computes the reserve backed by cost-deducted income and
// contributed capital, drawn down by withdrawals. The balance is not
// clamped: over-withdrawal shows up as a negative balance.
func CostReserve(transactions []models.Transaction, investments []models.Investment, withdrawals []models.Withdrawal, costPercent int) Reserve {
	reserve := Reserve{
		TotalDeducted:    decimal.Zero,
		TotalInvestments: decimal.Zero,
		TotalWithdrawn:   decimal.Zero,
		CostPercent:      costPercent,
		Withdrawals:      withdrawals,
	}

	for _, transaction := range transactions {
		if transaction.Type == models.TransactionIncome && transaction.DeductCost {
			reserve.TotalDeducted = reserve.TotalDeducted.Add(percentOf(transaction.Amount, costPercent))
		}
	}

	for _, investment := range investments {
		reserve.TotalInvestments = reserve.TotalInvestments.Add(investment.Amount)
	}

	for _, withdrawal := range withdrawals {
		reserve.TotalWithdrawn = reserve.TotalWithdrawn.Add(withdrawal.Amount)
	}

	reserve.Balance = reserve.TotalDeducted.Add(reserve.TotalInvestments).Sub(reserve.TotalWithdrawn)
	return reserve
}

// Distribution is the profit-sharing result.
type Distribution struct {
	TotalProfit  decimal.Decimal  `json:"totalProfit"`  // Income after cost deductions
	TotalExpense decimal.Decimal  `json:"totalExpense"` // Ordinary expenses, excluding reserve withdrawals
	NetProfit    decimal.Decimal  `json:"netProfit"`    // TotalProfit - TotalExpense, may be negative
	Stakeholders map[string]Share `json:"stakeholders"` // Final amount and split percentage per stakeholder
}

// ProfitShare distributes the net profit between the stakeholders.
//
// Every income transaction contributes its amount (less the cost
// deduction when flagged) to the profit pool, weighted per stakeholder
// by the transaction's own split or the configured default. Expenses are
// deducted from the pooled profit before splitting, so the final
// distribution follows the income-weighted ratio, not each transaction's
// split applied to a shrunken base.
//
// When month is non-nil, only transactions of that calendar month are
// considered. Amounts are floored at zero: no stakeholder ever receives
// a negative distribution.
func ProfitShare(transactions []models.Transaction, config Config, month *types.Month) Distribution {
	weighted := make(map[string]decimal.Decimal, len(config.Stakeholders))
	for _, id := range config.Stakeholders {
		weighted[id] = decimal.Zero
	}

	distribution := Distribution{
		TotalProfit:  decimal.Zero,
		TotalExpense: decimal.Zero,
		Stakeholders: make(map[string]Share, len(config.Stakeholders)),
	}

	for _, transaction := range transactions {
		if month != nil && !transaction.Date.In(*month) {
			continue
		}

		switch transaction.Type {
		case models.TransactionIncome:
			profitAmount := transaction.Amount
			if transaction.DeductCost {
				profitAmount = percentOf(transaction.Amount, 100-config.CostPercent)
			}

			distribution.TotalProfit = distribution.TotalProfit.Add(profitAmount)

			for _, id := range config.Stakeholders {
				share := config.defaultShare(id)
				if override := transaction.SplitOverride(id); override != nil {
					share = *override
				}

				weighted[id] = weighted[id].Add(percentOf(profitAmount, share))
			}

		case models.TransactionExpense:
			if !transaction.ExcludedFromExpenses() {
				distribution.TotalExpense = distribution.TotalExpense.Add(transaction.Amount)
			}
		}
	}

	distribution.NetProfit = distribution.TotalProfit.Sub(distribution.TotalExpense)

	totalWeighted := decimal.Zero
	for _, w := range weighted {
		totalWeighted = totalWeighted.Add(w)
	}

	for _, id := range config.Stakeholders {
		share := Share{Amount: decimal.Zero}

		if totalWeighted.IsPositive() {
			share.Share = weighted[id].Div(totalWeighted).Mul(hundred).Round(0)
		} else if len(config.Stakeholders) > 0 {
			// With no weighted income there is nothing to derive the
			// ratio from, report the equal split
			share.Share = decimal.NewFromInt(int64(100 / len(config.Stakeholders)))
		}

		if totalWeighted.IsPositive() && distribution.NetProfit.IsPositive() {
			share.Amount = distribution.NetProfit.Mul(weighted[id]).Div(totalWeighted)
		}

		distribution.Stakeholders[id] = share
	}

	return distribution
}

// Dividends is the payout calculation for a given profit figure.
type Dividends struct {
	Profit           decimal.Decimal            `json:"profit"`           // The profit the payout is based on
	Deduction        decimal.Decimal            `json:"deduction"`        // The cost buffer retained before the payout
	DeductionPercent int                        `json:"deductionPercent"` // The percentage used for the buffer
	Distributable    decimal.Decimal            `json:"distributable"`    // Profit minus the buffer
	Stakeholders     map[string]decimal.Decimal `json:"stakeholders"`     // Payout per stakeholder
}

// CalculateDividends deducts the cost buffer from the profit and splits
// the remainder by investment-ownership share.
func CalculateDividends(profit decimal.Decimal, costPercent int, overview Overview) Dividends {
	dividends := Dividends{
		Profit:           profit,
		Deduction:        decimal.Zero,
		DeductionPercent: costPercent,
		Stakeholders:     make(map[string]decimal.Decimal, len(overview.Stakeholders)),
	}

	if profit.IsPositive() {
		dividends.Deduction = percentOf(profit, costPercent)
	}

	dividends.Distributable = profit.Sub(dividends.Deduction)

	for id, share := range overview.Stakeholders {
		payout := decimal.Zero
		if dividends.Distributable.IsPositive() {
			payout = dividends.Distributable.Mul(share.Share).Div(hundred)
		}

		dividends.Stakeholders[id] = payout
	}

	return dividends
}
