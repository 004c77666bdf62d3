package calculation

import (
	"fmt"

	"github.com/kase1111-hash/Financial-Path-Visualizer/internal/domain"
	"github.com/kase1111-hash/Financial-Path-Visualizer/pkg/moneyutil"
	"github.com/shopspring/decimal"
)

var twelve = decimal.NewFromInt(12)

// MonthlyPayment returns the level payment that amortizes principal over
// termMonths at the given annual rate. A zero rate degrades to straight-line
// principal division.
func MonthlyPayment(principal, annualRate decimal.Decimal, termMonths int) (decimal.Decimal, error) {
	if principal.IsNegative() {
		return decimal.Zero, fmt.Errorf("principal must not be negative, got %s", principal)
	}
	if annualRate.IsNegative() {
		return decimal.Zero, fmt.Errorf("annual rate must not be negative, got %s", annualRate)
	}
	if termMonths <= 0 {
		return decimal.Zero, fmt.Errorf("term months must be positive, got %d", termMonths)
	}

	if annualRate.IsZero() {
		return principal.Div(decimal.NewFromInt(int64(termMonths))).RoundUp(2), nil
	}

	monthlyRate := annualRate.Div(twelve)
	factor := decimal.NewFromInt(1).Add(monthlyRate).Pow(decimal.NewFromInt(int64(termMonths)))
	payment := principal.Mul(monthlyRate).Mul(factor).Div(factor.Sub(decimal.NewFromInt(1)))
	// Rounded up to the next cent so the schedule never runs past its term.
	return payment.RoundUp(2), nil
}

// ScheduleEntry is one month of an amortization schedule.
type ScheduleEntry struct {
	Month     int             `json:"month"`
	Principal decimal.Decimal `json:"principal"`
	Interest  decimal.Decimal `json:"interest"`
	Balance   decimal.Decimal `json:"balance"`
}

// Schedule lazily yields the monthly amortization of a single debt. The final
// payment is clipped so the balance lands at exactly zero cents instead of
// letting per-month rounding accumulate a residual.
type Schedule struct {
	payment     decimal.Decimal
	monthlyRate decimal.Decimal

	principal decimal.Decimal
	balance   decimal.Decimal
	month     int
}

// NewSchedule builds a restartable schedule. extraPayment is added to the
// level payment every month.
func NewSchedule(principal, annualRate decimal.Decimal, termMonths int, extraPayment decimal.Decimal) (*Schedule, error) {
	payment, err := MonthlyPayment(principal, annualRate, termMonths)
	if err != nil {
		return nil, err
	}
	if extraPayment.IsNegative() {
		return nil, fmt.Errorf("extra payment must not be negative, got %s", extraPayment)
	}

	s := &Schedule{
		payment:     payment.Add(extraPayment),
		monthlyRate: annualRate.Div(twelve),
		principal:   principal,
	}
	s.Reset()
	return s, nil
}

// Reset restarts the schedule from the original principal.
func (s *Schedule) Reset() {
	s.balance = s.principal
	s.month = 0
}

// Next yields the next month, or false once the balance has reached zero.
func (s *Schedule) Next() (ScheduleEntry, bool) {
	if s.balance.LessThanOrEqual(decimal.Zero) {
		return ScheduleEntry{}, false
	}

	s.month++
	interest := moneyutil.RoundCents(s.balance.Mul(s.monthlyRate))
	principalPart := s.payment.Sub(interest)

	if principalPart.GreaterThanOrEqual(s.balance) {
		// Final payment: clip so the balance lands at exactly zero.
		principalPart = s.balance
	}

	s.balance = s.balance.Sub(principalPart)
	return ScheduleEntry{
		Month:     s.month,
		Principal: principalPart,
		Interest:  interest,
		Balance:   s.balance,
	}, true
}

// DebtYearResult is the outcome of advancing one debt by one simulated year.
type DebtYearResult struct {
	EndBalance    decimal.Decimal `json:"end_balance"`
	InterestPaid  decimal.Decimal `json:"interest_paid"`
	PrincipalPaid decimal.Decimal `json:"principal_paid"`
	IsPaidOff     bool            `json:"is_paid_off"`
	// PayoffMonth is 1-12 when payoff occurred this year, 0 otherwise.
	PayoffMonth int `json:"payoff_month"`
}

// yearlyDebtPayment resolves the monthly payment a debt services: the actual
// payment if set, else the minimum, else the level payment from its original
// terms.
func yearlyDebtPayment(debt domain.Debt) (decimal.Decimal, error) {
	if debt.ActualPayment.IsNegative() {
		return decimal.Zero, fmt.Errorf("debt %q: actual payment must not be negative, got %s", debt.Name, debt.ActualPayment)
	}
	if debt.ActualPayment.GreaterThan(decimal.Zero) {
		return debt.ActualPayment, nil
	}
	if debt.MinimumPayment.GreaterThan(decimal.Zero) {
		return debt.MinimumPayment, nil
	}
	if debt.TermMonths > 0 {
		return MonthlyPayment(debt.Principal, debt.AnnualRate, debt.TermMonths)
	}
	return decimal.Zero, nil
}

// DebtYear applies up to 12 months of amortization against startingBalance,
// stopping early at payoff. A payment that does not cover interest lets the
// balance grow; the end balance is floored at zero regardless.
func DebtYear(debt domain.Debt, startingBalance decimal.Decimal) (DebtYearResult, error) {
	if startingBalance.IsNegative() {
		return DebtYearResult{}, fmt.Errorf("debt %q: starting balance must not be negative, got %s", debt.Name, startingBalance)
	}
	if debt.AnnualRate.IsNegative() {
		return DebtYearResult{}, fmt.Errorf("debt %q: annual rate must not be negative, got %s", debt.Name, debt.AnnualRate)
	}

	if startingBalance.IsZero() {
		return DebtYearResult{EndBalance: decimal.Zero, IsPaidOff: true}, nil
	}

	payment, err := yearlyDebtPayment(debt)
	if err != nil {
		return DebtYearResult{}, err
	}

	monthlyRate := debt.AnnualRate.Div(twelve)
	balance := startingBalance
	var interestPaid, principalPaid decimal.Decimal
	result := DebtYearResult{}

	for month := 1; month <= 12; month++ {
		interest := moneyutil.RoundCents(balance.Mul(monthlyRate))

		if payment.GreaterThanOrEqual(balance.Add(interest)) {
			// Final payment clipped to exactly clear the balance.
			interestPaid = interestPaid.Add(interest)
			principalPaid = principalPaid.Add(balance)
			balance = decimal.Zero
			result.IsPaidOff = true
			result.PayoffMonth = month
			break
		}

		principalPart := payment.Sub(interest)
		if principalPart.GreaterThan(decimal.Zero) {
			interestPaid = interestPaid.Add(interest)
			principalPaid = principalPaid.Add(principalPart)
			balance = balance.Sub(principalPart)
		} else {
			// Payment below interest: unpaid interest accrues.
			interestPaid = interestPaid.Add(payment)
			balance = balance.Add(interest.Sub(payment))
		}
	}

	result.EndBalance = moneyutil.ClampFloor(balance, decimal.Zero)
	result.InterestPaid = interestPaid
	result.PrincipalPaid = principalPaid
	return result, nil
}

// LTV is the loan-to-value ratio, zero when the property has no value.
func LTV(balance, propertyValue decimal.Decimal) decimal.Decimal {
	return moneyutil.Ratio(balance, propertyValue)
}

// ShouldPayPMI reports whether PMI is still required at the given threshold.
func ShouldPayPMI(balance, propertyValue, threshold decimal.Decimal) bool {
	if propertyValue.IsZero() || threshold.IsZero() {
		return false
	}
	return LTV(balance, propertyValue).GreaterThan(threshold)
}
