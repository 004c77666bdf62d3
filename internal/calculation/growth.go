package calculation

import (
	"github.com/kase1111-hash/Financial-Path-Visualizer/pkg/moneyutil"
	"github.com/shopspring/decimal"
)

// DefaultMaxYearsToTarget bounds the YearsToTarget search.
const DefaultMaxYearsToTarget = 100

// GrowthResult is the outcome of one simulated year of compounding.
type GrowthResult struct {
	EndBalance    decimal.Decimal `json:"end_balance"`
	Growth        decimal.Decimal `json:"growth"`
	Contributions decimal.Decimal `json:"contributions"`
}

// YearlyGrowth simulates 12 monthly steps: the contribution is added, then
// the balance compounds at annualReturn/12. The balance is rounded to cents
// once per month; over multi-decade runs this diverges measurably from a
// single annual rounding, so the monthly point is fixed here and tests pin it.
// The balance is floored at zero under negative returns.
func YearlyGrowth(startingBalance, monthlyContribution, annualReturn decimal.Decimal) GrowthResult {
	monthlyFactor := decimal.NewFromInt(1).Add(annualReturn.Div(twelve))

	balance := startingBalance
	for month := 0; month < 12; month++ {
		balance = moneyutil.RoundCents(balance.Add(monthlyContribution).Mul(monthlyFactor))
		balance = moneyutil.ClampFloor(balance, decimal.Zero)
	}

	contributions := monthlyContribution.Mul(twelve)
	return GrowthResult{
		EndBalance:    balance,
		Growth:        balance.Sub(startingBalance).Sub(contributions),
		Contributions: contributions,
	}
}

// EmployerMatch returns the annual employer match: matchRate applied to the
// holder's contributions, but only up to matchLimit (a fraction of salary).
func EmployerMatch(monthlyContribution, annualSalary, matchRate, matchLimit decimal.Decimal) decimal.Decimal {
	if matchRate.IsZero() || monthlyContribution.LessThanOrEqual(decimal.Zero) {
		return decimal.Zero
	}

	annualContribution := monthlyContribution.Mul(twelve)
	cap := annualSalary.Mul(matchLimit)
	matched := decimal.Min(annualContribution, cap)
	if matched.LessThanOrEqual(decimal.Zero) {
		return decimal.Zero
	}
	return moneyutil.RoundCents(matched.Mul(matchRate))
}

// FutureValue compounds a present value forward n years at an annual rate.
// The result is deliberately unrounded; rounding a deeply-discounted value
// to cents would destroy the PresentValue round-trip at extreme rates.
func FutureValue(presentValue, annualRate decimal.Decimal, years int) decimal.Decimal {
	if years <= 0 {
		return presentValue
	}
	factor := decimal.NewFromInt(1).Add(annualRate).Pow(decimal.NewFromInt(int64(years)))
	return presentValue.Mul(factor)
}

// PresentValue discounts a future value back n years at an annual rate. The
// pair round-trips within a dollar for rates in [-0.5, 0.5] out to 75 years.
func PresentValue(futureValue, annualRate decimal.Decimal, years int) decimal.Decimal {
	if years <= 0 {
		return futureValue
	}
	factor := decimal.NewFromInt(1).Add(annualRate).Pow(decimal.NewFromInt(int64(years)))
	if factor.IsZero() {
		return decimal.Zero
	}
	return futureValue.Div(factor)
}

// YearsToTarget iterates yearly growth until the balance reaches target.
// It returns (0, true) when the start already meets the target and
// (0, false) when the target is unreached within maxYears.
func YearsToTarget(startingBalance, monthlyContribution, annualReturn, target decimal.Decimal, maxYears int) (int, bool) {
	if startingBalance.GreaterThanOrEqual(target) {
		return 0, true
	}
	if maxYears <= 0 {
		maxYears = DefaultMaxYearsToTarget
	}

	balance := startingBalance
	for year := 1; year <= maxYears; year++ {
		balance = YearlyGrowth(balance, monthlyContribution, annualReturn).EndBalance
		if balance.GreaterThanOrEqual(target) {
			return year, true
		}
	}
	return 0, false
}

// RequiredMonthlySavings inverts the future-value-of-annuity formula: the
// level monthly contribution that grows the starting balance to target over
// the given years. Never negative; zero when the start alone suffices.
func RequiredMonthlySavings(startingBalance, target, annualReturn decimal.Decimal, years int) decimal.Decimal {
	startFV := FutureValue(startingBalance, annualReturn, years)
	needed := target.Sub(startFV)
	if needed.LessThanOrEqual(decimal.Zero) {
		return decimal.Zero
	}
	if years <= 0 {
		return moneyutil.RoundCents(needed)
	}

	months := int64(years) * 12
	monthlyRate := annualReturn.Div(twelve)
	if monthlyRate.IsZero() {
		return moneyutil.RoundCents(needed.Div(decimal.NewFromInt(months)))
	}

	// FV of annuity factor: ((1+r)^n - 1) / r.
	factor := decimal.NewFromInt(1).Add(monthlyRate).Pow(decimal.NewFromInt(months)).
		Sub(decimal.NewFromInt(1)).Div(monthlyRate)
	return moneyutil.RoundCents(needed.Div(factor))
}

// Readiness is the retirement-readiness position against a desired income.
type Readiness struct {
	RequiredNestEgg decimal.Decimal `json:"required_nest_egg"`
	PercentComplete decimal.Decimal `json:"percent_complete"`
	IsReady         bool            `json:"is_ready"`
}

// RetirementReadiness compares assets against the nest egg needed to fund
// desiredAnnualIncome at the given withdrawal rate. A zero withdrawal rate
// yields a zero required nest egg rather than dividing by zero.
func RetirementReadiness(assets, desiredAnnualIncome, withdrawalRate decimal.Decimal) Readiness {
	required := moneyutil.Ratio(desiredAnnualIncome, withdrawalRate)

	percent := decimal.NewFromInt(1)
	if required.GreaterThan(decimal.Zero) {
		percent = decimal.Min(decimal.NewFromInt(1), assets.Div(required))
	}

	return Readiness{
		RequiredNestEgg: required,
		PercentComplete: percent,
		IsReady:         assets.GreaterThanOrEqual(required),
	}
}
