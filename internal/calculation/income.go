package calculation

import (
	"github.com/kase1111-hash/Financial-Path-Visualizer/internal/domain"
	"github.com/kase1111-hash/Financial-Path-Visualizer/pkg/moneyutil"
	"github.com/shopspring/decimal"
)

var (
	weeksPerYear       = decimal.NewFromInt(52)
	defaultWeeklyHours = decimal.NewFromInt(40)
)

// AnnualBase returns the first-year annual amount of an income source before
// growth: hourly incomes annualize rate * hours * 52, variable incomes are
// discounted by half their variability factor.
func AnnualBase(income domain.Income) decimal.Decimal {
	switch income.Kind {
	case domain.IncomeHourly:
		hours := income.WeeklyHours
		if hours.IsZero() {
			hours = defaultWeeklyHours
		}
		return income.Amount.Mul(hours).Mul(weeksPerYear)
	case domain.IncomeVariable:
		discount := decimal.NewFromInt(1).Sub(income.Variability.Div(decimal.NewFromInt(2)))
		return income.Amount.Mul(discount)
	default:
		return income.Amount
	}
}

// incomeGrowthRate resolves the growth rate for an income source; salaries
// without an explicit rate fall back to the profile-wide default.
func incomeGrowthRate(income domain.Income, defaultSalaryGrowth decimal.Decimal) decimal.Decimal {
	if income.GrowthRate.IsZero() && income.Kind == domain.IncomeSalary {
		return defaultSalaryGrowth
	}
	return income.GrowthRate
}

// activeFraction returns the portion of a calendar year the income is active:
// 1 before the end year, endMonth/12 in the end year, 0 afterwards.
func activeFraction(income domain.Income, calendarYear int) decimal.Decimal {
	if !income.HasEnd() || calendarYear < income.EndYear {
		return decimal.NewFromInt(1)
	}
	if calendarYear > income.EndYear {
		return decimal.Zero
	}
	endMonth := income.EndMonth
	if endMonth <= 0 || endMonth > 12 {
		endMonth = 12
	}
	return decimal.NewFromInt(int64(endMonth)).Div(twelve)
}

// IncomeForYear evaluates one income source for a 0-based projection year
// starting at startYear: growth compounds annually, and the amount is zeroed
// (or prorated) past the configured end date.
func IncomeForYear(income domain.Income, yearIndex, startYear int, defaultSalaryGrowth decimal.Decimal) decimal.Decimal {
	calendarYear := startYear + yearIndex
	fraction := activeFraction(income, calendarYear)
	if fraction.IsZero() {
		return decimal.Zero
	}

	base := AnnualBase(income)
	rate := incomeGrowthRate(income, defaultSalaryGrowth)
	if !rate.IsZero() && yearIndex > 0 {
		base = base.Mul(decimal.NewFromInt(1).Add(rate).Pow(decimal.NewFromInt(int64(yearIndex))))
	}

	return moneyutil.RoundCents(base.Mul(fraction))
}

// WorkHoursForYear returns the hours worked to earn an income source in a
// given projection year. Passive income earns zero hours; salary and hourly
// kinds default to a 40-hour week when no weekly hours are set.
func WorkHoursForYear(income domain.Income, yearIndex, startYear int) decimal.Decimal {
	if income.Kind == domain.IncomePassive {
		return decimal.Zero
	}

	hours := income.WeeklyHours
	if hours.IsZero() {
		if income.Kind == domain.IncomeVariable {
			return decimal.Zero
		}
		hours = defaultWeeklyHours
	}

	fraction := activeFraction(income, startYear+yearIndex)
	return hours.Mul(weeksPerYear).Mul(fraction)
}
