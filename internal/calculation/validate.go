package calculation

import (
	"fmt"

	"github.com/kase1111-hash/Financial-Path-Visualizer/internal/domain"
	"github.com/shopspring/decimal"
)

// ValidateProfile checks the preconditions the engine relies on. It fails
// fast with an error naming the field and the violated invariant; numeric
// edge cases inside the engine (zero income, zero rates) are legal and
// resolved by policy, not rejected here.
func ValidateProfile(p *domain.Profile) error {
	if p == nil {
		return fmt.Errorf("profile is required")
	}

	a := p.Assumptions
	if !domain.ValidFilingStatus(a.TaxFilingStatus) {
		return fmt.Errorf("assumptions.tax_filing_status: unknown filing status %q", a.TaxFilingStatus)
	}
	if a.CurrentAge < 0 {
		return fmt.Errorf("assumptions.current_age: must not be negative, got %d", a.CurrentAge)
	}
	if a.LifeExpectancy <= a.CurrentAge {
		return fmt.Errorf("assumptions.life_expectancy: must exceed current age %d, got %d", a.CurrentAge, a.LifeExpectancy)
	}
	if a.InflationRate.LessThan(decimal.NewFromFloat(-0.10)) || a.InflationRate.GreaterThan(decimal.NewFromFloat(0.20)) {
		return fmt.Errorf("assumptions.inflation_rate: must be between -10%% and 20%%, got %s", a.InflationRate)
	}
	if a.RetirementWithdrawalRate.IsNegative() {
		return fmt.Errorf("assumptions.retirement_withdrawal_rate: must not be negative, got %s", a.RetirementWithdrawalRate)
	}
	if a.IncomeReplacementRatio.IsNegative() {
		return fmt.Errorf("assumptions.income_replacement_ratio: must not be negative, got %s", a.IncomeReplacementRatio)
	}

	for i, income := range p.Incomes {
		if income.Amount.IsNegative() {
			return fmt.Errorf("incomes[%d] %q: amount must not be negative, got %s", i, income.Name, income.Amount)
		}
		if income.Variability.IsNegative() || income.Variability.GreaterThan(decimal.NewFromInt(1)) {
			return fmt.Errorf("incomes[%d] %q: variability must be within [0,1], got %s", i, income.Name, income.Variability)
		}
		if income.WeeklyHours.IsNegative() {
			return fmt.Errorf("incomes[%d] %q: weekly hours must not be negative, got %s", i, income.Name, income.WeeklyHours)
		}
		if income.HasEnd() && (income.EndMonth < 0 || income.EndMonth > 12) {
			return fmt.Errorf("incomes[%d] %q: end month must be within 1-12 or 0 for December, got %d", i, income.Name, income.EndMonth)
		}
	}

	for i, debt := range p.Debts {
		if debt.Principal.IsNegative() {
			return fmt.Errorf("debts[%d] %q: principal must not be negative, got %s", i, debt.Name, debt.Principal)
		}
		if debt.AnnualRate.IsNegative() {
			return fmt.Errorf("debts[%d] %q: annual rate must not be negative, got %s", i, debt.Name, debt.AnnualRate)
		}
		if debt.ActualPayment.IsNegative() {
			return fmt.Errorf("debts[%d] %q: actual payment must not be negative, got %s", i, debt.Name, debt.ActualPayment)
		}
		if debt.MinimumPayment.IsNegative() {
			return fmt.Errorf("debts[%d] %q: minimum payment must not be negative, got %s", i, debt.Name, debt.MinimumPayment)
		}
		if debt.TermMonths < 0 {
			return fmt.Errorf("debts[%d] %q: term months must not be negative, got %d", i, debt.Name, debt.TermMonths)
		}
		if debt.PropertyValue.IsNegative() {
			return fmt.Errorf("debts[%d] %q: property value must not be negative, got %s", i, debt.Name, debt.PropertyValue)
		}
	}

	for i, asset := range p.Assets {
		if asset.Balance.IsNegative() {
			return fmt.Errorf("assets[%d] %q: balance must not be negative, got %s", i, asset.Name, asset.Balance)
		}
		if asset.MonthlyContribution.IsNegative() {
			return fmt.Errorf("assets[%d] %q: monthly contribution must not be negative, got %s", i, asset.Name, asset.MonthlyContribution)
		}
		if asset.EmployerMatchRate.IsNegative() {
			return fmt.Errorf("assets[%d] %q: employer match rate must not be negative, got %s", i, asset.Name, asset.EmployerMatchRate)
		}
		if asset.MatchLimit.IsNegative() {
			return fmt.Errorf("assets[%d] %q: match limit must not be negative, got %s", i, asset.Name, asset.MatchLimit)
		}
	}

	for i, obligation := range p.Obligations {
		if obligation.MonthlyAmount.IsNegative() {
			return fmt.Errorf("obligations[%d] %q: monthly amount must not be negative, got %s", i, obligation.Name, obligation.MonthlyAmount)
		}
	}

	for i, goal := range p.Goals {
		if goal.TargetAmount.IsNegative() {
			return fmt.Errorf("goals[%d] %q: target amount must not be negative, got %s", i, goal.Name, goal.TargetAmount)
		}
	}

	return nil
}
