package calculation

import (
	"fmt"

	"github.com/kase1111-hash/Financial-Path-Visualizer/internal/domain"
	"github.com/kase1111-hash/Financial-Path-Visualizer/pkg/moneyutil"
	"github.com/shopspring/decimal"
)

// DiffProfiles derives the typed change records between two profiles,
// matching entities by ID. Structural differences (entities added or removed)
// are not representable as field changes and are skipped.
func DiffProfiles(baseline, alternate *domain.Profile) []domain.Change {
	var changes []domain.Change

	byID := make(map[string]domain.Income, len(alternate.Incomes))
	for _, income := range alternate.Incomes {
		byID[income.ID] = income
	}
	for _, before := range baseline.Incomes {
		after, ok := byID[before.ID]
		if !ok {
			continue
		}
		changes = appendChange(changes, domain.ChangeIncomeAmount, before.ID, "amount", before.Amount, after.Amount,
			fmt.Sprintf("%s amount %s -> %s", before.Name, moneyutil.FormatCompact(before.Amount), moneyutil.FormatCompact(after.Amount)))
		changes = appendChange(changes, domain.ChangeIncomeGrowth, before.ID, "growth_rate", before.GrowthRate, after.GrowthRate,
			fmt.Sprintf("%s growth rate %s -> %s", before.Name, before.GrowthRate, after.GrowthRate))
	}

	debtByID := make(map[string]domain.Debt, len(alternate.Debts))
	for _, debt := range alternate.Debts {
		debtByID[debt.ID] = debt
	}
	for _, before := range baseline.Debts {
		after, ok := debtByID[before.ID]
		if !ok {
			continue
		}
		changes = appendChange(changes, domain.ChangeDebtRate, before.ID, "annual_rate", before.AnnualRate, after.AnnualRate,
			fmt.Sprintf("%s rate %s -> %s", before.Name, before.AnnualRate, after.AnnualRate))
		changes = appendChange(changes, domain.ChangeDebtPayment, before.ID, "actual_payment", before.ActualPayment, after.ActualPayment,
			fmt.Sprintf("%s payment %s -> %s", before.Name, moneyutil.FormatCompact(before.ActualPayment), moneyutil.FormatCompact(after.ActualPayment)))
	}

	assetByID := make(map[string]domain.Asset, len(alternate.Assets))
	for _, asset := range alternate.Assets {
		assetByID[asset.ID] = asset
	}
	for _, before := range baseline.Assets {
		after, ok := assetByID[before.ID]
		if !ok {
			continue
		}
		changes = appendChange(changes, domain.ChangeAssetContribution, before.ID, "monthly_contribution", before.MonthlyContribution, after.MonthlyContribution,
			fmt.Sprintf("%s contribution %s -> %s", before.Name, moneyutil.FormatCompact(before.MonthlyContribution), moneyutil.FormatCompact(after.MonthlyContribution)))
		changes = appendChange(changes, domain.ChangeAssetReturn, before.ID, "annual_return", before.AnnualReturn, after.AnnualReturn,
			fmt.Sprintf("%s return %s -> %s", before.Name, before.AnnualReturn, after.AnnualReturn))
	}

	ba, aa := baseline.Assumptions, alternate.Assumptions
	assumptionFields := []struct {
		field    string
		old, new decimal.Decimal
	}{
		{"inflation_rate", ba.InflationRate, aa.InflationRate},
		{"market_return", ba.MarketReturn, aa.MarketReturn},
		{"home_appreciation", ba.HomeAppreciation, aa.HomeAppreciation},
		{"salary_growth", ba.SalaryGrowth, aa.SalaryGrowth},
		{"retirement_withdrawal_rate", ba.RetirementWithdrawalRate, aa.RetirementWithdrawalRate},
		{"income_replacement_ratio", ba.IncomeReplacementRatio, aa.IncomeReplacementRatio},
	}
	for _, f := range assumptionFields {
		changes = appendChange(changes, domain.ChangeAssumption, "", f.field, f.old, f.new,
			fmt.Sprintf("assumption %s %s -> %s", f.field, f.old, f.new))
	}

	return changes
}

func appendChange(changes []domain.Change, kind domain.ChangeKind, entityID, field string, oldValue, newValue decimal.Decimal, description string) []domain.Change {
	if oldValue.Equal(newValue) {
		return changes
	}
	return append(changes, domain.Change{
		Kind:        kind,
		EntityID:    entityID,
		Field:       field,
		OldValue:    oldValue,
		NewValue:    newValue,
		Description: description,
	})
}
