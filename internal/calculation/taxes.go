package calculation

import (
	"github.com/kase1111-hash/Financial-Path-Visualizer/internal/domain"
	"github.com/kase1111-hash/Financial-Path-Visualizer/pkg/moneyutil"
	"github.com/shopspring/decimal"
)

// TAX MODEL ASSUMPTIONS:
//
// 1. Federal brackets and standard deductions are tabulated for 2024 and
//    2025; requests for other years resolve to the nearest tabulated year
//    (latest at or before the request, else the latest available).
//
// 2. State tax is approximated: flat states use their statutory rate,
//    progressive states apply their top marginal rate to the whole taxable
//    base. States without an income tax return exactly zero.
//
// 3. Marginal rate at zero taxable income is zero, not the first bracket's
//    rate.
//
// 4. EstimateFutureTax deflates income to present-year terms, taxes it at
//    current brackets, and reflates the result. This stands in for bracket
//    indexing in years beyond the table.

// FederalTaxResult carries the outcome of a federal tax calculation.
type FederalTaxResult struct {
	Tax           decimal.Decimal `json:"tax"`
	TaxableIncome decimal.Decimal `json:"taxable_income"`
	MarginalRate  decimal.Decimal `json:"marginal_rate"`
	EffectiveRate decimal.Decimal `json:"effective_rate"`
}

// FICAResult carries Social Security and Medicare components.
type FICAResult struct {
	SocialSecurity decimal.Decimal `json:"social_security"`
	Medicare       decimal.Decimal `json:"medicare"`
	Total          decimal.Decimal `json:"total"`
}

// TaxResult is the combined federal, state, and FICA liability for a year.
type TaxResult struct {
	Federal       decimal.Decimal `json:"federal"`
	State         decimal.Decimal `json:"state"`
	FICA          FICAResult      `json:"fica"`
	Total         decimal.Decimal `json:"total"`
	NetIncome     decimal.Decimal `json:"net_income"`
	EffectiveRate decimal.Decimal `json:"effective_rate"`
	MarginalRate  decimal.Decimal `json:"marginal_rate"`
}

// TaxCalculator performs all tax math against an injected TaxTables.
type TaxCalculator struct {
	Tables *TaxTables
	Logger Logger
}

// NewTaxCalculator creates a calculator over the built-in tables.
func NewTaxCalculator() *TaxCalculator {
	return NewTaxCalculatorWithTables(DefaultTaxTables())
}

// NewTaxCalculatorWithTables creates a calculator over custom tables.
func NewTaxCalculatorWithTables(tables *TaxTables) *TaxCalculator {
	return &TaxCalculator{Tables: tables, Logger: NopLogger{}}
}

// FederalTax computes federal income tax on gross income less the pre-tax
// retirement contribution and the standard deduction for the filing status.
func (tc *TaxCalculator) FederalTax(income decimal.Decimal, status domain.FilingStatus, contribution decimal.Decimal, year int) FederalTaxResult {
	table := tc.Tables.YearFor(year)
	if table.Year != year {
		tc.Logger.Debugf("tax year %d not tabulated, using %d brackets", year, table.Year)
	}

	taxable := income.Sub(contribution).Sub(table.StandardDeduction[status])
	if taxable.LessThan(decimal.Zero) {
		taxable = decimal.Zero
	}

	var tax decimal.Decimal
	marginal := decimal.Zero
	for _, bracket := range table.Brackets[status] {
		if taxable.LessThanOrEqual(bracket.Min) {
			break
		}
		incomeInBracket := decimal.Min(taxable, bracket.Max).Sub(bracket.Min)
		if incomeInBracket.GreaterThan(decimal.Zero) {
			tax = tax.Add(incomeInBracket.Mul(bracket.Rate))
			marginal = bracket.Rate
		}
	}

	return FederalTaxResult{
		Tax:           moneyutil.RoundCents(tax),
		TaxableIncome: taxable,
		MarginalRate:  marginal,
		EffectiveRate: moneyutil.Ratio(tax, income),
	}
}

// StateTax computes state income tax on the taxable base (gross less pre-tax
// contribution). No-income-tax states return exactly zero.
func (tc *TaxCalculator) StateTax(income decimal.Decimal, stateCode string, contribution decimal.Decimal) decimal.Decimal {
	rule := tc.Tables.StateFor(stateCode)
	if rule.Kind == StateNone {
		return decimal.Zero
	}

	taxable := income.Sub(contribution)
	if taxable.LessThanOrEqual(decimal.Zero) {
		return decimal.Zero
	}
	return moneyutil.RoundCents(taxable.Mul(rule.Rate))
}

var (
	ssRate             = decimal.NewFromFloat(0.062)
	medicareRate       = decimal.NewFromFloat(0.0145)
	additionalMedicare = decimal.NewFromFloat(0.009)
)

// FICA computes Social Security (capped at the year's wage base) and Medicare
// (uncapped, plus the 0.9% surcharge above the status threshold).
func (tc *TaxCalculator) FICA(income decimal.Decimal, status domain.FilingStatus, year int) FICAResult {
	table := tc.Tables.YearFor(year)

	ss := decimal.Min(income, table.SSWageBase).Mul(ssRate)
	medicare := income.Mul(medicareRate)

	threshold := table.MedicareThresholds[status]
	if income.GreaterThan(threshold) {
		medicare = medicare.Add(income.Sub(threshold).Mul(additionalMedicare))
	}

	ss = moneyutil.RoundCents(ss)
	medicare = moneyutil.RoundCents(medicare)
	return FICAResult{
		SocialSecurity: ss,
		Medicare:       medicare,
		Total:          ss.Add(medicare),
	}
}

// TotalTax combines federal, state, and FICA. EffectiveRate is zero for zero
// gross income.
func (tc *TaxCalculator) TotalTax(income decimal.Decimal, status domain.FilingStatus, stateCode string, contribution decimal.Decimal, year int) TaxResult {
	federal := tc.FederalTax(income, status, contribution, year)
	state := tc.StateTax(income, stateCode, contribution)
	fica := tc.FICA(income, status, year)

	total := federal.Tax.Add(state).Add(fica.Total)
	return TaxResult{
		Federal:       federal.Tax,
		State:         state,
		FICA:          fica,
		Total:         total,
		NetIncome:     income.Sub(total),
		EffectiveRate: moneyutil.Ratio(total, income),
		MarginalRate:  federal.MarginalRate,
	}
}

// RetirementTaxSavings is the tax avoided by making a pre-tax retirement
// contribution: liability without it minus liability with it. A zero
// contribution saves exactly zero.
func (tc *TaxCalculator) RetirementTaxSavings(income, contribution decimal.Decimal, status domain.FilingStatus, stateCode string, year int) decimal.Decimal {
	if contribution.IsZero() {
		return decimal.Zero
	}
	without := tc.TotalTax(income, status, stateCode, decimal.Zero, year)
	with := tc.TotalTax(income, status, stateCode, contribution, year)
	return without.Total.Sub(with.Total)
}

// EstimateFutureTax approximates the tax on an income earned yearsOut years
// from now: the income is deflated to present terms, taxed at the current
// year's brackets, and the tax reflated.
func (tc *TaxCalculator) EstimateFutureTax(income decimal.Decimal, yearsOut int, assumptions domain.Assumptions) decimal.Decimal {
	if yearsOut <= 0 {
		return tc.TotalTax(income, assumptions.TaxFilingStatus, assumptions.State, decimal.Zero, assumptions.TaxYear).Total
	}

	inflator := decimal.NewFromInt(1).Add(assumptions.InflationRate).Pow(decimal.NewFromInt(int64(yearsOut)))
	if inflator.IsZero() {
		return decimal.Zero
	}
	deflated := income.Div(inflator)
	present := tc.TotalTax(deflated, assumptions.TaxFilingStatus, assumptions.State, decimal.Zero, assumptions.TaxYear)
	return moneyutil.RoundCents(present.Total.Mul(inflator))
}
