package domain

import (
	"github.com/shopspring/decimal"
)

// FilingStatus identifies a federal tax filing status.
type FilingStatus string

const (
	FilingSingle          FilingStatus = "single"
	FilingMarriedJoint    FilingStatus = "married_joint"
	FilingMarriedSeparate FilingStatus = "married_separate"
	FilingHeadOfHousehold FilingStatus = "head_of_household"
)

// ValidFilingStatus reports whether s is one of the four supported statuses.
func ValidFilingStatus(s FilingStatus) bool {
	switch s {
	case FilingSingle, FilingMarriedJoint, FilingMarriedSeparate, FilingHeadOfHousehold:
		return true
	}
	return false
}

// IncomeKind identifies how an income source is earned and evaluated.
type IncomeKind string

const (
	IncomeSalary   IncomeKind = "salary"
	IncomeHourly   IncomeKind = "hourly"
	IncomeVariable IncomeKind = "variable"
	IncomePassive  IncomeKind = "passive"
)

// DebtKind identifies the flavor of a debt; mortgages carry extra fields.
type DebtKind string

const (
	DebtMortgage   DebtKind = "mortgage"
	DebtAuto       DebtKind = "auto"
	DebtStudent    DebtKind = "student"
	DebtCreditCard DebtKind = "credit_card"
	DebtPersonal   DebtKind = "personal"
	DebtOther      DebtKind = "other"
)

// AssetKind identifies the tax treatment and growth behavior of an asset.
type AssetKind string

const (
	AssetPretaxRetirement AssetKind = "pretax_retirement"
	AssetRothRetirement   AssetKind = "roth_retirement"
	AssetSavings          AssetKind = "savings"
	AssetInvestment       AssetKind = "investment"
	AssetProperty         AssetKind = "property"
	AssetOther            AssetKind = "other"
)

// Income is a single income source. Amount is annual dollars for all kinds
// except hourly, where it is the hourly rate and WeeklyHours applies.
type Income struct {
	ID          string          `yaml:"id" json:"id"`
	Name        string          `yaml:"name" json:"name"`
	Kind        IncomeKind      `yaml:"kind" json:"kind"`
	Amount      decimal.Decimal `yaml:"amount" json:"amount"`
	WeeklyHours decimal.Decimal `yaml:"weekly_hours" json:"weekly_hours"`
	// Variability scales variable income: effective = amount * (1 - variability/2).
	Variability decimal.Decimal `yaml:"variability" json:"variability"`
	GrowthRate  decimal.Decimal `yaml:"growth_rate" json:"growth_rate"`
	// EndMonth is 1-12; 0 means the income runs through December of EndYear.
	EndMonth int `yaml:"end_month,omitempty" json:"end_month,omitempty"`
	EndYear  int `yaml:"end_year,omitempty" json:"end_year,omitempty"`
}

// HasEnd reports whether the income stops at a configured month/year.
func (inc Income) HasEnd() bool {
	return inc.EndYear > 0
}

// Debt is a single liability amortized monthly during projection.
type Debt struct {
	ID              string          `yaml:"id" json:"id"`
	Name            string          `yaml:"name" json:"name"`
	Kind            DebtKind        `yaml:"kind" json:"kind"`
	Principal       decimal.Decimal `yaml:"principal" json:"principal"`
	AnnualRate      decimal.Decimal `yaml:"annual_rate" json:"annual_rate"`
	MinimumPayment  decimal.Decimal `yaml:"minimum_payment" json:"minimum_payment"`
	ActualPayment   decimal.Decimal `yaml:"actual_payment" json:"actual_payment"`
	TermMonths      int             `yaml:"term_months" json:"term_months"`
	MonthsRemaining int             `yaml:"months_remaining" json:"months_remaining"`

	// Mortgage-only fields.
	PropertyValue decimal.Decimal `yaml:"property_value,omitempty" json:"property_value,omitempty"`
	PMIThreshold  decimal.Decimal `yaml:"pmi_threshold,omitempty" json:"pmi_threshold,omitempty"`
	PMIMonthly    decimal.Decimal `yaml:"pmi_monthly,omitempty" json:"pmi_monthly,omitempty"`
	EscrowMonthly decimal.Decimal `yaml:"escrow_monthly,omitempty" json:"escrow_monthly,omitempty"`
}

// Asset is a balance that compounds monthly with contributions.
type Asset struct {
	ID                  string          `yaml:"id" json:"id"`
	Name                string          `yaml:"name" json:"name"`
	Kind                AssetKind       `yaml:"kind" json:"kind"`
	Balance             decimal.Decimal `yaml:"balance" json:"balance"`
	MonthlyContribution decimal.Decimal `yaml:"monthly_contribution" json:"monthly_contribution"`
	AnnualReturn        decimal.Decimal `yaml:"annual_return" json:"annual_return"`
	// EmployerMatchRate is the match per contributed dollar; MatchLimit is the
	// fraction of salary up to which contributions are matched.
	EmployerMatchRate decimal.Decimal `yaml:"employer_match_rate,omitempty" json:"employer_match_rate,omitempty"`
	MatchLimit        decimal.Decimal `yaml:"match_limit,omitempty" json:"match_limit,omitempty"`
}

// IsRetirement reports whether the asset counts toward retirement readiness.
func (a Asset) IsRetirement() bool {
	return a.Kind == AssetPretaxRetirement || a.Kind == AssetRothRetirement
}

// Obligation is a recurring monthly expense outside debt payments.
type Obligation struct {
	ID                string          `yaml:"id" json:"id"`
	Name              string          `yaml:"name" json:"name"`
	MonthlyAmount     decimal.Decimal `yaml:"monthly_amount" json:"monthly_amount"`
	InflationAdjusted bool            `yaml:"inflation_adjusted" json:"inflation_adjusted"`
}

// Goal is a savings target the projection checks each year.
type Goal struct {
	ID           string          `yaml:"id" json:"id"`
	Name         string          `yaml:"name" json:"name"`
	TargetAmount decimal.Decimal `yaml:"target_amount" json:"target_amount"`
	TargetYear   int             `yaml:"target_year" json:"target_year"`
}

// Assumptions is the simulation-wide configuration. Immutable per run.
type Assumptions struct {
	InflationRate            decimal.Decimal `yaml:"inflation_rate" json:"inflation_rate"`
	MarketReturn             decimal.Decimal `yaml:"market_return" json:"market_return"`
	HomeAppreciation         decimal.Decimal `yaml:"home_appreciation" json:"home_appreciation"`
	SalaryGrowth             decimal.Decimal `yaml:"salary_growth" json:"salary_growth"`
	RetirementWithdrawalRate decimal.Decimal `yaml:"retirement_withdrawal_rate" json:"retirement_withdrawal_rate"`
	IncomeReplacementRatio   decimal.Decimal `yaml:"income_replacement_ratio" json:"income_replacement_ratio"`
	LifeExpectancy           int             `yaml:"life_expectancy" json:"life_expectancy"`
	CurrentAge               int             `yaml:"current_age" json:"current_age"`
	TaxFilingStatus          FilingStatus    `yaml:"tax_filing_status" json:"tax_filing_status"`
	State                    string          `yaml:"state" json:"state"`
	TaxYear                  int             `yaml:"tax_year" json:"tax_year"`
}

// Profile is the immutable-per-run input to the projection engine.
type Profile struct {
	ID          string       `yaml:"id" json:"id"`
	Name        string       `yaml:"name" json:"name"`
	Incomes     []Income     `yaml:"incomes" json:"incomes"`
	Debts       []Debt       `yaml:"debts" json:"debts"`
	Assets      []Asset      `yaml:"assets" json:"assets"`
	Obligations []Obligation `yaml:"obligations" json:"obligations"`
	Goals       []Goal       `yaml:"goals" json:"goals"`
	Assumptions Assumptions  `yaml:"assumptions" json:"assumptions"`
}
