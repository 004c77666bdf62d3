package domain

import (
	"github.com/shopspring/decimal"
)

// ChangeKind identifies which profile field a scenario change touched.
type ChangeKind string

const (
	ChangeIncomeAmount      ChangeKind = "income_amount"
	ChangeIncomeGrowth      ChangeKind = "income_growth"
	ChangeDebtRate          ChangeKind = "debt_rate"
	ChangeDebtPayment       ChangeKind = "debt_payment"
	ChangeAssetContribution ChangeKind = "asset_contribution"
	ChangeAssetReturn       ChangeKind = "asset_return"
	ChangeAssumption        ChangeKind = "assumption"
)

// Change records a single typed difference between two profiles.
type Change struct {
	Kind        ChangeKind      `json:"kind"`
	EntityID    string          `json:"entity_id,omitempty"`
	Field       string          `json:"field"`
	OldValue    decimal.Decimal `json:"old_value"`
	NewValue    decimal.Decimal `json:"new_value"`
	Description string          `json:"description"`
}

// YearDelta is the per-year numeric difference, alternate minus baseline.
type YearDelta struct {
	Year          int             `json:"year"`
	NetWorthDelta decimal.Decimal `json:"net_worth_delta"`
	IncomeDelta   decimal.Decimal `json:"income_delta"`
	DebtDelta     decimal.Decimal `json:"debt_delta"`
	AssetsDelta   decimal.Decimal `json:"assets_delta"`
}

// RetirementShiftKind distinguishes the asymmetric retirement outcomes: a
// months delta only exists when both trajectories reach readiness.
type RetirementShiftKind string

const (
	RetirementUnchanged        RetirementShiftKind = "unchanged"
	RetirementShifted          RetirementShiftKind = "shifted"
	RetirementEnabledByChange  RetirementShiftKind = "enabled_by_change"
	RetirementDisabledByChange RetirementShiftKind = "disabled_by_change"
)

// RetirementShift is the tri-state retirement-date comparison result.
type RetirementShift struct {
	Kind RetirementShiftKind `json:"kind"`
	// MonthsEarlier is positive when the alternate retires sooner; only
	// meaningful when Kind is RetirementShifted.
	MonthsEarlier int `json:"months_earlier,omitempty"`
}

// ComparisonSummary quantifies the dominant effects of a decision.
type ComparisonSummary struct {
	Retirement                RetirementShift `json:"retirement"`
	LifetimeInterestDelta     decimal.Decimal `json:"lifetime_interest_delta"`
	NetWorthAtRetirementDelta decimal.Decimal `json:"net_worth_at_retirement_delta"`
	NetWorthAtEndDelta        decimal.Decimal `json:"net_worth_at_end_delta"`
	WorkHoursDelta            decimal.Decimal `json:"work_hours_delta"`
	KeyInsight                string          `json:"key_insight"`
}

// Comparison is the full diff of two trajectories.
type Comparison struct {
	Name       string            `json:"name"`
	Baseline   *Trajectory       `json:"baseline"`
	Alternate  *Trajectory       `json:"alternate"`
	Changes    []Change          `json:"changes"`
	YearDeltas []YearDelta       `json:"year_deltas"`
	Summary    ComparisonSummary `json:"summary"`
}
