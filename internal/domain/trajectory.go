package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// DebtState is one debt's position at the end of a simulated year.
type DebtState struct {
	DebtID        string          `json:"debt_id"`
	Name          string          `json:"name"`
	Balance       decimal.Decimal `json:"balance"`
	InterestPaid  decimal.Decimal `json:"interest_paid"`
	PrincipalPaid decimal.Decimal `json:"principal_paid"`
	IsPaidOff     bool            `json:"is_paid_off"`
	// PayoffMonth is 1-12 within the payoff year, 0 otherwise.
	PayoffMonth int `json:"payoff_month,omitempty"`
}

// AssetState is one asset's position at the end of a simulated year.
type AssetState struct {
	AssetID       string          `json:"asset_id"`
	Name          string          `json:"name"`
	Balance       decimal.Decimal `json:"balance"`
	Contributions decimal.Decimal `json:"contributions"`
	Growth        decimal.Decimal `json:"growth"`
	EmployerMatch decimal.Decimal `json:"employer_match"`
}

// TrajectoryYear is the complete snapshot of one simulated year.
type TrajectoryYear struct {
	Year int `json:"year"`
	Age  int `json:"age"`

	GrossIncome   decimal.Decimal `json:"gross_income"`
	NetIncome     decimal.Decimal `json:"net_income"`
	FederalTax    decimal.Decimal `json:"federal_tax"`
	StateTax      decimal.Decimal `json:"state_tax"`
	FICATax       decimal.Decimal `json:"fica_tax"`
	EffectiveRate decimal.Decimal `json:"effective_rate"`

	Debts  []DebtState  `json:"debts"`
	Assets []AssetState `json:"assets"`

	TotalDebt   decimal.Decimal `json:"total_debt"`
	TotalAssets decimal.Decimal `json:"total_assets"`
	NetWorth    decimal.Decimal `json:"net_worth"`

	Obligations         decimal.Decimal `json:"obligations"`
	DebtPayments        decimal.Decimal `json:"debt_payments"`
	Contributions       decimal.Decimal `json:"contributions"`
	DiscretionaryIncome decimal.Decimal `json:"discretionary_income"`
	SavingsRate         decimal.Decimal `json:"savings_rate"`

	WorkHours decimal.Decimal `json:"work_hours"`

	// Mortgage rollups; zero-valued when the profile has no mortgage.
	HomeEquity decimal.Decimal `json:"home_equity"`
	LTV        decimal.Decimal `json:"ltv"`
	PayingPMI  bool            `json:"paying_pmi"`

	RetirementReady bool `json:"retirement_ready"`
}

// MilestoneKind classifies a detected event.
type MilestoneKind string

const (
	MilestoneDebtPayoff      MilestoneKind = "debt_payoff"
	MilestoneGoalAchieved    MilestoneKind = "goal_achieved"
	MilestoneGoalMissed      MilestoneKind = "goal_missed"
	MilestoneRetirementReady MilestoneKind = "retirement_ready"
	MilestonePMIRemoved      MilestoneKind = "pmi_removed"
	MilestoneNetWorth        MilestoneKind = "net_worth_milestone"
)

// Milestone is a point-in-time event detected during projection.
type Milestone struct {
	Kind        MilestoneKind `json:"kind"`
	Year        int           `json:"year"`
	Month       int           `json:"month,omitempty"`
	Description string        `json:"description"`
	EntityID    string        `json:"entity_id,omitempty"`
}

// TrajectorySummary aggregates statistics over a whole run.
type TrajectorySummary struct {
	TotalYears int `json:"total_years"`

	// RetirementYear/RetirementAge are nil when readiness is never reached.
	RetirementYear *int `json:"retirement_year,omitempty"`
	RetirementAge  *int `json:"retirement_age,omitempty"`

	LifetimeIncome   decimal.Decimal `json:"lifetime_income"`
	LifetimeTaxes    decimal.Decimal `json:"lifetime_taxes"`
	LifetimeInterest decimal.Decimal `json:"lifetime_interest"`

	NetWorthAtRetirement decimal.Decimal `json:"net_worth_at_retirement"`
	NetWorthAtEnd        decimal.Decimal `json:"net_worth_at_end"`

	TotalWorkHours     decimal.Decimal `json:"total_work_hours"`
	AvgEffectiveHourly decimal.Decimal `json:"avg_effective_hourly"`

	GoalsAchieved int `json:"goals_achieved"`
	GoalsMissed   int `json:"goals_missed"`
}

// Trajectory is the full projection output for one profile.
type Trajectory struct {
	ID          string            `json:"id"`
	ProfileID   string            `json:"profile_id"`
	GeneratedAt time.Time         `json:"generated_at"`
	Years       []TrajectoryYear  `json:"years"`
	Milestones  []Milestone       `json:"milestones"`
	Summary     TrajectorySummary `json:"summary"`
}

// YearByIndex returns the snapshot for a 0-based year index.
func (t *Trajectory) YearByIndex(i int) (TrajectoryYear, bool) {
	if i < 0 || i >= len(t.Years) {
		return TrajectoryYear{}, false
	}
	return t.Years[i], true
}
