package calculation

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/kase1111-hash/Financial-Path-Visualizer/internal/domain"
	"github.com/kase1111-hash/Financial-Path-Visualizer/pkg/moneyutil"
	"github.com/shopspring/decimal"
)

// DefaultQuickYears caps the quick-preview projection.
const DefaultQuickYears = 10

// DefaultNetWorthThresholds is the milestone ladder: strictly increasing,
// duplicate-free.
func DefaultNetWorthThresholds() []decimal.Decimal {
	return []decimal.Decimal{
		decimal.NewFromInt(100_000),
		decimal.NewFromInt(250_000),
		decimal.NewFromInt(500_000),
		decimal.NewFromInt(1_000_000),
		decimal.NewFromInt(2_500_000),
		decimal.NewFromInt(5_000_000),
		decimal.NewFromInt(10_000_000),
	}
}

// Engine orchestrates the year-by-year projection. It is a pure function of
// the profile: the same input always yields the same yearly snapshots.
type Engine struct {
	TaxCalc            *TaxCalculator
	NetWorthThresholds []decimal.Decimal
	Logger             Logger
}

// NewEngine creates an engine over the built-in tax tables and the default
// net-worth milestone ladder.
func NewEngine() *Engine {
	return &Engine{
		TaxCalc:            NewTaxCalculator(),
		NetWorthThresholds: DefaultNetWorthThresholds(),
		Logger:             NopLogger{},
	}
}

// NewEngineWithTables creates an engine over custom tax tables.
func NewEngineWithTables(tables *TaxTables) *Engine {
	e := NewEngine()
	e.TaxCalc = NewTaxCalculatorWithTables(tables)
	return e
}

// SetLogger sets the engine logger; nil restores the no-op logger.
func (e *Engine) SetLogger(l Logger) {
	if l == nil {
		l = NopLogger{}
	}
	e.Logger = l
	e.TaxCalc.Logger = l
}

// SetNetWorthThresholds replaces the milestone ladder. Thresholds must be
// positive, strictly increasing, and duplicate-free.
func (e *Engine) SetNetWorthThresholds(thresholds []decimal.Decimal) error {
	for i, t := range thresholds {
		if !t.IsPositive() {
			return fmt.Errorf("net worth threshold %d must be positive, got %s", i, t)
		}
		if i > 0 && !t.GreaterThan(thresholds[i-1]) {
			return fmt.Errorf("net worth thresholds must be strictly increasing, got %s after %s", t, thresholds[i-1])
		}
	}
	e.NetWorthThresholds = thresholds
	return nil
}

// GenerateTrajectory projects the profile from the current age through life
// expectancy. It fails only on malformed input.
func (e *Engine) GenerateTrajectory(profile *domain.Profile) (*domain.Trajectory, error) {
	if err := ValidateProfile(profile); err != nil {
		return nil, err
	}
	return e.project(profile, profile.Assumptions.LifeExpectancy-profile.Assumptions.CurrentAge)
}

// GenerateQuickTrajectory runs the same state machine truncated to the given
// year count (DefaultQuickYears when years <= 0) for fast previews.
func (e *Engine) GenerateQuickTrajectory(profile *domain.Profile, years int) (*domain.Trajectory, error) {
	if err := ValidateProfile(profile); err != nil {
		return nil, err
	}
	if years <= 0 {
		years = DefaultQuickYears
	}
	horizon := profile.Assumptions.LifeExpectancy - profile.Assumptions.CurrentAge
	if years > horizon {
		years = horizon
	}
	return e.project(profile, years)
}

// milestoneTracker carries the single-fire bookkeeping across years.
type milestoneTracker struct {
	thresholdsFired map[string]bool
	retirementFired bool
	goalsSettled    map[string]bool
}

func (e *Engine) project(profile *domain.Profile, totalYears int) (*domain.Trajectory, error) {
	a := profile.Assumptions
	startYear := a.TaxYear
	if startYear == 0 {
		startYear = e.TaxCalc.Tables.YearFor(1 << 30).Year
	}

	one := decimal.NewFromInt(1)

	// Running per-entity state, re-derived each year; entities themselves are
	// never mutated.
	debtBalances := make([]decimal.Decimal, len(profile.Debts))
	for i, d := range profile.Debts {
		debtBalances[i] = d.Principal
	}
	assetBalances := make([]decimal.Decimal, len(profile.Assets))
	for i, as := range profile.Assets {
		assetBalances[i] = as.Balance
	}

	initialNetWorth := sum(assetBalances).Sub(sum(debtBalances))
	tracker := milestoneTracker{
		thresholdsFired: make(map[string]bool, len(e.NetWorthThresholds)),
		goalsSettled:    make(map[string]bool, len(profile.Goals)),
	}
	// Thresholds already met at the starting position never fire; milestones
	// record crossings during the projection, not prior history.
	for _, t := range e.NetWorthThresholds {
		if initialNetWorth.GreaterThan(t) {
			tracker.thresholdsFired[t.String()] = true
		}
	}

	prevPayingPMI := e.initialPMI(profile)

	years := make([]domain.TrajectoryYear, 0, totalYears)
	var milestones []domain.Milestone
	summary := domain.TrajectorySummary{TotalYears: totalYears}
	var lifetimeNet decimal.Decimal

	for yearIdx := 0; yearIdx < totalYears; yearIdx++ {
		calendarYear := startYear + yearIdx
		snapshot := domain.TrajectoryYear{
			Year: calendarYear,
			Age:  a.CurrentAge + yearIdx,
		}

		// Phase 1: income.
		var gross, workHours decimal.Decimal
		for _, income := range profile.Incomes {
			gross = gross.Add(IncomeForYear(income, yearIdx, startYear, a.SalaryGrowth))
			workHours = workHours.Add(WorkHoursForYear(income, yearIdx, startYear))
		}
		snapshot.GrossIncome = gross
		snapshot.WorkHours = workHours

		// Phase 2: taxes, with pre-tax retirement contributions deducted.
		// Brackets are held at the profile's tax year; the table fallback
		// covers calendar years beyond it.
		var pretaxContrib decimal.Decimal
		for _, asset := range profile.Assets {
			if asset.Kind == domain.AssetPretaxRetirement {
				pretaxContrib = pretaxContrib.Add(asset.MonthlyContribution.Mul(twelve))
			}
		}
		tax := e.TaxCalc.TotalTax(gross, a.TaxFilingStatus, a.State, pretaxContrib, calendarYear)
		snapshot.FederalTax = tax.Federal
		snapshot.StateTax = tax.State
		snapshot.FICATax = tax.FICA.Total
		snapshot.NetIncome = tax.NetIncome
		snapshot.EffectiveRate = tax.EffectiveRate

		// Phase 3: debts, folding last year's ending balance forward.
		var totalDebt, interestPaid, debtPayments decimal.Decimal
		snapshot.Debts = make([]domain.DebtState, len(profile.Debts))
		for i, debt := range profile.Debts {
			prevBalance := debtBalances[i]
			result, err := DebtYear(debt, prevBalance)
			if err != nil {
				return nil, err
			}
			debtBalances[i] = result.EndBalance

			state := domain.DebtState{
				DebtID:        debt.ID,
				Name:          debt.Name,
				Balance:       result.EndBalance,
				InterestPaid:  result.InterestPaid,
				PrincipalPaid: result.PrincipalPaid,
				IsPaidOff:     result.IsPaidOff,
				PayoffMonth:   result.PayoffMonth,
			}
			snapshot.Debts[i] = state

			totalDebt = totalDebt.Add(result.EndBalance)
			interestPaid = interestPaid.Add(result.InterestPaid)
			debtPayments = debtPayments.Add(result.InterestPaid).Add(result.PrincipalPaid)

			if result.IsPaidOff && prevBalance.GreaterThan(decimal.Zero) {
				milestones = append(milestones, domain.Milestone{
					Kind:        domain.MilestoneDebtPayoff,
					Year:        calendarYear,
					Month:       result.PayoffMonth,
					Description: fmt.Sprintf("%s paid off", debt.Name),
					EntityID:    debt.ID,
				})
			}
		}

		// Phase 4: assets, with employer match keyed off this year's salary.
		var totalAssets, ownContributions decimal.Decimal
		snapshot.Assets = make([]domain.AssetState, len(profile.Assets))
		for i, asset := range profile.Assets {
			annualReturn := e.assetReturn(asset, a)
			grown := YearlyGrowth(assetBalances[i], asset.MonthlyContribution, annualReturn)

			match := decimal.Zero
			if asset.IsRetirement() {
				match = EmployerMatch(asset.MonthlyContribution, gross, asset.EmployerMatchRate, asset.MatchLimit)
			}
			// The match lands at year end and starts compounding next year.
			balance := grown.EndBalance.Add(match)
			assetBalances[i] = balance

			snapshot.Assets[i] = domain.AssetState{
				AssetID:       asset.ID,
				Name:          asset.Name,
				Balance:       balance,
				Contributions: grown.Contributions,
				Growth:        grown.Growth,
				EmployerMatch: match,
			}
			totalAssets = totalAssets.Add(balance)
			ownContributions = ownContributions.Add(grown.Contributions)
		}

		// Phase 5: aggregates and cash flow.
		snapshot.TotalDebt = totalDebt
		snapshot.TotalAssets = totalAssets
		snapshot.NetWorth = totalAssets.Sub(totalDebt)

		var obligations decimal.Decimal
		for _, obligation := range profile.Obligations {
			annual := obligation.MonthlyAmount.Mul(twelve)
			if obligation.InflationAdjusted && yearIdx > 0 {
				annual = annual.Mul(one.Add(a.InflationRate).Pow(decimal.NewFromInt(int64(yearIdx))))
			}
			obligations = obligations.Add(moneyutil.RoundCents(annual))
		}
		debtPayments = debtPayments.Add(e.mortgageCarryingCosts(profile, snapshot.Debts))

		snapshot.Obligations = obligations
		snapshot.DebtPayments = debtPayments
		snapshot.Contributions = ownContributions
		snapshot.DiscretionaryIncome = snapshot.NetIncome.Sub(obligations).Sub(debtPayments).Sub(ownContributions)
		snapshot.SavingsRate = moneyutil.Ratio(ownContributions, gross)

		e.applyMortgageRollups(profile, &snapshot, yearIdx)

		// Retirement readiness against this year's income replacement target.
		desired := gross.Mul(a.IncomeReplacementRatio)
		readiness := RetirementReadiness(e.retirementAssets(profile, snapshot.Assets), desired, a.RetirementWithdrawalRate)
		snapshot.RetirementReady = readiness.IsReady && readiness.RequiredNestEgg.GreaterThan(decimal.Zero)

		// Phase 6: milestones from year-over-year transitions.
		milestones = append(milestones, e.detectMilestones(profile, &snapshot, &tracker, prevPayingPMI)...)
		prevPayingPMI = snapshot.PayingPMI

		if snapshot.RetirementReady && summary.RetirementYear == nil {
			year := calendarYear
			age := snapshot.Age
			summary.RetirementYear = &year
			summary.RetirementAge = &age
			summary.NetWorthAtRetirement = snapshot.NetWorth
		}

		summary.LifetimeIncome = summary.LifetimeIncome.Add(gross)
		summary.LifetimeTaxes = summary.LifetimeTaxes.Add(tax.Total)
		summary.LifetimeInterest = summary.LifetimeInterest.Add(interestPaid)
		summary.TotalWorkHours = summary.TotalWorkHours.Add(workHours)
		lifetimeNet = lifetimeNet.Add(snapshot.NetIncome)

		years = append(years, snapshot)
	}

	if len(years) > 0 {
		summary.NetWorthAtEnd = years[len(years)-1].NetWorth
	}
	summary.AvgEffectiveHourly = moneyutil.RoundCents(moneyutil.Ratio(lifetimeNet, summary.TotalWorkHours))
	for _, m := range milestones {
		switch m.Kind {
		case domain.MilestoneGoalAchieved:
			summary.GoalsAchieved++
		case domain.MilestoneGoalMissed:
			summary.GoalsMissed++
		}
	}

	return &domain.Trajectory{
		ID:          uuid.NewString(),
		ProfileID:   profile.ID,
		GeneratedAt: time.Now().UTC(),
		Years:       years,
		Milestones:  milestones,
		Summary:     summary,
	}, nil
}

// assetReturn resolves an asset's growth rate, falling back to the profile
// assumptions when the asset leaves it unset.
func (e *Engine) assetReturn(asset domain.Asset, a domain.Assumptions) decimal.Decimal {
	if !asset.AnnualReturn.IsZero() {
		return asset.AnnualReturn
	}
	switch asset.Kind {
	case domain.AssetProperty:
		return a.HomeAppreciation
	case domain.AssetPretaxRetirement, domain.AssetRothRetirement, domain.AssetInvestment:
		return a.MarketReturn
	}
	return decimal.Zero
}

// retirementAssets sums the balances counting toward readiness.
func (e *Engine) retirementAssets(profile *domain.Profile, states []domain.AssetState) decimal.Decimal {
	var total decimal.Decimal
	for i, asset := range profile.Assets {
		if asset.IsRetirement() {
			total = total.Add(states[i].Balance)
		}
	}
	return total
}

// initialPMI reports whether any mortgage starts out paying PMI.
func (e *Engine) initialPMI(profile *domain.Profile) bool {
	for _, debt := range profile.Debts {
		if debt.Kind == domain.DebtMortgage && ShouldPayPMI(debt.Principal, debt.PropertyValue, debt.PMIThreshold) {
			return true
		}
	}
	return false
}

// mortgageCarryingCosts adds PMI and escrow to the year's debt payments for
// mortgages still carrying a balance.
func (e *Engine) mortgageCarryingCosts(profile *domain.Profile, states []domain.DebtState) decimal.Decimal {
	var total decimal.Decimal
	for i, debt := range profile.Debts {
		if debt.Kind != domain.DebtMortgage || states[i].IsPaidOff {
			continue
		}
		total = total.Add(debt.EscrowMonthly.Mul(twelve))
		if ShouldPayPMI(states[i].Balance, debt.PropertyValue, debt.PMIThreshold) {
			total = total.Add(debt.PMIMonthly.Mul(twelve))
		}
	}
	return total
}

// applyMortgageRollups fills home equity, LTV, and the PMI flag. Property
// values appreciate at the home-appreciation assumption.
func (e *Engine) applyMortgageRollups(profile *domain.Profile, snapshot *domain.TrajectoryYear, yearIdx int) {
	factor := decimal.NewFromInt(1).Add(profile.Assumptions.HomeAppreciation).
		Pow(decimal.NewFromInt(int64(yearIdx + 1)))

	var totalValue, totalBalance decimal.Decimal
	paying := false
	for i, debt := range profile.Debts {
		if debt.Kind != domain.DebtMortgage || debt.PropertyValue.IsZero() {
			continue
		}
		value := moneyutil.RoundCents(debt.PropertyValue.Mul(factor))
		balance := snapshot.Debts[i].Balance
		totalValue = totalValue.Add(value)
		totalBalance = totalBalance.Add(balance)
		if ShouldPayPMI(balance, value, debt.PMIThreshold) {
			paying = true
		}
	}

	snapshot.HomeEquity = totalValue.Sub(totalBalance)
	snapshot.LTV = moneyutil.Ratio(totalBalance, totalValue)
	snapshot.PayingPMI = paying
}

// detectMilestones compares this year's aggregate state to the tracker and
// emits newly crossed events. Each event fires at most once per trajectory.
func (e *Engine) detectMilestones(profile *domain.Profile, snapshot *domain.TrajectoryYear, tracker *milestoneTracker, prevPayingPMI bool) []domain.Milestone {
	var fired []domain.Milestone

	if snapshot.NetWorth.IsPositive() {
		for _, threshold := range e.NetWorthThresholds {
			key := threshold.String()
			if tracker.thresholdsFired[key] || !snapshot.NetWorth.GreaterThan(threshold) {
				continue
			}
			tracker.thresholdsFired[key] = true
			fired = append(fired, domain.Milestone{
				Kind:        domain.MilestoneNetWorth,
				Year:        snapshot.Year,
				Description: fmt.Sprintf("Net worth passed %s", moneyutil.FormatCompact(threshold)),
			})
		}
	}

	if snapshot.RetirementReady && !tracker.retirementFired {
		tracker.retirementFired = true
		fired = append(fired, domain.Milestone{
			Kind:        domain.MilestoneRetirementReady,
			Year:        snapshot.Year,
			Description: "Retirement savings can sustain the income replacement target",
		})
	}

	if prevPayingPMI && !snapshot.PayingPMI {
		fired = append(fired, domain.Milestone{
			Kind:        domain.MilestonePMIRemoved,
			Year:        snapshot.Year,
			Description: "Loan-to-value dropped below the PMI threshold",
		})
	}

	for _, goal := range profile.Goals {
		if tracker.goalsSettled[goal.ID] {
			continue
		}
		achieved := snapshot.TotalAssets.GreaterThanOrEqual(goal.TargetAmount)
		onTime := goal.TargetYear == 0 || snapshot.Year <= goal.TargetYear
		switch {
		case achieved && onTime:
			tracker.goalsSettled[goal.ID] = true
			fired = append(fired, domain.Milestone{
				Kind:        domain.MilestoneGoalAchieved,
				Year:        snapshot.Year,
				Description: fmt.Sprintf("Goal %q reached (%s)", goal.Name, moneyutil.FormatCompact(goal.TargetAmount)),
				EntityID:    goal.ID,
			})
		case !achieved && goal.TargetYear > 0 && snapshot.Year >= goal.TargetYear:
			tracker.goalsSettled[goal.ID] = true
			fired = append(fired, domain.Milestone{
				Kind:        domain.MilestoneGoalMissed,
				Year:        snapshot.Year,
				Description: fmt.Sprintf("Goal %q missed its %d target", goal.Name, goal.TargetYear),
				EntityID:    goal.ID,
			})
		}
	}

	return fired
}

func sum(values []decimal.Decimal) decimal.Decimal {
	var total decimal.Decimal
	for _, v := range values {
		total = total.Add(v)
	}
	return total
}
