package calculation

import (
	"strings"

	"github.com/kase1111-hash/Financial-Path-Visualizer/internal/domain"
	"github.com/shopspring/decimal"
)

// TaxBracket is one federal tax bracket. Brackets are contiguous: each Min
// equals the previous bracket's Max, so the piecewise sum is exact.
type TaxBracket struct {
	Min  decimal.Decimal
	Max  decimal.Decimal
	Rate decimal.Decimal
}

// bracketCeiling stands in for "no upper bound" on the top bracket.
var bracketCeiling = decimal.NewFromInt(999999999)

// YearTable holds everything year-dependent about federal taxation.
type YearTable struct {
	Year               int
	StandardDeduction  map[domain.FilingStatus]decimal.Decimal
	Brackets           map[domain.FilingStatus][]TaxBracket
	SSWageBase         decimal.Decimal
	MedicareThresholds map[domain.FilingStatus]decimal.Decimal
}

// StateKind classifies how a state levies income tax.
type StateKind string

const (
	StateNone        StateKind = "none"
	StateFlat        StateKind = "flat"
	StateProgressive StateKind = "progressive"
)

// StateRule approximates a state's income tax: flat states carry their
// statutory rate, progressive states their top marginal rate.
type StateRule struct {
	Kind StateKind
	Rate decimal.Decimal
}

// TaxTables bundles the tabulated federal years and state rules. Injectable
// so tests and callers can pin their own rates.
type TaxTables struct {
	Years  []YearTable
	States map[string]StateRule
}

// YearFor resolves the table for a tax year: the latest tabulated year at or
// before the request, else the latest available.
func (tt *TaxTables) YearFor(year int) YearTable {
	best := tt.Years[len(tt.Years)-1]
	for i := len(tt.Years) - 1; i >= 0; i-- {
		if tt.Years[i].Year <= year {
			best = tt.Years[i]
			break
		}
	}
	return best
}

// StateFor resolves a state rule by two-letter code. Unknown or empty codes
// are treated as no income tax.
func (tt *TaxTables) StateFor(code string) StateRule {
	rule, ok := tt.States[strings.ToUpper(strings.TrimSpace(code))]
	if !ok {
		return StateRule{Kind: StateNone}
	}
	return rule
}

func brackets(rows ...TaxBracket) []TaxBracket { return rows }

func row(min, max int64, rate float64) TaxBracket {
	return TaxBracket{
		Min:  decimal.NewFromInt(min),
		Max:  decimal.NewFromInt(max),
		Rate: decimal.NewFromFloat(rate),
	}
}

func top(min int64, rate float64) TaxBracket {
	return TaxBracket{
		Min:  decimal.NewFromInt(min),
		Max:  bracketCeiling,
		Rate: decimal.NewFromFloat(rate),
	}
}

func flat(rate float64) StateRule {
	return StateRule{Kind: StateFlat, Rate: decimal.NewFromFloat(rate)}
}

func progressive(topRate float64) StateRule {
	return StateRule{Kind: StateProgressive, Rate: decimal.NewFromFloat(topRate)}
}

// DefaultTaxTables returns the built-in 2024 and 2025 federal tables plus the
// state rules. Years must stay sorted ascending for YearFor.
func DefaultTaxTables() *TaxTables {
	return &TaxTables{
		Years: []YearTable{
			{
				Year: 2024,
				StandardDeduction: map[domain.FilingStatus]decimal.Decimal{
					domain.FilingSingle:          decimal.NewFromInt(14600),
					domain.FilingMarriedJoint:    decimal.NewFromInt(29200),
					domain.FilingMarriedSeparate: decimal.NewFromInt(14600),
					domain.FilingHeadOfHousehold: decimal.NewFromInt(21900),
				},
				Brackets: map[domain.FilingStatus][]TaxBracket{
					domain.FilingSingle: brackets(
						row(0, 11600, 0.10),
						row(11600, 47150, 0.12),
						row(47150, 100525, 0.22),
						row(100525, 191950, 0.24),
						row(191950, 243725, 0.32),
						row(243725, 609350, 0.35),
						top(609350, 0.37),
					),
					domain.FilingMarriedJoint: brackets(
						row(0, 23200, 0.10),
						row(23200, 94300, 0.12),
						row(94300, 201050, 0.22),
						row(201050, 383900, 0.24),
						row(383900, 487450, 0.32),
						row(487450, 731200, 0.35),
						top(731200, 0.37),
					),
					domain.FilingMarriedSeparate: brackets(
						row(0, 11600, 0.10),
						row(11600, 47150, 0.12),
						row(47150, 100525, 0.22),
						row(100525, 191950, 0.24),
						row(191950, 243725, 0.32),
						row(243725, 365600, 0.35),
						top(365600, 0.37),
					),
					domain.FilingHeadOfHousehold: brackets(
						row(0, 16550, 0.10),
						row(16550, 63100, 0.12),
						row(63100, 100500, 0.22),
						row(100500, 191950, 0.24),
						row(191950, 243700, 0.32),
						row(243700, 609350, 0.35),
						top(609350, 0.37),
					),
				},
				SSWageBase: decimal.NewFromInt(168600),
				MedicareThresholds: map[domain.FilingStatus]decimal.Decimal{
					domain.FilingSingle:          decimal.NewFromInt(200000),
					domain.FilingMarriedJoint:    decimal.NewFromInt(250000),
					domain.FilingMarriedSeparate: decimal.NewFromInt(125000),
					domain.FilingHeadOfHousehold: decimal.NewFromInt(200000),
				},
			},
			{
				Year: 2025,
				StandardDeduction: map[domain.FilingStatus]decimal.Decimal{
					domain.FilingSingle:          decimal.NewFromInt(15000),
					domain.FilingMarriedJoint:    decimal.NewFromInt(30000),
					domain.FilingMarriedSeparate: decimal.NewFromInt(15000),
					domain.FilingHeadOfHousehold: decimal.NewFromInt(22500),
				},
				Brackets: map[domain.FilingStatus][]TaxBracket{
					domain.FilingSingle: brackets(
						row(0, 11925, 0.10),
						row(11925, 48475, 0.12),
						row(48475, 103350, 0.22),
						row(103350, 197300, 0.24),
						row(197300, 250525, 0.32),
						row(250525, 626350, 0.35),
						top(626350, 0.37),
					),
					domain.FilingMarriedJoint: brackets(
						row(0, 23850, 0.10),
						row(23850, 96950, 0.12),
						row(96950, 206700, 0.22),
						row(206700, 394600, 0.24),
						row(394600, 501050, 0.32),
						row(501050, 751600, 0.35),
						top(751600, 0.37),
					),
					domain.FilingMarriedSeparate: brackets(
						row(0, 11925, 0.10),
						row(11925, 48475, 0.12),
						row(48475, 103350, 0.22),
						row(103350, 197300, 0.24),
						row(197300, 250525, 0.32),
						row(250525, 375800, 0.35),
						top(375800, 0.37),
					),
					domain.FilingHeadOfHousehold: brackets(
						row(0, 17000, 0.10),
						row(17000, 64850, 0.12),
						row(64850, 103350, 0.22),
						row(103350, 197300, 0.24),
						row(197300, 250525, 0.32),
						row(250525, 626350, 0.35),
						top(626350, 0.37),
					),
				},
				SSWageBase: decimal.NewFromInt(176100),
				MedicareThresholds: map[domain.FilingStatus]decimal.Decimal{
					domain.FilingSingle:          decimal.NewFromInt(200000),
					domain.FilingMarriedJoint:    decimal.NewFromInt(250000),
					domain.FilingMarriedSeparate: decimal.NewFromInt(125000),
					domain.FilingHeadOfHousehold: decimal.NewFromInt(200000),
				},
			},
		},
		States: map[string]StateRule{
			// No state income tax on wages.
			"AK": {Kind: StateNone},
			"FL": {Kind: StateNone},
			"NV": {Kind: StateNone},
			"NH": {Kind: StateNone},
			"SD": {Kind: StateNone},
			"TN": {Kind: StateNone},
			"TX": {Kind: StateNone},
			"WA": {Kind: StateNone},
			"WY": {Kind: StateNone},

			// Flat-rate states.
			"AZ": flat(0.025),
			"CO": flat(0.044),
			"GA": flat(0.0539),
			"ID": flat(0.05695),
			"IL": flat(0.0495),
			"IN": flat(0.0305),
			"KY": flat(0.04),
			"LA": flat(0.03),
			"MA": flat(0.05),
			"MI": flat(0.0425),
			"MS": flat(0.047),
			"NC": flat(0.045),
			"PA": flat(0.0307),
			"UT": flat(0.0465),

			// Progressive states, approximated by their top marginal rate.
			"AL": progressive(0.05),
			"AR": progressive(0.044),
			"CA": progressive(0.133),
			"CT": progressive(0.0699),
			"DC": progressive(0.1075),
			"DE": progressive(0.066),
			"HI": progressive(0.11),
			"IA": progressive(0.057),
			"KS": progressive(0.0558),
			"MD": progressive(0.0575),
			"ME": progressive(0.0715),
			"MN": progressive(0.0985),
			"MO": progressive(0.048),
			"MT": progressive(0.059),
			"ND": progressive(0.025),
			"NE": progressive(0.0584),
			"NJ": progressive(0.1075),
			"NM": progressive(0.059),
			"NY": progressive(0.109),
			"OH": progressive(0.035),
			"OK": progressive(0.0475),
			"OR": progressive(0.099),
			"RI": progressive(0.0599),
			"SC": progressive(0.064),
			"VA": progressive(0.0575),
			"VT": progressive(0.0875),
			"WI": progressive(0.0765),
			"WV": progressive(0.0512),
		},
	}
}
