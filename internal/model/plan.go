package model

// PlanKind categorizes the daily budget target.
type PlanKind string

const (
	PlanReduce   PlanKind = "reduce"
	PlanMaintain PlanKind = "maintain"
	PlanGain     PlanKind = "gain"
	PlanCustom   PlanKind = "custom"
)

// RecommendedCoins returns the default daily budget for a non-custom kind.
// PlanCustom has no recommendation and returns 0.
func (k PlanKind) RecommendedCoins() int {
	switch k {
	case PlanReduce:
		return 80
	case PlanMaintain:
		return 100
	case PlanGain:
		return 130
	default:
		return 0
	}
}

// Valid reports whether k is one of the four known kinds.
func (k PlanKind) Valid() bool {
	switch k {
	case PlanReduce, PlanMaintain, PlanGain, PlanCustom:
		return true
	}
	return false
}

// Plan is the daily coin budget configuration.
type Plan struct {
	Kind       PlanKind
	DailyCoins int
}

// NewPlan builds a plan for the given kind. For non-custom kinds the
// recommended budget applies; customCoins is only consulted for PlanCustom.
// The engine itself never rejects a zero or negative budget.
func NewPlan(kind PlanKind, customCoins int) Plan {
	if kind == PlanCustom {
		return Plan{Kind: PlanCustom, DailyCoins: customCoins}
	}
	return Plan{Kind: kind, DailyCoins: kind.RecommendedCoins()}
}

// DefaultPlan is the out-of-the-box configuration.
func DefaultPlan() Plan {
	return NewPlan(PlanMaintain, 0)
}
