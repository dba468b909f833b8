package usecase

import "math"

// Energy density per gram of each macro.
const (
	kcalPerGramCarb    = 4
	kcalPerGramProtein = 4
	kcalPerGramFat     = 9
)

// MacroField is one macro's dual gram/percent representation.
type MacroField struct {
	Grams   float64 `json:"g"`
	Percent float64 `json:"pct"`
}

// MacroState is the macro editor's working state: an energy goal plus the
// three macro splits.
type MacroState struct {
	EnergyKcal float64    `json:"energy"`
	Carbs      MacroField `json:"carbs"`
	Protein    MacroField `json:"protein"`
	Fat        MacroField `json:"fat"`
}

// MacroName selects which macro an edit changed.
type MacroName string

const (
	MacroCarbs   MacroName = "carbs"
	MacroProtein MacroName = "protein"
	MacroFat     MacroName = "fat"
)

// RebalanceBase names which representation the user edited.
type RebalanceBase string

const (
	BaseEnergy  RebalanceBase = "energy"
	BasePercent RebalanceBase = "pct"
	BaseGrams   RebalanceBase = "g"
)

func macroOrder() [3]MacroName { return [3]MacroName{MacroCarbs, MacroProtein, MacroFat} }

func (s *MacroState) field(name MacroName) *MacroField {
	switch name {
	case MacroCarbs:
		return &s.Carbs
	case MacroProtein:
		return &s.Protein
	default:
		return &s.Fat
	}
}

// Rebalance recomputes the dependent representation after one edit. Pure
// function: the input state is never mutated.
//
// Percent edits redistribute the remaining share across the two unchanged
// macros in proportion to their previous percentages. Rounding remainder
// assignment is deterministic: the first unchanged macro (in the fixed order
// carbs, protein, fat) gets the proportionally rounded share and the second
// absorbs whatever makes the three sum to exactly 100.
func Rebalance(state MacroState, base RebalanceBase, changed MacroName) MacroState {
	next := state
	energy := next.EnergyKcal
	if energy <= 0 {
		return next
	}

	switch base {
	case BasePercent:
		order := macroOrder()
		var others []MacroName
		for _, name := range order {
			if name != changed {
				others = append(others, name)
			}
		}

		changedPct := next.field(changed).Percent
		remaining := 100 - changedPct

		prevTotal := state.field(others[0]).Percent + state.field(others[1]).Percent
		if prevTotal > 0 {
			next.field(others[0]).Percent = math.Round(state.field(others[0]).Percent / prevTotal * remaining)
		} else {
			next.field(others[0]).Percent = math.Floor(remaining / 2)
		}
		next.field(others[1]).Percent = 100 - changedPct - next.field(others[0]).Percent

		fallthrough
	case BaseEnergy:
		next.Carbs.Grams = math.Round(energy * next.Carbs.Percent / 100 / kcalPerGramCarb)
		next.Protein.Grams = math.Round(energy * next.Protein.Percent / 100 / kcalPerGramProtein)
		next.Fat.Grams = math.Round(energy * next.Fat.Percent / 100 / kcalPerGramFat)
	case BaseGrams:
		next.Carbs.Percent = math.Round(next.Carbs.Grams * kcalPerGramCarb / energy * 100)
		next.Protein.Percent = math.Round(next.Protein.Grams * kcalPerGramProtein / energy * 100)
		next.Fat.Percent = math.Round(next.Fat.Grams * kcalPerGramFat / energy * 100)
	}

	return next
}
