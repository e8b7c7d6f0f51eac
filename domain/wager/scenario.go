package wager

// Prize amounts for a $1 "big" bet, per tier.
const (
	PayoutFirst       = 2000.0
	PayoutSecond      = 1000.0
	PayoutThird       = 400.0
	PayoutStarter     = 250.0
	PayoutConsolation = 60.0

	CostPerNumber = 1.0
)

// Scenario is the cost and return of buying every number in a candidate list
// under one assumed prize outcome.
type Scenario struct {
	Numbers      int     `json:"numbers"`
	TotalCost    float64 `json:"total_cost"`
	FirstPrizes  int     `json:"first_prizes"`
	SecondPrizes int     `json:"second_prizes"`
	ThirdPrizes  int     `json:"third_prizes"`
	Starters     int     `json:"starters"`
	Consolations int     `json:"consolations"`
	Winnings     float64 `json:"winnings"`
	Net          float64 `json:"net"`
}

// Calculate builds a scenario for a candidate list and a prize outcome.
func Calculate(numbers int, first, second, third, starters, consolations int) Scenario {
	winnings := float64(first)*PayoutFirst +
		float64(second)*PayoutSecond +
		float64(third)*PayoutThird +
		float64(starters)*PayoutStarter +
		float64(consolations)*PayoutConsolation
	cost := float64(numbers) * CostPerNumber
	return Scenario{
		Numbers:      numbers,
		TotalCost:    cost,
		FirstPrizes:  first,
		SecondPrizes: second,
		ThirdPrizes:  third,
		Starters:     starters,
		Consolations: consolations,
		Winnings:     winnings,
		Net:          winnings - cost,
	}
}

// BestCase assumes the list sweeps every tier: the three top prizes plus all
// ten starter and ten consolation slots.
func BestCase(numbers int) Scenario {
	return Calculate(numbers, 1, 1, 1, 10, 10)
}

// WorstCase assumes nothing in the list wins.
func WorstCase(numbers int) Scenario {
	return Calculate(numbers, 0, 0, 0, 0, 0)
}
