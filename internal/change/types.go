package change

// Result represents the outcome of a greedy reduction.
// Coins maps a denomination to the number of coins of that value; summing
// denomination*count over Coins reconstructs Amount exactly.
type Result struct {
	Amount     int
	Coins      map[int]int
	TotalCoins int
}

// Calculator describes the behaviour required from a change calculator.
type Calculator interface {
	Calculate(amount int) Result
}
