package change

var defaultDenominations = []int{25, 10, 5, 1}

type greedyCalculator struct {
	denominations []int
}

// DefaultDenominations returns a copy of the quarter, dime, nickel and penny values.
func DefaultDenominations() []int {
	return clone(defaultDenominations)
}

// NewDefault creates a Calculator over DefaultDenominations.
func NewDefault() Calculator {
	calc, err := newCalculator(defaultDenominations)
	if err != nil {
		panic(err)
	}
	return calc
}

// newCalculator creates a greedy Calculator over the provided denominations.
// Greedy reduction is only optimal for canonical sets such as 25/10/5/1.
func newCalculator(denominations []int) (Calculator, error) {
	if err := validateDenominations(denominations); err != nil {
		return nil, err
	}
	return &greedyCalculator{denominations: clone(denominations)}, nil
}

func (c *greedyCalculator) Calculate(amount int) Result {
	result := Result{
		Amount: amount,
		Coins:  make(map[int]int, len(c.denominations)),
	}

	remaining := amount
	for _, coin := range c.denominations {
		if remaining <= 0 {
			break
		}
		count := remaining / coin
		if count == 0 {
			continue
		}
		result.Coins[coin] = count
		result.TotalCoins += count
		remaining -= count * coin
	}

	return result
}

func validateDenominations(denominations []int) error {
	if len(denominations) == 0 {
		return ErrInvalidDenominations
	}
	for i, coin := range denominations {
		if coin <= 0 {
			return ErrInvalidDenominations
		}
		if i > 0 && coin >= denominations[i-1] {
			return ErrInvalidDenominations
		}
	}
	if denominations[len(denominations)-1] != 1 {
		return ErrInvalidDenominations
	}
	return nil
}

func clone(src []int) []int {
	out := make([]int, len(src))
	copy(out, src)
	return out
}
