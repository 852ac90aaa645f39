package domain

// Money is an immutable amount in minor units (cents) with a currency code.
// All arithmetic requires both operands to share the same currency.
type Money struct {
	AmountCents int64
	Currency    string
}

func NewMoney(amountCents int64, currency string) (Money, error) {
	if amountCents < 0 {
		return Money{}, NewInvalidMoneyError("money amount cannot be negative")
	}
	if len(currency) != 3 {
		return Money{}, NewInvalidMoneyError("currency must be a 3-letter code")
	}
	return Money{AmountCents: amountCents, Currency: currency}, nil
}

// ZeroMoney returns a zero amount in the given currency.
func ZeroMoney(currency string) Money {
	return Money{AmountCents: 0, Currency: currency}
}

func (m Money) IsZero() bool {
	return m.AmountCents == 0
}

func (m Money) Add(other Money) (Money, error) {
	if err := m.ensureSameCurrency(other); err != nil {
		return Money{}, err
	}
	return Money{AmountCents: m.AmountCents + other.AmountCents, Currency: m.Currency}, nil
}

func (m Money) Subtract(other Money) (Money, error) {
	if err := m.ensureSameCurrency(other); err != nil {
		return Money{}, err
	}
	if other.AmountCents > m.AmountCents {
		return Money{}, NewInvalidMoneyError("resulting money amount cannot be negative")
	}
	return Money{AmountCents: m.AmountCents - other.AmountCents, Currency: m.Currency}, nil
}

// GreaterThan reports whether m > other. Comparing across currencies is an error.
func (m Money) GreaterThan(other Money) (bool, error) {
	if err := m.ensureSameCurrency(other); err != nil {
		return false, err
	}
	return m.AmountCents > other.AmountCents, nil
}

func (m Money) ensureSameCurrency(other Money) error {
	if m.Currency != other.Currency {
		return NewCurrencyMismatchError(other.Currency, m.Currency)
	}
	return nil
}
