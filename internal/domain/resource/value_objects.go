package resource

import (
	"errors"
	"fmt"
)

var ErrNegativeMoney = errors.New("amount cannot be negative")

// Money is an amount in centavos.
type Money struct {
	centavos int64
}

func NewMoney(centavos int64) (Money, error) {
	if centavos < 0 {
		return Money{}, ErrNegativeMoney
	}
	return Money{centavos: centavos}, nil
}

func MustMoney(centavos int64) Money {
	m, err := NewMoney(centavos)
	if err != nil {
		panic(err)
	}
	return m
}

func (m Money) Centavos() int64 { return m.centavos }
func (m Money) IsZero() bool    { return m.centavos == 0 }

func (m Money) Add(other Money) Money {
	return Money{centavos: m.centavos + other.centavos}
}

func (m Money) Times(n int) Money {
	return Money{centavos: m.centavos * int64(n)}
}

// String renders pesos, e.g. "500.00".
func (m Money) String() string {
	return fmt.Sprintf("%d.%02d", m.centavos/100, m.centavos%100)
}
