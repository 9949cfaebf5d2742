package common

import (
	"fmt"
)

type Optional[T any] struct {
	Value     T
	IsPresent bool
}

func (p *Optional[T]) String() string {
	if !p.IsPresent {
		return "[-]"
	}
	return fmt.Sprintf("[%v]", p.Value)
}

// ValueOr returns the value when present and fallback otherwise.
func (p Optional[T]) ValueOr(fallback T) T {
	if p.IsPresent {
		return p.Value
	}
	return fallback
}

// Or returns p when present and other otherwise.
func (p Optional[T]) Or(other Optional[T]) Optional[T] {
	if p.IsPresent {
		return p
	}
	return other
}

func NewOptional[T any](value T, isPresent bool) Optional[T] {
	return Optional[T]{Value: value, IsPresent: isPresent}
}

func Some[T any](value T) Optional[T] {
	return Optional[T]{Value: value, IsPresent: true}
}

func None[T any]() Optional[T] {
	return Optional[T]{}
}
