package vault

// Asset is implemented by zero-size marker types naming a fungible asset.
type Asset interface {
	Symbol() string
}

// Share is the claim asset issued by vaults holding T.
type Share[T Asset] struct{}

func (Share[T]) Symbol() string {
	var base T
	return "share:" + base.Symbol()
}

// Balance is an amount of T. Only a Supply can create a non-zero Balance.
type Balance[T Asset] struct {
	value uint64
}

func (b Balance[T]) Value() uint64 {
	return b.value
}

// Split moves amount out of b into a new Balance.
func (b *Balance[T]) Split(amount uint64) (Balance[T], error) {
	if b.value < amount {
		return Balance[T]{}, ErrInsufficientBalance
	}
	b.value -= amount
	return Balance[T]{value: amount}, nil
}

// Join moves all of other into b and leaves other empty.
func (b *Balance[T]) Join(other *Balance[T]) error {
	sum, ok := addUint64(b.value, other.value)
	if !ok {
		return ErrOverflow
	}
	b.value = sum
	other.value = 0
	return nil
}

// Supply is the mint/burn authority for T. Whoever holds the Supply decides
// how much T exists.
type Supply[T Asset] struct {
	value uint64
}

func NewSupply[T Asset]() *Supply[T] {
	return &Supply[T]{}
}

func (s *Supply[T]) Value() uint64 {
	return s.value
}

// Increase mints amount of T.
func (s *Supply[T]) Increase(amount uint64) (Balance[T], error) {
	total, ok := addUint64(s.value, amount)
	if !ok {
		return Balance[T]{}, ErrOverflow
	}
	s.value = total
	return Balance[T]{value: amount}, nil
}

// Decrease burns all of b and returns the amount burned.
func (s *Supply[T]) Decrease(b *Balance[T]) (uint64, error) {
	if s.value < b.value {
		return 0, ErrInsufficientBalance
	}
	burned := b.value
	s.value -= burned
	b.value = 0
	return burned, nil
}
