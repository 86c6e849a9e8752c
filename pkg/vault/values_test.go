package vault

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestApplyDeposit(t *testing.T) {
	next, err := ApplyDeposit(Values{Base: 10, Shares: 10}, 50, 30)

	require.NoError(t, err)
	assert.Equal(t, Values{Base: 40, Shares: 40}, next)
	assert.True(t, next.Balanced())
}

func TestApplyDeposit_ZeroAmount(t *testing.T) {
	next, err := ApplyDeposit(Values{Base: 7, Shares: 7}, 0, 0)

	require.NoError(t, err)
	assert.Equal(t, Values{Base: 7, Shares: 7}, next)
}

func TestApplyDeposit_Insufficient(t *testing.T) {
	start := Values{Base: 10, Shares: 10}

	next, err := ApplyDeposit(start, 20, 21)

	assert.ErrorIs(t, err, ErrInsufficientBalance)
	assert.Equal(t, start, next)
}

func TestApplyDeposit_Overflow(t *testing.T) {
	start := Values{Base: math.MaxUint64, Shares: math.MaxUint64}

	_, err := ApplyDeposit(start, 1, 1)

	assert.ErrorIs(t, err, ErrOverflow)
}

func TestApplyWithdraw(t *testing.T) {
	next, err := ApplyWithdraw(Values{Base: 100, Shares: 100}, 30, 20)

	require.NoError(t, err)
	assert.Equal(t, Values{Base: 80, Shares: 80}, next)
}

func TestApplyWithdraw_Insufficient(t *testing.T) {
	start := Values{Base: 100, Shares: 100}

	next, err := ApplyWithdraw(start, 30, 31)

	assert.ErrorIs(t, err, ErrInsufficientBalance)
	assert.Equal(t, start, next)
}

func TestApplyWithdraw_CorruptedRecord(t *testing.T) {
	_, err := ApplyWithdraw(Values{Base: 5, Shares: 50}, 30, 10)

	assert.ErrorIs(t, err, ErrInsufficientBalance)
}

func TestBalance_SplitAndJoin(t *testing.T) {
	supply := NewSupply[testAsset]()
	b, err := supply.Increase(100)
	require.NoError(t, err)

	part, err := b.Split(40)
	require.NoError(t, err)
	assert.Equal(t, uint64(60), b.Value())
	assert.Equal(t, uint64(40), part.Value())

	_, err = b.Split(61)
	assert.ErrorIs(t, err, ErrInsufficientBalance)

	require.NoError(t, b.Join(&part))
	assert.Equal(t, uint64(100), b.Value())
	assert.Equal(t, uint64(0), part.Value())
}

func TestSupply_Decrease(t *testing.T) {
	supply := NewSupply[testAsset]()
	b, err := supply.Increase(25)
	require.NoError(t, err)

	burned, err := supply.Decrease(&b)

	require.NoError(t, err)
	assert.Equal(t, uint64(25), burned)
	assert.Equal(t, uint64(0), supply.Value())
	assert.Equal(t, uint64(0), b.Value())
}

func TestSupply_IncreaseOverflow(t *testing.T) {
	supply := NewSupply[testAsset]()
	_, err := supply.Increase(math.MaxUint64)
	require.NoError(t, err)

	_, err = supply.Increase(1)

	assert.ErrorIs(t, err, ErrOverflow)
	assert.Equal(t, uint64(math.MaxUint64), supply.Value())
}

func TestShare_Symbol(t *testing.T) {
	assert.Equal(t, "share:TST", Share[testAsset]{}.Symbol())
}
