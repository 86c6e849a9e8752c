// Package vault is the share-based custody ledger's accounting engine.
//
// A Vault accepts one base asset, tracks the aggregate base balance and issues
// fungible share tokens 1:1 against deposits. Deposit and Withdraw are the only
// mutators; both keep the base balance equal to the outstanding share supply.
//
// The base asset is a type parameter. Shares of a vault for asset T have type
// Share[T], so a share token of one asset can never be redeemed against a vault
// of another asset; the compiler rejects it.
package vault

import (
	"errors"
	"math/bits"
)

var (
	ErrInsufficientBalance = errors.New("insufficient balance")
	ErrOverflow            = errors.New("arithmetic overflow")
	ErrVaultMismatch       = errors.New("share token was not issued by this vault")
	ErrAdminCapInvalid     = errors.New("admin capability does not authorize this vault")
)

// Values is the accounting state of one vault: the base balance it holds and
// the total value of share tokens it has issued and not yet burned.
type Values struct {
	Base   uint64 `json:"base_balance"`
	Shares uint64 `json:"total_share_supply"`
}

// Balanced reports whether every outstanding share is backed 1:1.
func (v Values) Balanced() bool {
	return v.Base == v.Shares
}

// ApplyDeposit returns the values after depositing amount from a container
// holding available. The receiver is never modified; on error the caller must
// not mutate anything.
func ApplyDeposit(v Values, available, amount uint64) (Values, error) {
	if available < amount {
		return v, ErrInsufficientBalance
	}
	base, ok := addUint64(v.Base, amount)
	if !ok {
		return v, ErrOverflow
	}
	shares, ok := addUint64(v.Shares, amount)
	if !ok {
		return v, ErrOverflow
	}
	return Values{Base: base, Shares: shares}, nil
}

// ApplyWithdraw returns the values after redeeming amount from a share token
// holding available.
func ApplyWithdraw(v Values, available, amount uint64) (Values, error) {
	if available < amount {
		return v, ErrInsufficientBalance
	}
	// Unreachable while the vault is balanced; guards a corrupted record.
	if v.Base < amount || v.Shares < amount {
		return v, ErrInsufficientBalance
	}
	return Values{Base: v.Base - amount, Shares: v.Shares - amount}, nil
}

func addUint64(a, b uint64) (uint64, bool) {
	sum, carry := bits.Add64(a, b, 0)
	return sum, carry == 0
}
