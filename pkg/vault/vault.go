package vault

import (
	"sync"

	"github.com/google/uuid"
)

// Coin is an owned container of base asset T.
type Coin[T Asset] struct {
	ID      uuid.UUID
	balance Balance[T]
}

// Mint issues a new coin of amount from supply. Only the asset issuer holds a
// supply for a base asset.
func Mint[T Asset](supply *Supply[T], amount uint64) (*Coin[T], error) {
	b, err := supply.Increase(amount)
	if err != nil {
		return nil, err
	}
	return &Coin[T]{ID: uuid.New(), balance: b}, nil
}

func (c *Coin[T]) Value() uint64 {
	return c.balance.Value()
}

func (c *Coin[T]) Split(amount uint64) (*Coin[T], error) {
	b, err := c.balance.Split(amount)
	if err != nil {
		return nil, err
	}
	return &Coin[T]{ID: uuid.New(), balance: b}, nil
}

// Join moves other's value into c. other is left empty.
func (c *Coin[T]) Join(other *Coin[T]) error {
	if c == other {
		return nil
	}
	return c.balance.Join(&other.balance)
}

// ShareToken is a claim on the vault it was issued by. VaultID is a plain
// reference; holding a token does not keep the vault reachable.
type ShareToken[T Asset] struct {
	ID      uuid.UUID
	VaultID uuid.UUID
	balance Balance[Share[T]]
}

func (s *ShareToken[T]) Value() uint64 {
	return s.balance.Value()
}

func (s *ShareToken[T]) Split(amount uint64) (*ShareToken[T], error) {
	b, err := s.balance.Split(amount)
	if err != nil {
		return nil, err
	}
	return &ShareToken[T]{ID: uuid.New(), VaultID: s.VaultID, balance: b}, nil
}

// Join moves other's value into s. Both tokens must come from the same vault.
func (s *ShareToken[T]) Join(other *ShareToken[T]) error {
	if s == other {
		return nil
	}
	if s.VaultID != other.VaultID {
		return ErrVaultMismatch
	}
	return s.balance.Join(&other.balance)
}

// AdminCap authorizes privileged operations on exactly one vault. It can only
// be obtained from New.
type AdminCap struct {
	id      uuid.UUID
	vaultID uuid.UUID
}

func (c AdminCap) ID() uuid.UUID {
	return c.id
}

func (c AdminCap) VaultID() uuid.UUID {
	return c.vaultID
}

// Authorizes reports whether c was issued for the vault with the given id.
func (c AdminCap) Authorizes(vaultID uuid.UUID) bool {
	return c.vaultID != uuid.Nil && c.vaultID == vaultID
}

// Vault holds the base balance of T and the share supply it alone may mint
// and burn. Deposit and Withdraw on one Vault are serialized.
type Vault[T Asset] struct {
	id uuid.UUID

	mu     sync.Mutex
	base   Balance[T]
	supply Supply[Share[T]]
}

// New creates an empty vault for T together with its one admin capability.
func New[T Asset]() (*Vault[T], AdminCap) {
	v := &Vault[T]{id: uuid.New()}
	return v, AdminCap{id: uuid.New(), vaultID: v.id}
}

func (v *Vault[T]) ID() uuid.UUID {
	return v.id
}

func (v *Vault[T]) Asset() string {
	var base T
	return base.Symbol()
}

// Values returns the current base balance and total share supply.
func (v *Vault[T]) Values() Values {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.values()
}

func (v *Vault[T]) values() Values {
	return Values{Base: v.base.value, Shares: v.supply.value}
}

// Deposit takes amount out of coin, adds it to the vault and returns a new
// share token worth amount. The rest of the coin stays with the caller. On
// error nothing changes.
func (v *Vault[T]) Deposit(amount uint64, coin *Coin[T]) (*ShareToken[T], error) {
	v.mu.Lock()
	defer v.mu.Unlock()

	next, err := ApplyDeposit(v.values(), coin.balance.value, amount)
	if err != nil {
		return nil, err
	}

	coin.balance.value -= amount
	v.base.value = next.Base
	v.supply.value = next.Shares

	return &ShareToken[T]{
		ID:      uuid.New(),
		VaultID: v.id,
		balance: Balance[Share[T]]{value: amount},
	}, nil
}

// Withdraw burns amount from share and pays the same amount of base asset
// out as a new coin. On error nothing changes.
func (v *Vault[T]) Withdraw(amount uint64, share *ShareToken[T]) (*Coin[T], error) {
	v.mu.Lock()
	defer v.mu.Unlock()

	if share.VaultID != v.id {
		return nil, ErrVaultMismatch
	}
	next, err := ApplyWithdraw(v.values(), share.balance.value, amount)
	if err != nil {
		return nil, err
	}

	share.balance.value -= amount
	v.base.value = next.Base
	v.supply.value = next.Shares

	return &Coin[T]{ID: uuid.New(), balance: Balance[T]{value: amount}}, nil
}

// CheckAdmin returns ErrAdminCapInvalid unless c was issued for v.
func (v *Vault[T]) CheckAdmin(c AdminCap) error {
	if !c.Authorizes(v.id) {
		return ErrAdminCapInvalid
	}
	return nil
}
