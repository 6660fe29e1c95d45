// Package vault provides RPC wrappers for the Vault contract.
package vault

import (
	"math/big"

	"github.com/nspcc-dev/neo-go/pkg/neorpc/result"
	"github.com/nspcc-dev/neo-go/pkg/rpcclient/nep17"
	"github.com/nspcc-dev/neo-go/pkg/rpcclient/unwrap"
	"github.com/nspcc-dev/neo-go/pkg/util"
)

// Invoker is used by ContractReader to call safe methods.
type Invoker interface {
	Call(contract util.Uint160, operation string, params ...any) (*result.Invoke, error)
}

// Actor is used by Contract to create and send transactions.
type Actor interface {
	nep17.Actor

	SendCall(contract util.Uint160, method string, params ...any) (util.Uint256, uint32, error)
}

// ContractReader implements safe contract methods.
type ContractReader struct {
	invoker Invoker
	hash    util.Uint160
}

// Contract implements all contract methods.
type Contract struct {
	ContractReader
	actor Actor
	hash  util.Uint160
}

// NewReader creates an instance of ContractReader using the provided
// contract hash and the given Invoker.
func NewReader(invoker Invoker, hash util.Uint160) *ContractReader {
	return &ContractReader{invoker: invoker, hash: hash}
}

// New creates an instance of Contract using the provided contract hash and
// the given Actor.
func New(actor Actor, hash util.Uint160) *Contract {
	return &Contract{*NewReader(actor, hash), actor, hash}
}

// GetDeposit returns the deposit balance of the given account. Accounts that
// were never credited have zero balance.
func (c *ContractReader) GetDeposit(holder util.Uint160) (*big.Int, error) {
	return unwrap.BigInt(c.invoker.Call(c.hash, "getDeposit", holder))
}

// Admin returns the account managing the vault deployment.
func (c *ContractReader) Admin() (util.Uint160, error) {
	return unwrap.Uint160(c.invoker.Call(c.hash, "admin"))
}

// Asset returns the script hash of the NEP-17 contract the vault is bound to.
func (c *ContractReader) Asset() (util.Uint160, error) {
	return unwrap.Uint160(c.invoker.Call(c.hash, "asset"))
}

// TrustedForwarder returns the script hash of the only contract allowed to
// fund deposits on behalf of other accounts.
func (c *ContractReader) TrustedForwarder() (util.Uint160, error) {
	return unwrap.Uint160(c.invoker.Call(c.hash, "trustedForwarder"))
}

// Version returns the version of the contract.
func (c *ContractReader) Version() (*big.Int, error) {
	return unwrap.BigInt(c.invoker.Call(c.hash, "version"))
}

// Deposit credits the from account's deposit entry by transferring amount of
// the bound asset to the vault. The transaction must be signed by the from
// account.
func (c *Contract) Deposit(asset, from util.Uint160, amount *big.Int) (util.Uint256, uint32, error) {
	return nep17.New(c.actor, asset).Transfer(from, c.hash, amount, nil)
}

// Withdraw debits the deposit entry of the user and sends the requested
// amount of the bound asset back to it.
func (c *Contract) Withdraw(user util.Uint160, amount *big.Int) (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "withdraw", user, amount)
}
