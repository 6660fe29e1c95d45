// Package forwarder provides RPC wrappers for the Forwarder contract.
package forwarder

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

// Admin returns the only account allowed to relay deposits through the
// forwarder.
func (c *ContractReader) Admin() (util.Uint160, error) {
	return unwrap.Uint160(c.invoker.Call(c.hash, "admin"))
}

// Version returns the version of the contract.
func (c *ContractReader) Version() (*big.Int, error) {
	return unwrap.BigInt(c.invoker.Call(c.hash, "version"))
}

// Deposit funds a deposit of amount of asset in the vault on behalf of the
// to account with the admin's funds. The transaction must be signed by the
// forwarder admin.
func (c *Contract) Deposit(asset, vault, to util.Uint160, amount *big.Int) (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "deposit", asset, vault, to, amount)
}

// RelayTransfer is an alternative to Deposit that attaches the relay target
// directly to a NEP-17 transfer from the admin to the forwarder.
func (c *Contract) RelayTransfer(asset, from, vault, to util.Uint160, amount *big.Int) (util.Uint256, uint32, error) {
	return nep17.New(c.actor, asset).Transfer(from, c.hash, amount, []any{vault, to})
}
