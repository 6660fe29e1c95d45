package token

import (
	"github.com/nspcc-dev/neo-go/pkg/interop"
	"github.com/nspcc-dev/neo-go/pkg/interop/contract"
	"github.com/nspcc-dev/neo-go/pkg/interop/native/management"
	"github.com/nspcc-dev/neo-go/pkg/interop/runtime"
	"github.com/nspcc-dev/neo-go/pkg/interop/storage"
	"github.com/vault-labs/vault-contract/common"
)

// Token holds all token info.
type Token struct {
	// Ticker symbol
	Symbol string
	// Amount of decimals
	Decimals int
	// Storage key for circulation value
	CirculationKey string
}

const (
	symbol      = "VAULT"
	decimals    = 6
	circulation = "TokenCirculation"

	adminKey  = 'a'
	accPrefix = 'b'
)

var token Token

func createToken() Token {
	return Token{
		Symbol:         symbol,
		Decimals:       decimals,
		CirculationKey: circulation,
	}
}

func init() {
	token = createToken()
}

// nolint:unused
func _deploy(data any, isUpdate bool) {
	if isUpdate {
		args := data.([]any)
		common.CheckVersion(args[len(args)-1].(int))
		return
	}

	args := data.(struct {
		admin interop.Hash160
	})

	if len(args.admin) != interop.Hash160Len {
		panic("incorrect admin account length")
	}

	ctx := storage.GetContext()
	storage.Put(ctx, adminKey, args.admin)

	runtime.Log("token contract initialized")
}

// Update method updates contract source code and manifest. It can be invoked
// only by the token admin.
func Update(nefFile, manifest []byte, data any) {
	common.CheckAdminWitness(Admin())

	contract.Call(interop.Hash160(management.Hash), "update",
		contract.All, nefFile, manifest, common.AppendVersion(data))
	runtime.Log("token contract updated")
}

// Symbol is a NEP-17 standard method that returns the token symbol.
func Symbol() string {
	return token.Symbol
}

// Decimals is a NEP-17 standard method that returns the precision of the
// token.
func Decimals() int {
	return token.Decimals
}

// TotalSupply is a NEP-17 standard method that returns the amount of token
// in circulation.
func TotalSupply() int {
	ctx := storage.GetReadOnlyContext()
	return token.getSupply(ctx)
}

// BalanceOf is a NEP-17 standard method that returns the token balance of
// the specified account.
func BalanceOf(account interop.Hash160) int {
	ctx := storage.GetReadOnlyContext()
	return token.balanceOf(ctx, account)
}

// Transfer is a NEP-17 standard method that transfers token from one account
// to another. It can be invoked by the account owner or by the owning
// contract itself.
//
// It produces Transfer notification and calls onNEP17Payment method of the
// receiving contract.
func Transfer(from, to interop.Hash160, amount int, data any) bool {
	ctx := storage.GetContext()
	return token.transfer(ctx, from, to, amount, false, data)
}

// Mint issues new token to the specified account increasing total supply.
// It can be invoked only by the token admin.
func Mint(to interop.Hash160, amount int) {
	common.CheckAdminWitness(Admin())

	if len(to) != interop.Hash160Len {
		panic("token: incorrect recipient account length")
	}
	if amount <= 0 {
		panic("token: non positive mint amount")
	}

	ctx := storage.GetContext()

	ok := token.transfer(ctx, nil, to, amount, true, nil)
	if !ok {
		panic("token: can't transfer assets")
	}

	supply := token.getSupply(ctx)
	storage.Put(ctx, token.CirculationKey, supply+amount)
	runtime.Notify("Mint", to, amount)
}

// Burn destroys token held by the specified account decreasing total supply.
// It can be invoked only by the token admin.
func Burn(from interop.Hash160, amount int) {
	common.CheckAdminWitness(Admin())

	if amount <= 0 {
		panic("token: non positive burn amount")
	}

	ctx := storage.GetContext()

	ok := token.transfer(ctx, from, nil, amount, true, nil)
	if !ok {
		panic("token: can't transfer assets")
	}

	supply := token.getSupply(ctx)
	if supply < amount {
		panic("token: negative supply after burn")
	}

	storage.Put(ctx, token.CirculationKey, supply-amount)
	runtime.Notify("Burn", from, amount)
}

// Admin returns the account allowed to mint and burn the token.
func Admin() interop.Hash160 {
	ctx := storage.GetReadOnlyContext()
	return storage.Get(ctx, adminKey).(interop.Hash160)
}

// Version returns the version of the contract.
func Version() int {
	return common.Version
}

// getSupply gets the token totalSupply value from VM storage.
func (t Token) getSupply(ctx storage.Context) int {
	supply := storage.Get(ctx, t.CirculationKey)
	if supply != nil {
		return supply.(int)
	}

	return 0
}

// balanceOf gets the token balance of a specific address.
func (t Token) balanceOf(ctx storage.Context, holder interop.Hash160) int {
	balance := storage.Get(ctx, accountKey(holder))
	if balance != nil {
		return balance.(int)
	}

	return 0
}

// transfer moves amount between accounts. Internal transfers (mint and burn)
// skip the sender authorization check and allow an empty side.
func (t Token) transfer(ctx storage.Context, from, to interop.Hash160, amount int, internal bool, data any) bool {
	balanceFrom, ok := t.canTransfer(ctx, from, to, amount, internal)
	if !ok {
		return false
	}

	if len(from) == interop.Hash160Len {
		if balanceFrom == amount {
			storage.Delete(ctx, accountKey(from))
		} else {
			storage.Put(ctx, accountKey(from), balanceFrom-amount)
		}
	}

	if len(to) == interop.Hash160Len {
		balanceTo := t.balanceOf(ctx, to)
		storage.Put(ctx, accountKey(to), balanceTo+amount)
	}

	postTransfer(from, to, amount, data)

	return true
}

// canTransfer returns the balance the sender can transfer from.
func (t Token) canTransfer(ctx storage.Context, from, to interop.Hash160, amount int, internal bool) (int, bool) {
	if amount < 0 {
		return 0, false
	}

	if !internal {
		if len(to) != interop.Hash160Len || !isUsableAddress(from) {
			runtime.Log("token: bad script hashes")
			return 0, false
		}
	} else if len(from) == 0 {
		return 0, true
	}

	balanceFrom := t.balanceOf(ctx, from)
	if balanceFrom < amount {
		runtime.Log("token: not enough assets")
		return 0, false
	}

	// return the sender balance back to transfer, reduces extra Get
	return balanceFrom, true
}

// postTransfer emits the Transfer notification and lets a receiving contract
// react to the payment.
func postTransfer(from, to interop.Hash160, amount int, data any) {
	runtime.Notify("Transfer", from, to, amount)

	if len(to) == interop.Hash160Len && management.GetContract(to) != nil {
		contract.Call(to, "onNEP17Payment", contract.All, from, amount, data)
	}
}

// isUsableAddress checks if the sender is either a signing account or the
// calling contract itself.
func isUsableAddress(addr interop.Hash160) bool {
	if len(addr) == interop.Hash160Len {
		if runtime.CheckWitness(addr) {
			return true
		}

		if runtime.GetCallingScriptHash().Equals(addr) {
			return true
		}
	}

	return false
}

func accountKey(holder interop.Hash160) []byte {
	return append([]byte{accPrefix}, holder...)
}
