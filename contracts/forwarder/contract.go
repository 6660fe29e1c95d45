package forwarder

import (
	"github.com/nspcc-dev/neo-go/pkg/interop"
	"github.com/nspcc-dev/neo-go/pkg/interop/contract"
	"github.com/nspcc-dev/neo-go/pkg/interop/native/management"
	"github.com/nspcc-dev/neo-go/pkg/interop/runtime"
	"github.com/nspcc-dev/neo-go/pkg/interop/storage"
	"github.com/vault-labs/vault-contract/common"
)

const adminKey = 'a'

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

	runtime.Log("forwarder contract initialized")
}

// Update method updates contract source code and manifest. It can be invoked
// only by the forwarder admin.
func Update(nefFile, manifest []byte, data any) {
	common.CheckAdminWitness(Admin())

	contract.Call(interop.Hash160(management.Hash), "update",
		contract.All, nefFile, manifest, common.AppendVersion(data))
	runtime.Log("forwarder contract updated")
}

// OnNEP17Payment is the relay entry point. Value of any NEP-17 asset paid by
// the admin arrives here together with the relay target in data: a two-element
// array of the vault contract script hash and the account to credit. The
// exact received amount is re-attached to a transfer into the vault, which
// credits the named account. The contract keeps no balance of its own.
//
// Payments from anyone but the admin are aborted, as are payments without a
// relay target. A fault anywhere in the nested vault credit aborts the whole
// transaction, refunding the admin.
func OnNEP17Payment(from interop.Hash160, amount int, data any) {
	ctx := storage.GetReadOnlyContext()

	admin := storage.Get(ctx, adminKey).(interop.Hash160)
	if !from.Equals(admin) {
		common.AbortWithMessage("forwarder: unauthorized")
	}
	if data == nil {
		common.AbortWithMessage("forwarder: payment without a relay target")
	}
	if amount <= 0 {
		common.AbortWithMessage("forwarder: non positive relay amount")
	}

	args := data.([]any)
	if len(args) != 2 {
		common.AbortWithMessage("forwarder: invalid relay target")
	}

	vault := args[0].(interop.Hash160)
	rcv := args[1].(interop.Hash160)
	if len(vault) != interop.Hash160Len || len(rcv) != interop.Hash160Len {
		common.AbortWithMessage("forwarder: invalid relay target")
	}

	asset := runtime.GetCallingScriptHash()
	transferred := contract.Call(asset, "transfer", contract.All,
		runtime.GetExecutingScriptHash(), vault, amount, rcv).(bool)
	if !transferred {
		common.AbortWithMessage("forwarder: failed to relay funds")
	}

	runtime.Notify("Relay", vault, rcv, amount)
}

// Deposit funds a deposit in the vault on behalf of the to account with the
// admin's asset. It pulls amount of asset from the admin into the contract,
// which immediately relays it to the vault within the same transaction. It
// can be invoked only by the admin.
func Deposit(asset, vault, to interop.Hash160, amount int) {
	admin := Admin()
	common.CheckAdminWitness(admin)

	transferred := contract.Call(asset, "transfer", contract.All,
		admin, runtime.GetExecutingScriptHash(), amount, []any{vault, to}).(bool)
	if !transferred {
		panic("forwarder: failed to transfer funds, aborting")
	}
}

// Admin returns the only account allowed to relay deposits through this
// contract.
func Admin() interop.Hash160 {
	ctx := storage.GetReadOnlyContext()
	return storage.Get(ctx, adminKey).(interop.Hash160)
}

// Version returns the version of the contract.
func Version() int {
	return common.Version
}
