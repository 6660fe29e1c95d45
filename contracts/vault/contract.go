package vault

import (
	"github.com/nspcc-dev/neo-go/pkg/interop"
	"github.com/nspcc-dev/neo-go/pkg/interop/contract"
	"github.com/nspcc-dev/neo-go/pkg/interop/native/management"
	"github.com/nspcc-dev/neo-go/pkg/interop/runtime"
	"github.com/nspcc-dev/neo-go/pkg/interop/storage"
	"github.com/vault-labs/vault-contract/common"
)

const (
	adminKey     = 'a'
	forwarderKey = 'f'
	assetKey     = 't'

	depositPrefix = 'd'
)

// nolint:unused
func _deploy(data any, isUpdate bool) {
	if isUpdate {
		args := data.([]any)
		common.CheckVersion(args[len(args)-1].(int))
		return
	}

	args := data.(struct {
		admin     interop.Hash160
		forwarder interop.Hash160
		asset     interop.Hash160
	})

	if len(args.admin) != interop.Hash160Len {
		panic("incorrect admin account length")
	}
	if len(args.forwarder) != interop.Hash160Len {
		panic("incorrect forwarder contract script hash length")
	}
	if len(args.asset) != interop.Hash160Len {
		panic("incorrect asset contract script hash length")
	}

	ctx := storage.GetContext()
	storage.Put(ctx, adminKey, args.admin)
	storage.Put(ctx, forwarderKey, args.forwarder)
	storage.Put(ctx, assetKey, args.asset)

	runtime.Log("vault contract initialized")
}

// Update method updates contract source code and manifest. It can be invoked
// only by the vault admin.
func Update(nefFile, manifest []byte, data any) {
	common.CheckAdminWitness(Admin())

	contract.Call(interop.Hash160(management.Hash), "update",
		contract.All, nefFile, manifest, common.AppendVersion(data))
	runtime.Log("vault contract updated")
}

// OnNEP17Payment is the deposit entry point of the vault. Value arrives here
// as a NEP-17 transfer from the bound asset contract; transfers of any other
// asset are aborted. With nil data the payer's own deposit entry is credited.
// With a Hash160 recipient in data the payment is a deposit on behalf of
// another account, allowed only when the payer is the trusted forwarder
// contract.
//
// Any rejection aborts the whole transaction, refunding the transfer.
func OnNEP17Payment(from interop.Hash160, amount int, data any) {
	ctx := storage.GetContext()

	caller := runtime.GetCallingScriptHash()
	asset := storage.Get(ctx, assetKey).(interop.Hash160)
	if !caller.Equals(asset) {
		common.AbortWithMessage("vault: invalid asset")
	}
	if amount <= 0 {
		common.AbortWithMessage("vault: non positive deposit amount")
	}
	if len(from) != interop.Hash160Len {
		common.AbortWithMessage("vault: deposit without a payer account")
	}

	to := from
	if data != nil {
		rcv := data.(interop.Hash160)
		if len(rcv) != interop.Hash160Len {
			common.AbortWithMessage("vault: invalid deposit recipient")
		}

		forwarder := storage.Get(ctx, forwarderKey).(interop.Hash160)
		if !from.Equals(forwarder) {
			common.AbortWithMessage("vault: unauthorized deposit for another account")
		}
		to = rcv
	}

	storage.Put(ctx, depositKey(to), getDeposit(ctx, to)+amount)
	runtime.Notify("Deposit", from, to, amount)
}

// Withdraw debits the deposit entry of the user and sends the requested
// amount of the bound asset back to it. It can be invoked by the account
// owner or by the user contract itself.
func Withdraw(user interop.Hash160, amount int) {
	if len(user) != interop.Hash160Len {
		panic("vault: incorrect user account length")
	}
	if amount <= 0 {
		panic("vault: non positive withdrawal amount")
	}
	if !isUsableAddress(user) {
		panic("vault: " + common.ErrOwnerWitnessFailed)
	}

	ctx := storage.GetContext()

	balance := getDeposit(ctx, user)
	if balance < amount {
		panic("vault: insufficient balance")
	}

	// The entry is debited strictly before the outbound transfer: a reentrant
	// withdrawal issued during the transfer observes the decremented balance.
	storage.Put(ctx, depositKey(user), balance-amount)

	asset := storage.Get(ctx, assetKey).(interop.Hash160)
	transferred := contract.Call(asset, "transfer", contract.All,
		runtime.GetExecutingScriptHash(), user, amount, nil).(bool)
	if !transferred {
		panic("vault: failed to transfer funds, aborting")
	}

	runtime.Notify("Withdraw", user, amount)
}

// GetDeposit returns the deposit balance of the specified account. Accounts
// that were never credited have zero balance.
func GetDeposit(holder interop.Hash160) int {
	ctx := storage.GetReadOnlyContext()
	return getDeposit(ctx, holder)
}

// Admin returns the account managing this vault deployment.
func Admin() interop.Hash160 {
	ctx := storage.GetReadOnlyContext()
	return storage.Get(ctx, adminKey).(interop.Hash160)
}

// Asset returns the script hash of the NEP-17 contract this vault is bound to.
func Asset() interop.Hash160 {
	ctx := storage.GetReadOnlyContext()
	return storage.Get(ctx, assetKey).(interop.Hash160)
}

// TrustedForwarder returns the script hash of the only contract allowed to
// fund deposits on behalf of other accounts.
func TrustedForwarder() interop.Hash160 {
	ctx := storage.GetReadOnlyContext()
	return storage.Get(ctx, forwarderKey).(interop.Hash160)
}

// Version returns the version of the contract.
func Version() int {
	return common.Version
}

// isUsableAddress checks if the sender is either a signing account or the
// calling contract itself.
func isUsableAddress(addr interop.Hash160) bool {
	if runtime.CheckWitness(addr) {
		return true
	}

	return runtime.GetCallingScriptHash().Equals(addr)
}

func getDeposit(ctx storage.Context, holder interop.Hash160) int {
	balance := storage.Get(ctx, depositKey(holder))
	if balance != nil {
		return balance.(int)
	}

	return 0
}

func depositKey(holder interop.Hash160) []byte {
	return append([]byte{depositPrefix}, holder...)
}
