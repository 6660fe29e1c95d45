package reentry

import (
	"github.com/nspcc-dev/neo-go/pkg/interop"
	"github.com/nspcc-dev/neo-go/pkg/interop/contract"
	"github.com/nspcc-dev/neo-go/pkg/interop/runtime"
	"github.com/nspcc-dev/neo-go/pkg/interop/storage"
)

const (
	vaultKey  = 'v'
	amountKey = 'm'
	armedKey  = 'r'
)

// Fund moves amount of token held by this contract into the vault, crediting
// the contract's own deposit entry.
func Fund(token, vault interop.Hash160, amount int) {
	transferred := contract.Call(token, "transfer", contract.All,
		runtime.GetExecutingScriptHash(), vault, amount, nil).(bool)
	if !transferred {
		panic("reentry: failed to fund vault deposit")
	}
}

// Withdraw pulls amount from the vault deposit of this contract. With
// reenter set, the incoming asset transfer triggers a second withdrawal of
// the same amount from inside the first one.
func Withdraw(vault interop.Hash160, amount int, reenter bool) {
	ctx := storage.GetContext()
	storage.Put(ctx, vaultKey, vault)
	storage.Put(ctx, amountKey, amount)
	if reenter {
		storage.Put(ctx, armedKey, 1)
	}

	contract.Call(vault, "withdraw", contract.All,
		runtime.GetExecutingScriptHash(), amount)

	storage.Delete(ctx, armedKey)
}

// OnNEP17Payment reacts to the withdrawal payout when armed by Withdraw,
// re-entering the vault exactly once. Unrelated payments (minting, funding)
// are accepted silently.
func OnNEP17Payment(from interop.Hash160, amount int, data any) {
	ctx := storage.GetContext()
	if storage.Get(ctx, armedKey) == nil {
		return
	}
	storage.Delete(ctx, armedKey)

	vault := storage.Get(ctx, vaultKey).(interop.Hash160)
	repeat := storage.Get(ctx, amountKey).(int)

	contract.Call(vault, "withdraw", contract.All,
		runtime.GetExecutingScriptHash(), repeat)
}
