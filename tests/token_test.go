package tests

import (
	"testing"

	"github.com/nspcc-dev/neo-go/pkg/vm/stackitem"
	"github.com/vault-labs/vault-contract/common"
)

func TestToken_Metadata(t *testing.T) {
	e := newExecutor(t)

	admin := e.NewAccount(t)
	h := deployTokenContract(t, e, admin.ScriptHash())

	c := e.CommitteeInvoker(h)
	c.Invoke(t, "VAULT", "symbol")
	c.Invoke(t, int64(6), "decimals")
	c.Invoke(t, int64(0), "totalSupply")
	c.Invoke(t, stackitem.NewByteArray(admin.ScriptHash().BytesBE()), "admin")
	c.Invoke(t, int64(common.Version), "version")
}

func TestToken_MintBurn(t *testing.T) {
	e := newExecutor(t)

	admin := e.NewAccount(t)
	user := e.NewAccount(t)
	h := deployTokenContract(t, e, admin.ScriptHash())

	c := e.CommitteeInvoker(h)
	cAdmin := e.NewInvoker(h, admin)

	cAdmin.Invoke(t, stackitem.Null{}, "mint", user.ScriptHash(), int64(1_000))
	c.Invoke(t, int64(1_000), "balanceOf", user.ScriptHash())
	c.Invoke(t, int64(1_000), "totalSupply")

	cAdmin.Invoke(t, stackitem.Null{}, "burn", user.ScriptHash(), int64(400))
	c.Invoke(t, int64(600), "balanceOf", user.ScriptHash())
	c.Invoke(t, int64(600), "totalSupply")

	cAdmin.InvokeFail(t, "can't transfer assets", "burn", user.ScriptHash(), int64(700))
	c.Invoke(t, int64(600), "balanceOf", user.ScriptHash())

	cAdmin.InvokeFail(t, "non positive mint amount", "mint", user.ScriptHash(), int64(0))
}

func TestToken_MintBurnAuthorization(t *testing.T) {
	e := newExecutor(t)

	admin := e.NewAccount(t)
	user := e.NewAccount(t)
	h := deployTokenContract(t, e, admin.ScriptHash())

	cUser := e.NewInvoker(h, user)
	cUser.InvokeFail(t, "admin witness check failed", "mint", user.ScriptHash(), int64(1_000))
	cUser.InvokeFail(t, "admin witness check failed", "burn", user.ScriptHash(), int64(1_000))
}

func TestToken_Transfer(t *testing.T) {
	e := newExecutor(t)

	admin := e.NewAccount(t)
	from := e.NewAccount(t)
	to := e.NewAccount(t)
	h := deployTokenContract(t, e, admin.ScriptHash())

	c := e.CommitteeInvoker(h)
	e.NewInvoker(h, admin).Invoke(t, stackitem.Null{}, "mint", from.ScriptHash(), int64(1_000))

	cFrom := e.NewInvoker(h, from)
	cFrom.Invoke(t, true, "transfer", from.ScriptHash(), to.ScriptHash(), int64(300), nil)
	c.Invoke(t, int64(700), "balanceOf", from.ScriptHash())
	c.Invoke(t, int64(300), "balanceOf", to.ScriptHash())

	// Exceeds the remaining balance.
	cFrom.Invoke(t, false, "transfer", from.ScriptHash(), to.ScriptHash(), int64(800), nil)

	// Signed by someone else than the owner.
	e.NewInvoker(h, to).Invoke(t, false, "transfer",
		from.ScriptHash(), to.ScriptHash(), int64(100), nil)

	c.Invoke(t, int64(700), "balanceOf", from.ScriptHash())
	c.Invoke(t, int64(300), "balanceOf", to.ScriptHash())
}
