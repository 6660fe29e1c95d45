package tests

import (
	"testing"

	"github.com/nspcc-dev/neo-go/pkg/vm/stackitem"
	"github.com/stretchr/testify/require"
	"github.com/vault-labs/vault-contract/common"
)

func TestForwarder_Config(t *testing.T) {
	s := newVaultSetup(t)
	c := s.executor.CommitteeInvoker(s.forwarderHash)

	c.Invoke(t, stackitem.NewByteArray(s.admin.ScriptHash().BytesBE()), "admin")
	c.Invoke(t, int64(common.Version), "version")
}

func TestForwarder_RelayDeposit(t *testing.T) {
	s := newVaultSetup(t)
	admin := s.admin.ScriptHash()
	user := s.user.ScriptHash()

	s.mint(t, admin, 1_000_000)
	s.relayDeposit(t, s.admin, user, 100)

	require.EqualValues(t, 100, s.getDeposit(t, user))
	require.EqualValues(t, 0, s.getDeposit(t, admin))
	require.EqualValues(t, 999_900, s.tokenBalance(t, admin))

	// Nothing sticks to the relay.
	require.EqualValues(t, 0, s.tokenBalance(t, s.forwarderHash))
	require.EqualValues(t, 100, s.tokenBalance(t, s.vaultHash))
	s.requireConservation(t, user, admin)
}

func TestForwarder_DepositMethod(t *testing.T) {
	s := newVaultSetup(t)
	admin := s.admin.ScriptHash()
	user := s.user.ScriptHash()

	s.mint(t, admin, 1_000)

	c := s.executor.NewInvoker(s.forwarderHash, s.admin)
	c.Invoke(t, stackitem.Null{}, "deposit", s.tokenHash, s.vaultHash, user, int64(250))

	require.EqualValues(t, 250, s.getDeposit(t, user))
	require.EqualValues(t, 750, s.tokenBalance(t, admin))
	require.EqualValues(t, 0, s.tokenBalance(t, s.forwarderHash))

	stranger := s.executor.NewAccount(t)
	s.executor.NewInvoker(s.forwarderHash, stranger).InvokeFail(t,
		"admin witness check failed", "deposit", s.tokenHash, s.vaultHash, user, int64(250))

	require.EqualValues(t, 250, s.getDeposit(t, user))
}

func TestForwarder_UnauthorizedCaller(t *testing.T) {
	s := newVaultSetup(t)
	user := s.user.ScriptHash()

	s.mint(t, user, 1_000)

	before := s.getDeposit(t, user)
	s.tokenInvoker(s.user).InvokeFail(t, "ABORT", "transfer",
		user, s.forwarderHash, int64(100), []any{s.vaultHash, user})

	require.Equal(t, before, s.getDeposit(t, user))
	require.EqualValues(t, 1_000, s.tokenBalance(t, user))
	require.EqualValues(t, 0, s.tokenBalance(t, s.forwarderHash))
	require.EqualValues(t, 0, s.tokenBalance(t, s.vaultHash))
}

func TestForwarder_PlainTransferRejected(t *testing.T) {
	s := newVaultSetup(t)
	admin := s.admin.ScriptHash()

	s.mint(t, admin, 1_000)

	s.tokenInvoker(s.admin).InvokeFail(t, "ABORT", "transfer",
		admin, s.forwarderHash, int64(100), nil)

	require.EqualValues(t, 1_000, s.tokenBalance(t, admin))
	require.EqualValues(t, 0, s.tokenBalance(t, s.forwarderHash))
}

func TestForwarder_RelayWrongAsset(t *testing.T) {
	s := newVaultSetup(t)
	admin := s.admin.ScriptHash()
	user := s.user.ScriptHash()

	// The forwarder relays any NEP-17 asset, the vault is the one to reject
	// a non-bound one. The inner fault rolls back the admin's payment too.
	s.gasInvoker(t, s.admin).InvokeFail(t, "ABORT", "transfer",
		admin, s.forwarderHash, int64(100), []any{s.vaultHash, user})

	require.EqualValues(t, 0, s.getDeposit(t, user))
	s.requireConservation(t, user, admin)
}

func TestForwarder_UntrustedByVault(t *testing.T) {
	e := newExecutor(t)

	admin := e.NewAccount(t)
	user := e.NewAccount(t)

	tokenHash := deployTokenContract(t, e, admin.ScriptHash())
	forwarderHash := deployForwarderContract(t, e, admin.ScriptHash())
	// The vault trusts some other party, not the deployed forwarder.
	vaultHash := deployVaultContract(t, e, admin.ScriptHash(), user.ScriptHash(), tokenHash)

	tokenInv := e.NewInvoker(tokenHash, admin)
	tokenInv.Invoke(t, stackitem.Null{}, "mint", admin.ScriptHash(), int64(1_000))

	tokenInv.InvokeFail(t, "ABORT", "transfer",
		admin.ScriptHash(), forwarderHash, int64(100), []any{vaultHash, user.ScriptHash()})

	stack, err := e.CommitteeInvoker(vaultHash).TestInvoke(t, "getDeposit", user.ScriptHash())
	require.NoError(t, err)
	require.EqualValues(t, 0, stack.Pop().BigInt().Int64())

	stack, err = e.CommitteeInvoker(tokenHash).TestInvoke(t, "balanceOf", admin.ScriptHash())
	require.NoError(t, err)
	require.EqualValues(t, 1_000, stack.Pop().BigInt().Int64())
}
