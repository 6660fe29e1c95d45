package tests

import (
	"path"
	"testing"

	"github.com/nspcc-dev/neo-go/pkg/core/native/nativenames"
	"github.com/nspcc-dev/neo-go/pkg/neotest"
	"github.com/nspcc-dev/neo-go/pkg/neotest/chain"
	"github.com/nspcc-dev/neo-go/pkg/util"
	"github.com/nspcc-dev/neo-go/pkg/vm/stackitem"
	"github.com/stretchr/testify/require"
)

const (
	tokenPath     = "../contracts/token"
	vaultPath     = "../contracts/vault"
	forwarderPath = "../contracts/forwarder"
	reentryPath   = "../internal/testcontracts/reentry"
)

func newExecutor(t *testing.T) *neotest.Executor {
	bc, acc := chain.NewSingle(t)
	return neotest.NewExecutor(t, bc, acc, acc)
}

func deployTokenContract(t *testing.T, e *neotest.Executor, admin util.Uint160) util.Uint160 {
	c := neotest.CompileFile(t, e.CommitteeHash, tokenPath, path.Join(tokenPath, "config.yml"))

	args := make([]any, 1)
	args[0] = admin

	e.DeployContract(t, c, args)
	return c.Hash
}

func deployForwarderContract(t *testing.T, e *neotest.Executor, admin util.Uint160) util.Uint160 {
	c := neotest.CompileFile(t, e.CommitteeHash, forwarderPath, path.Join(forwarderPath, "config.yml"))

	args := make([]any, 1)
	args[0] = admin

	e.DeployContract(t, c, args)
	return c.Hash
}

func deployVaultContract(t *testing.T, e *neotest.Executor, admin, forwarder, asset util.Uint160) util.Uint160 {
	c := neotest.CompileFile(t, e.CommitteeHash, vaultPath, path.Join(vaultPath, "config.yml"))

	args := make([]any, 3)
	args[0] = admin
	args[1] = forwarder
	args[2] = asset

	e.DeployContract(t, c, args)
	return c.Hash
}

func deployReentryContract(t *testing.T, e *neotest.Executor) util.Uint160 {
	c := neotest.CompileFile(t, e.CommitteeHash, reentryPath, path.Join(reentryPath, "config.yml"))
	e.DeployContract(t, c, nil)
	return c.Hash
}

// vaultSetup is a deployed token+forwarder+vault triple sharing one admin,
// with the vault bound to the token and trusting the forwarder.
type vaultSetup struct {
	executor *neotest.Executor

	admin neotest.Signer
	user  neotest.Signer

	tokenHash     util.Uint160
	forwarderHash util.Uint160
	vaultHash     util.Uint160
}

func newVaultSetup(t *testing.T) *vaultSetup {
	e := newExecutor(t)

	admin := e.NewAccount(t)
	user := e.NewAccount(t)

	tokenHash := deployTokenContract(t, e, admin.ScriptHash())
	forwarderHash := deployForwarderContract(t, e, admin.ScriptHash())
	vaultHash := deployVaultContract(t, e, admin.ScriptHash(), forwarderHash, tokenHash)

	return &vaultSetup{
		executor:      e,
		admin:         admin,
		user:          user,
		tokenHash:     tokenHash,
		forwarderHash: forwarderHash,
		vaultHash:     vaultHash,
	}
}

func (s *vaultSetup) tokenInvoker(signers ...neotest.Signer) *neotest.ContractInvoker {
	return s.executor.NewInvoker(s.tokenHash, signers...)
}

func (s *vaultSetup) vaultInvoker(signers ...neotest.Signer) *neotest.ContractInvoker {
	return s.executor.NewInvoker(s.vaultHash, signers...)
}

func (s *vaultSetup) gasInvoker(t *testing.T, signers ...neotest.Signer) *neotest.ContractInvoker {
	gasHash, err := s.executor.Chain.GetNativeContractScriptHash(nativenames.Gas)
	require.NoError(t, err)

	return s.executor.NewInvoker(gasHash, signers...)
}

func (s *vaultSetup) mint(t *testing.T, to util.Uint160, amount int64) {
	s.tokenInvoker(s.admin).Invoke(t, stackitem.Null{}, "mint", to, amount)
}

func (s *vaultSetup) deposit(t *testing.T, from neotest.Signer, amount int64) {
	s.tokenInvoker(from).Invoke(t, true, "transfer",
		from.ScriptHash(), s.vaultHash, amount, nil)
}

func (s *vaultSetup) relayDeposit(t *testing.T, from neotest.Signer, to util.Uint160, amount int64) {
	s.tokenInvoker(from).Invoke(t, true, "transfer",
		from.ScriptHash(), s.forwarderHash, amount, []any{s.vaultHash, to})
}

func (s *vaultSetup) getDeposit(t *testing.T, holder util.Uint160) int64 {
	stack, err := s.executor.CommitteeInvoker(s.vaultHash).TestInvoke(t, "getDeposit", holder)
	require.NoError(t, err)

	return stack.Pop().BigInt().Int64()
}

func (s *vaultSetup) tokenBalance(t *testing.T, holder util.Uint160) int64 {
	stack, err := s.executor.CommitteeInvoker(s.tokenHash).TestInvoke(t, "balanceOf", holder)
	require.NoError(t, err)

	return stack.Pop().BigInt().Int64()
}

// requireConservation checks that the vault's real custody of the bound
// asset covers the sum of tracked deposit entries of the given holders.
func (s *vaultSetup) requireConservation(t *testing.T, holders ...util.Uint160) {
	var sum int64
	for _, h := range holders {
		sum += s.getDeposit(t, h)
	}

	require.Equal(t, sum, s.tokenBalance(t, s.vaultHash))
}
