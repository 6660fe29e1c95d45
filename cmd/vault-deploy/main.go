// vault-deploy compiles the token, forwarder and vault contracts and deploys
// them to the given Neo network in that order, binding the vault to the two
// freshly computed contract hashes.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"path"

	"github.com/mr-tron/base58"
	"github.com/nspcc-dev/neo-go/cli/smartcontract"
	"github.com/nspcc-dev/neo-go/pkg/compiler"
	"github.com/nspcc-dev/neo-go/pkg/config"
	"github.com/nspcc-dev/neo-go/pkg/core/state"
	"github.com/nspcc-dev/neo-go/pkg/rpcclient"
	"github.com/nspcc-dev/neo-go/pkg/rpcclient/actor"
	"github.com/nspcc-dev/neo-go/pkg/rpcclient/management"
	"github.com/nspcc-dev/neo-go/pkg/smartcontract/manifest"
	"github.com/nspcc-dev/neo-go/pkg/smartcontract/nef"
	"github.com/nspcc-dev/neo-go/pkg/util"
	"github.com/nspcc-dev/neo-go/pkg/wallet"
	"go.uber.org/zap"
)

func main() {
	neoRPCEndpoint := flag.String("rpc", "", "Network address of the Neo RPC server")
	walletPath := flag.String("wallet", "", "Path to the NEP-6 wallet of the deployer")
	walletPassword := flag.String("password", "", "Password of the deployer account")
	adminAddress := flag.String("admin", "", "Neo address of the contracts' admin (defaults to the deployer)")
	contractsDir := flag.String("contracts", "contracts", "Directory with the contract sources")

	flag.Parse()

	switch {
	case *neoRPCEndpoint == "":
		log.Fatal("missing Neo RPC endpoint")
	case *walletPath == "":
		log.Fatal("missing deployer wallet")
	}

	l, err := zap.NewProduction()
	if err != nil {
		log.Fatal(fmt.Errorf("init logger: %w", err))
	}
	defer l.Sync()

	if err := deploy(l, *neoRPCEndpoint, *walletPath, *walletPassword, *adminAddress, *contractsDir); err != nil {
		l.Fatal("deployment failed", zap.Error(err))
	}
}

func deploy(l *zap.Logger, endpoint, walletPath, password, adminAddress, contractsDir string) error {
	w, err := wallet.NewWalletFromFile(walletPath)
	if err != nil {
		return fmt.Errorf("open wallet: %w", err)
	}

	acc := w.GetAccount(w.GetChangeAddress())
	if acc == nil {
		return errors.New("deployer account is missing from the wallet")
	}
	if err := acc.Decrypt(password, w.Scrypt); err != nil {
		return fmt.Errorf("unlock deployer account: %w", err)
	}

	admin := acc.ScriptHash()
	if adminAddress != "" {
		admin, err = parseAddress(adminAddress)
		if err != nil {
			return fmt.Errorf("parse admin address: %w", err)
		}
	}

	c, err := rpcclient.New(context.Background(), endpoint, rpcclient.Options{})
	if err != nil {
		return fmt.Errorf("create RPC client: %w", err)
	}
	if err := c.Init(); err != nil {
		return fmt.Errorf("init RPC client: %w", err)
	}

	act, err := actor.NewSimple(c, acc)
	if err != nil {
		return fmt.Errorf("create actor: %w", err)
	}

	sender := acc.ScriptHash()

	token, err := compileContract(sender, path.Join(contractsDir, "token"))
	if err != nil {
		return fmt.Errorf("compile token contract: %w", err)
	}
	forwarder, err := compileContract(sender, path.Join(contractsDir, "forwarder"))
	if err != nil {
		return fmt.Errorf("compile forwarder contract: %w", err)
	}
	vault, err := compileContract(sender, path.Join(contractsDir, "vault"))
	if err != nil {
		return fmt.Errorf("compile vault contract: %w", err)
	}

	mgmt := management.New(act)

	for _, d := range []struct {
		contract *contractInfo
		data     any
	}{
		{token, []any{admin}},
		{forwarder, []any{admin}},
		{vault, []any{admin, forwarder.hash, token.hash}},
	} {
		l.Info("deploying contract",
			zap.String("name", d.contract.manifest.Name),
			zap.Stringer("hash", d.contract.hash))

		txHash, vub, err := mgmt.Deploy(d.contract.nef, d.contract.manifest, d.data)
		if err != nil {
			return fmt.Errorf("deploy %s contract: %w", d.contract.manifest.Name, err)
		}

		if _, err := act.Wait(txHash, vub, nil); err != nil {
			return fmt.Errorf("await %s contract deployment: %w", d.contract.manifest.Name, err)
		}

		l.Info("contract deployed",
			zap.String("name", d.contract.manifest.Name),
			zap.Stringer("tx", txHash))
	}

	return nil
}

type contractInfo struct {
	hash     util.Uint160
	nef      *nef.File
	manifest *manifest.Manifest
}

// compileContract compiles the contract from the given directory and builds
// its manifest from the config.yml next to the source.
func compileContract(sender util.Uint160, ctrPath string) (*contractInfo, error) {
	// nef.NewFile() cares about version a lot.
	if config.Version == "" {
		config.Version = "0.90.0-deploy"
	}

	ne, di, err := compiler.CompileWithOptions(ctrPath, nil, nil)
	if err != nil {
		return nil, err
	}

	conf, err := smartcontract.ParseContractConfig(path.Join(ctrPath, "config.yml"))
	if err != nil {
		return nil, err
	}

	o := &compiler.Options{}
	o.Name = conf.Name
	o.ContractEvents = conf.Events
	o.ContractSupportedStandards = conf.SupportedStandards
	o.Permissions = make([]manifest.Permission, len(conf.Permissions))
	for i := range conf.Permissions {
		o.Permissions[i] = manifest.Permission(conf.Permissions[i])
	}
	o.SafeMethods = conf.SafeMethods
	m, err := compiler.CreateManifest(di, o)
	if err != nil {
		return nil, err
	}

	return &contractInfo{
		hash:     state.CreateContractHash(sender, ne.Checksum, m.Name),
		nef:      ne,
		manifest: m,
	}, nil
}

// parseAddress decodes a base58-encoded Neo address into a script hash.
func parseAddress(s string) (util.Uint160, error) {
	raw, err := base58.Decode(s)
	if err != nil {
		return util.Uint160{}, err
	}
	if len(raw) != 25 {
		return util.Uint160{}, errors.New("invalid address length")
	}
	return util.Uint160DecodeBytesBE(raw[1:21])
}
