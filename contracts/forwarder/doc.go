/*
Package forwarder implements Forwarder contract.

Forwarder contract is a stateless relay that lets a single admin account fund
vault deposits on behalf of arbitrary accounts. The admin pays a NEP-17
transfer into the forwarder naming the target vault and the account to
credit; the forwarder re-attaches the exact amount to a transfer into the
vault within the same transaction. Vaults configured to trust this forwarder
credit the named account instead of the payer.

The contract holds no persistent balance: either the relayed amount reaches
the vault and the vault accepts it, or the whole transaction is aborted and
the admin keeps the funds. Payments from any other account are rejected
before funds settle.

# Contract notifications

Relay notification:

	Relay
	  - name: vault
	    type: Hash160
	  - name: to
	    type: Hash160
	  - name: amount
	    type: Integer
*/
package forwarder

/*
Contract storage model.

# Summary
Key-value storage format:
  - 'a' -> interop.Hash160
    admin account

No other data is stored in the contract.
*/
