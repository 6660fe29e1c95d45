/*
Package token implements the NEP-17 fungible token consumed by the vault as
its bound asset. Issuance is centralized: the admin bound at deployment mints
and burns, everyone else only transfers. Transfers to contract accounts
invoke their onNEP17Payment callback, which is how the vault and the
forwarder receive value.

# Contract notifications

Transfer notification (NEP-17):

	Transfer
	  - name: from
	    type: Hash160
	  - name: to
	    type: Hash160
	  - name: amount
	    type: Integer

Mint notification:

	Mint
	  - name: to
	    type: Hash160
	  - name: amount
	    type: Integer

Burn notification:

	Burn
	  - name: from
	    type: Hash160
	  - name: amount
	    type: Integer
*/
package token

/*
Contract storage model.

# Summary
Key-value storage format:
  - 'a' -> interop.Hash160
    admin account
  - 'b' + account -> int
    token balance of the account
  - "TokenCirculation" -> int
    total amount of token in circulation
*/
