/*
Package vault implements Vault contract.

Vault contract holds custody of exactly one NEP-17 asset and tracks, per
account, the amount its owner is entitled to withdraw. The binding of the
admin account, the trusted forwarder contract and the asset contract is
supplied once at deployment and never changes afterwards.

Deposits are NEP-17 transfers to the contract address. A transfer with no
data credits the payer. A transfer carrying a Hash160 in data credits that
account instead, but only the trusted forwarder contract may pay for such
deposits. Transfers of any other asset are aborted, which rolls the whole
transaction back.

Withdrawals debit the deposit entry before the asset leaves custody, so a
reentrant withdrawal issued from the receiving side always observes the
already-debited balance.

# Contract notifications

Deposit notification:

	Deposit
	  - name: from
	    type: Hash160
	  - name: to
	    type: Hash160
	  - name: amount
	    type: Integer

Withdraw notification:

	Withdraw
	  - name: user
	    type: Hash160
	  - name: amount
	    type: Integer
*/
package vault

/*
Contract storage model.

# Summary
Key-value storage format:
  - 'a' -> interop.Hash160
    admin account
  - 'f' -> interop.Hash160
    trusted forwarder contract
  - 't' -> interop.Hash160
    bound NEP-17 asset contract
  - 'd' + account -> int
    deposit balance of the account

# Deposits
Contract stores the withdrawable entitlement of each account. A missing
entry means zero balance; entries are overwritten on debit, never removed.
*/
