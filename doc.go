/*
Package starksig declares the types shared by all starksig packages: the
STARK field element (Felt), the genesis Options, the key/value store
interfaces and the Valid sentinel returned by a successful signature check.

An account is guarded by a set of owners, each identified by a stark key,
and a threshold. A message hash is approved when a bundle of signatures,
one per owner and strictly ordered by the owner key, reaches the threshold.
The verification logic lives in x/multisig, the signature scheme in crypto
and the storage implementations in store.
*/
package starksig
