/*
> Multisignature (multi-signature) is a digital signature scheme which allows a group of users to sign a single document.
https://en.wikipedia.org/wiki/Multisignature

This multisig package verifies that enough owners of an account signed a
message hash. An account is described by an `OwnerSet`: a list of stark
keys together with a threshold.

A signature bundle is a flat list of felts made of `(stark_key, r, s)`
triples. The triples must be strictly sorted by stark key, which makes the
bundle a set: no owner can be counted twice. The `Verifier` rejects the
whole bundle on the first violation found.

A `Registry` holds the current owner set of a live account. Each
verification works on a single snapshot taken when it starts, so owner set
updates never interleave with a running verification.

An `Initializer` can be instrumented to define accounts in the Genesis file
and load them on startup. `OwnerSetBucket` persists owner sets in a KVStore.
*/
package multisig
