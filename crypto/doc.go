/*
Package crypto implements ECDSA over the STARK curve, the signature scheme
used by Starknet accounts.

A public key is identified by its stark key: the x coordinate of the public
point. Verification accepts a signature under either point that shares that
x coordinate.
*/
package crypto
