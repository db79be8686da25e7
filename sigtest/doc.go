/*
Package sigtest provides helpers for testing code that signs and verifies
multisig bundles.
*/
package sigtest
