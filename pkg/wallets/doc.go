// Package wallets defines the wallet catalog data model: the wire records
// published by the remote wallets list, the normalized Wallet descriptor with
// its optional bridge facets, and the operations that turn one into the other.
//
// A catalog response is validated as a whole against an embedded JSON Schema
// before any field is read. Valid records are converted in one step into
// Wallet values, querying an Injector for the in-page bridge state, and the
// result is merged by name with the wallets the Injector detected on its own.
package wallets
