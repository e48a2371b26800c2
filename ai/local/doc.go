// Package local provides an offline ai.AIProvider.
//
// The embedder hashes word tokens and CJK character bigrams into a fixed
// number of signed dimensions. It is deterministic, needs no model server and
// works for both English and Japanese corpora, at the cost of matching
// vocabulary rather than meaning.
//
//	provider, err := local.NewProvider(ai.NewConfig(ai.WithDimensions(512)))
package local
