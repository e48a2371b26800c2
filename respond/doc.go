// Package respond selects, cleans and labels the answer to a user query.
//
// A Responder asks its Searcher for the top candidates, cleans the best
// answer, falls back to the stored text when the cleaned version looks
// degenerate, and records the exchange in a ConversationLog. Queries the
// corpus cannot answer get the locale's out-of-context message; retrieval
// failures get its apology.
package respond
