// Package whizz implements a small arithmetic calculator with variables.
//
// Input is tokenized, parsed by recursive descent into an expression tree,
// and evaluated as IEEE-754 doubles against a session dictionary. The
// grammar covers + - * / ^ with the usual precedence, unary minus,
// parentheses, and assignment: "x = 3 * (y = 2)" binds y and x and yields 6.
//
// The variable environment is an open-addressing hash table (Dict) owned by
// the caller and passed into every evaluation, so several independent
// sessions can share one process.
package whizz
