// Package naming turns free-form display strings into canonical entry names.
//
// Normalize replaces '-' and '_' with spaces, drops everything that is not
// an ASCII letter or whitespace, and title-cases each remaining word:
//
//	naming.Normalize("Riz@z RISO00tto!")   // "Rizz Risotto", true
//	naming.Normalize("meatball_-_sub")     // "Meatball Sub", true
//	naming.Normalize("123 !!")             // "", false
//
// The result is only a candidate name; it is never checked against a store.
package naming
