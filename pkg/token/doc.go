// Package token turns a raw User-Agent string into an ordered tree of
// products and comments that the rule engine addresses by position.
//
// A product is a whitespace-separated `name[/version]` unit optionally
// followed by a parenthesized, ';'- or ','-separated comment list. Each
// comment is either a bare value ("Windows NT 10.0"), a key=value or
// key:value pair ("rv:1.8.1.11"), or, rarely, a nested product sequence
// when the comment's own value looks like a parenthesized product list.
//
// Tokenize never errors and never panics. Malformed input — unbalanced
// parentheses, a dangling quote, an empty string — is closed out
// defensively rather than rejected, because the rest of the pipeline
// assumes every input produces a usable (if sparse) Tree.
package token
