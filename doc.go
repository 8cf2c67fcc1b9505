// Package crunch implements a small arithmetic calculator.
//
// Expressions combine decimal and hexadecimal literals with the binary
// operators + - * / % ^ and ~, where "a ~ b" is the a-th root of b.
// Parenthesized subexpressions nest to any (bounded) depth, and a leading
// + or - acts as a sign.
//
// There is no grammar in the usual sense. The tokenizer produces a flat
// sequence of literals, operator placeholders, and nested groups, and
// precedence comes from repeated scans over that sequence: each scan binds
// the leftmost operator of the current tier to its neighbors until the
// sequence collapses to a single tree. All operators associate to the left,
// including ^.
package crunch
