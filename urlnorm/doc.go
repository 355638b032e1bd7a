// Package urlnorm canonicalizes URLs into a stable, comparable form: the
// same logical URL always reduces to the same byte sequence regardless of
// case, encoding, parameter order, or incidental whitespace. It mirrors the
// permissive cleanup a browser applies to user input rather than enforcing a
// formal URI grammar, so malformed input is normalized as far as possible and
// never rejected. Every function is pure and idempotent.
package urlnorm
