package msa

import "errors"

// ErrCheckMismatch indicates a gap-stripped MSA row did not reproduce the
// original sequence it was checked against. Diagnostic-only: it signals a
// bug in alignment incorporation, never a recoverable runtime condition.
var ErrCheckMismatch = errors.New("msa: gap-stripped row does not match original sequence")
