package indexes

// Aliases exposing unexported helpers to the external indexes_test package.
type ExistingIndex = existingIndex

var (
	IsDuplicateKeyErr = isDuplicateKeyErr
	EnsureIndexSet    = ensureIndexSet
	KeySig            = keySig
)
