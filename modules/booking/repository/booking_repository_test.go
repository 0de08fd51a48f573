package repository

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

// Postgres refuses a locking clause when the select list contains an
// aggregate, so the pairing lock must fetch the raw rows and count them on
// the Go side.
func TestPairingLockQueryLocksPlainRows(t *testing.T) {
	q := strings.ToUpper(pairingLockQuery)
	assert.Contains(t, q, "FOR UPDATE")
	assert.NotContains(t, q, "COUNT(")
	assert.NotContains(t, q, "SUM(")
	assert.Contains(t, q, "MATCHED = FALSE")
}
