package testutil

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

// AssertBound checks the log output within a HarnessResult to confirm that a
// node's binding was attached. It keys on the structured log fields, which
// makes the tests resilient to message-text changes.
func AssertBound(t *testing.T, result *HarnessResult, nodeID, target string) {
	t.Helper()

	expected := fmt.Sprintf("node=%s target=%s", nodeID, target)
	require.True(t,
		strings.Contains(result.LogOutput, expected),
		"expected binding log for node %q and target %q was not found in logs", nodeID, target,
	)
}
