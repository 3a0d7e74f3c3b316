package notifications

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestApplicantDecisionMessage(t *testing.T) {
	subject, body, ok := ApplicantDecisionMessage("accepted")
	assert.True(t, ok)
	assert.Contains(t, subject, "Approved")
	assert.True(t, strings.Contains(body, "approved"))

	subject, body, ok = ApplicantDecisionMessage("rejected")
	assert.True(t, ok)
	assert.Contains(t, subject, "Update")
	assert.True(t, strings.Contains(body, "not approved"))

	// Non-decision statuses carry no applicant-facing message.
	for _, status := range []string{"pending", "reviewed", "", "bogus"} {
		_, _, ok = ApplicantDecisionMessage(status)
		assert.False(t, ok, "status %q", status)
	}
}
