package docproc

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegexRedactor_Emails(t *testing.T) {
	r := NewRegexRedactor(nil)

	got, err := r.Redact("Reach me at jane.doe+jobs@example.com or jd@corp.io.")

	require.NoError(t, err)
	assert.Equal(t, "Reach me at [EMAIL] or [EMAIL].", got)
}

func TestRegexRedactor_Phones(t *testing.T) {
	r := NewRegexRedactor(nil)

	got, err := r.Redact("Cell: +977 984-123-4567, office (01) 442 1234.")

	require.NoError(t, err)
	assert.Contains(t, got, "[PHONE]")
	assert.NotContains(t, got, "984-123-4567")
}

func TestRegexRedactor_YearsAreNotPhones(t *testing.T) {
	r := NewRegexRedactor(nil)

	got, err := r.Redact("Worked at Acme from 2019 to 2023.")

	require.NoError(t, err)
	assert.Equal(t, "Worked at Acme from 2019 to 2023.", got)
}

func TestRegexRedactor_Allowlist(t *testing.T) {
	r := NewRegexRedactor([]string{"careers@example.com"})

	got, err := r.Redact("Apply via careers@example.com, not jane@gmail.com.")

	require.NoError(t, err)
	assert.Contains(t, got, "careers@example.com")
	assert.Contains(t, got, "[EMAIL]")
	assert.NotContains(t, got, "jane@gmail.com")
}

func TestRegexRedactor_AllowlistedDomain(t *testing.T) {
	r := NewRegexRedactor([]string{"example.com"})

	got, err := r.Redact("hr@example.com forwarded it to jane@gmail.com")

	require.NoError(t, err)
	assert.Contains(t, got, "hr@example.com")
	assert.NotContains(t, got, "jane@gmail.com")
}
