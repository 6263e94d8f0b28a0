package adapters

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

const sampleDescription = `Package: OhdsiRTools
Version: 1.7.0
Depends:
  R (>= 3.1.0)
Imports: jsonlite (>= 1.6),
  httr,
  RJSONIO
Suggests: testthat
Description: Premier package for OHDSI, used by the other packages
  to support routine development tasks.
`

func TestParseDescriptionFields(t *testing.T) {
	parsed := parseDescription(sampleDescription)

	assert.Equal(t, "OhdsiRTools", parsed.field("Package"))
	assert.Equal(t, "1.7.0", parsed.field("Version"))
	// Continuation lines fold into the owning field.
	assert.Equal(t, "R (>= 3.1.0)", parsed.field("Depends"))
}

func TestPackageListStripsConstraints(t *testing.T) {
	parsed := parseDescription(sampleDescription)

	assert.Equal(t, []string{"R"}, parsed.packageList("Depends"))
	assert.Equal(t, []string{"jsonlite", "httr", "RJSONIO"}, parsed.packageList("Imports"))
	assert.Equal(t, []string{"testthat"}, parsed.packageList("Suggests"))
}

func TestPackageListEmptyField(t *testing.T) {
	parsed := parseDescription("Package: tiny\nVersion: 0.1\n")
	assert.Nil(t, parsed.packageList("Imports"))
}
