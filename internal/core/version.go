package core

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"

	"github.com/ZanzyTHEbar/errbuilder-go"
)

// parseVersion decomposes a version string into its numeric components
// by splitting on any run of non-digit characters, so "1.2.3-4" and
// "1.2.3.4" parse identically. This is deliberately not a semantic
// versioning parser.
func parseVersion(value string) ([]int, error) {
	fields := strings.FieldsFunc(value, func(r rune) bool {
		return !unicode.IsDigit(r)
	})
	if len(fields) == 0 {
		return nil, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg(fmt.Sprintf("malformed version %q", value))
	}
	components := make([]int, 0, len(fields))
	for _, field := range fields {
		number, err := strconv.Atoi(field)
		if err != nil {
			return nil, errbuilder.New().
				WithCode(errbuilder.CodeInvalidArgument).
				WithMsg(fmt.Sprintf("malformed version %q", value)).
				WithCause(err)
		}
		components = append(components, number)
	}
	return components, nil
}

// IsNewerCompatible reports whether installed can stand in for required
// without a reinstall. The check is asymmetric: a differing major
// component is never compatible in either direction, and within the
// same major line only a strictly newer installed version qualifies.
// Missing trailing components are absent, not zero; comparison stops
// at the shorter version. Callers pair this with an exact string
// equality check for the already-exact case.
func IsNewerCompatible(installed string, required string) (bool, error) {
	installedComponents, err := parseVersion(installed)
	if err != nil {
		return false, err
	}
	requiredComponents, err := parseVersion(required)
	if err != nil {
		return false, err
	}
	if installedComponents[0] != requiredComponents[0] {
		return false, nil
	}
	for i := 1; i < len(installedComponents) && i < len(requiredComponents); i++ {
		if installedComponents[i] == requiredComponents[i] {
			continue
		}
		return installedComponents[i] > requiredComponents[i], nil
	}
	return false, nil
}
