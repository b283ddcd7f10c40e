package compare

import (
	"fmt"

	"github.com/lyraproj/issue/issue"
	"github.com/lyraproj/query/errors"
	"github.com/lyraproj/semver/semver"
)

// Versions compares two strings as semantic versions. Precedence follows the semver rules, so
// `1.10.0` sorts after `1.9.0` and a pre-release sorts before its release. The function panics with
// a QUERY_PARSE_ERROR when either string is not a valid version.
func Versions(a, b string) int {
	va, err := semver.ParseVersion(a)
	checkParsed(`version`, err)
	vb, err := semver.ParseVersion(b)
	checkParsed(`version`, err)
	return va.CompareTo(vb)
}

// InVersionRange returns a predicate that is true for version strings included in the given range,
// e.g. `>=1.2.0 <2.0.0`. The range is parsed immediately.
func InVersionRange(rng string) func(string) bool {
	r, err := semver.ParseVersionRange(rng)
	checkParsed(`version range`, err)
	if r == nil {
		// the parser recovers from some malformed ranges without reporting them
		checkParsed(`version range`, fmt.Errorf(`'%s' is not a valid version range`, rng))
	}
	return func(s string) bool {
		v, err := semver.ParseVersion(s)
		checkParsed(`version`, err)
		return r.Includes(v)
	}
}

func checkParsed(what string, err error) {
	if err != nil {
		panic(errors.Wrap(errors.ParseError, err, issue.H{`language`: what, `detail`: err.Error()}))
	}
}
