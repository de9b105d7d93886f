package maven

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"golang.org/x/mod/semver"
)

// ErrMalformedVersion is returned when a version has no numeric dot form
var ErrMalformedVersion = errors.New("malformed version")

var versionPattern = regexp.MustCompile(`^\D*(\d+(?:\.\d+)+)\D*$`)

// NormalizeVersion reduces a raw version to its numeric dot form: 18.0-jre gives 18.0
func NormalizeVersion(raw string) (string, error) {
	m := versionPattern.FindStringSubmatch(strings.TrimSpace(raw))
	if m == nil {
		return "", fmt.Errorf("%w: %q", ErrMalformedVersion, raw)
	}
	return m[1], nil
}

// CompareVersions compares two normalized versions, missing segments count as 0
func CompareVersions(a, b string) int {
	va, vb := "v"+a, "v"+b
	if semver.IsValid(va) && semver.IsValid(vb) {
		return semver.Compare(va, vb)
	}
	sa, sb := strings.Split(a, "."), strings.Split(b, ".")
	for i := 0; i < len(sa) || i < len(sb); i++ {
		na, nb := segment(sa, i), segment(sb, i)
		if na != nb {
			if na < nb {
				return -1
			}
			return 1
		}
	}
	return 0
}

func segment(segments []string, i int) int {
	if i >= len(segments) {
		return 0
	}
	n, _ := strconv.Atoi(segments[i])
	return n
}
