// Package issuetracker derives display labels for issue links attached to
// test results. GitHub and Jira URLs get a short tracker-native label;
// anything else falls back to the link's host.
package issuetracker

import (
	"errors"
	"fmt"
	"net/url"
	"regexp"
	"strings"
)

// ErrInvalidIssueURL is returned when the issue link is not a usable URL.
var ErrInvalidIssueURL = errors.New("invalid issue url")

var jiraKeyPattern = regexp.MustCompile(`^[A-Z][A-Z0-9]+-[0-9]+$`)

// Label derives a short display label for an issue link.
//
//	https://github.com/acme/shop/issues/42  -> acme/shop#42
//	https://acme.atlassian.net/browse/QA-17 -> QA-17
//	https://bugs.example.com/1234           -> bugs.example.com
func Label(raw string) (string, error) {
	u, err := url.Parse(strings.TrimSpace(raw))
	if err != nil || u.Host == "" || (u.Scheme != "http" && u.Scheme != "https") {
		return "", ErrInvalidIssueURL
	}

	segments := splitPath(u.Path)

	if strings.EqualFold(u.Host, "github.com") && len(segments) >= 4 && segments[2] == "issues" {
		return fmt.Sprintf("%s/%s#%s", segments[0], segments[1], segments[3]), nil
	}

	for i, seg := range segments {
		if seg == "browse" && i+1 < len(segments) && jiraKeyPattern.MatchString(segments[i+1]) {
			return segments[i+1], nil
		}
	}

	return u.Host, nil
}

func splitPath(p string) []string {
	var segments []string
	for _, seg := range strings.Split(p, "/") {
		if seg != "" {
			segments = append(segments, seg)
		}
	}
	return segments
}
