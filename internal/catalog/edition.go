package catalog

import (
	"fmt"
	"regexp"
	"strings"
)

// Edition is the one candidate shape every external payload variant is
// normalized into. Key doubles as the row identity and as the
// open_library_id submitted on book creation.
type Edition struct {
	Key             string
	Title           string
	Authors         []string
	CoverID         int
	CoverEditionKey string
	EditionKeys     []string
	// Pages is pre-filled by the ISBN lookup when the payload already
	// carries a page count, 0 means unknown.
	Pages int
}

// Resolve picks the identity key for a candidate: prefer the cover
// edition, then the first edition key, then the original key. Resolving
// an already-resolved candidate yields the same key, the function is
// re-applied on every render pass.
func (e *Edition) Resolve() string {
	if e.CoverEditionKey != "" {
		return e.CoverEditionKey
	}
	if len(e.EditionKeys) > 0 {
		return e.EditionKeys[0]
	}
	return e.Key
}

func (e *Edition) AuthorLine() string {
	if len(e.Authors) == 0 {
		return "Unknown author"
	}
	return strings.Join(e.Authors, ", ")
}

// editionKeyRegexp matches edition-shaped catalog keys, the only kind the
// detail endpoint has page data for. Work keys end in W and carry none.
var editionKeyRegexp = regexp.MustCompile(`^OL\d+M$`)

// IsEditionKey reports whether key names a specific edition.
func IsEditionKey(key string) bool {
	return editionKeyRegexp.MatchString(key)
}

// ValidISBN reports whether the trimmed input has a plausible ISBN size.
// Anything else must not trigger an ISBN lookup, even when non-empty.
func ValidISBN(isbn string) bool {
	n := len(strings.TrimSpace(isbn))
	return n == 10 || n == 13
}

// CoverURL returns the medium-size cover image location for a cover id.
func (c *Client) CoverURL(coverID int) string {
	if coverID == 0 {
		return ""
	}
	return fmt.Sprintf("%s/b/id/%d-M.jpg", c.coverURL, coverID)
}
