package helper

import (
	"context"
	"fmt"
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/google/uuid"
	"golang.org/x/text/unicode/norm"
	"gorm.io/gorm"
)

var (
	reNonAlnum = regexp.MustCompile(`[^a-z0-9]+`)
	reHyphen   = regexp.MustCompile(`-+`)
)

// Slugify turns free text into a [a-z0-9-] slug: strips diacritics,
// collapses dashes, trims the ends and enforces maxLen. A title that
// normalizes to nothing gets a random 8-char token so slugs are never
// empty.
func Slugify(s string, maxLen int) string {
	if maxLen <= 0 {
		maxLen = 100
	}
	s = strings.ToLower(strings.TrimSpace(s))

	// Strip diacritics (é → e, etc.)
	var buf []rune
	for _, r := range norm.NFD.String(s) {
		if unicode.Is(unicode.Mn, r) {
			continue
		}
		buf = append(buf, r)
	}
	s = string(buf)

	s = reNonAlnum.ReplaceAllString(s, "-")
	s = reHyphen.ReplaceAllString(s, "-")
	s = strings.Trim(s, "-")

	if s == "" {
		s = RandomSlugToken()
	}
	if utf8.RuneCountInString(s) > maxLen {
		rs := []rune(s)
		s = string(rs[:maxLen])
		s = strings.Trim(s, "-")
	}
	if s == "" {
		s = RandomSlugToken()
	}
	return s
}

// RandomSlugToken is the fallback for empty titles.
func RandomSlugToken() string {
	return strings.ReplaceAll(uuid.NewString(), "-", "")[:8]
}

// SlugTakenFn reports whether a candidate slug is taken. Implementations
// must exclude the row being edited.
type SlugTakenFn func(ctx context.Context, slug string) (bool, error)

// EnsureUniqueSlug makes base unique against taken, case handled by the
// caller (base is already lowercase). On collision it appends -2, -3, …
// re-truncating the base so base+suffix stays within maxLen.
func EnsureUniqueSlug(ctx context.Context, base string, maxLen int, taken SlugTakenFn) (string, error) {
	if maxLen <= 0 {
		maxLen = 100
	}
	if utf8.RuneCountInString(base) > maxLen {
		base = strings.Trim(string([]rune(base)[:maxLen]), "-")
	}
	if base == "" {
		base = RandomSlugToken()
	}

	isTaken, err := taken(ctx, base)
	if err != nil {
		return "", err
	}
	if !isTaken {
		return base, nil
	}

	for n := 2; n < 10000; n++ {
		suffix := fmt.Sprintf("-%d", n)
		candidate := trimForSuffix(base, suffix, maxLen) + suffix
		isTaken, err = taken(ctx, candidate)
		if err != nil {
			return "", err
		}
		if !isTaken {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("could not find a unique slug for %q", base)
}

// trimForSuffix cuts base so base+suffix fits within maxLen.
func trimForSuffix(base, suffix string, maxLen int) string {
	keep := maxLen - len(suffix)
	if keep < 1 {
		keep = 1
	}
	rs := []rune(base)
	if len(rs) > keep {
		rs = rs[:keep]
	}
	out := strings.Trim(string(rs), "-")
	if out == "" {
		out = "x"
	}
	return out
}

// SlugTakenInTable adapts a GORM table/column to a SlugTakenFn,
// excluding excludeID when non-empty (update path).
func SlugTakenInTable(db *gorm.DB, table, column, idColumn, excludeID string) SlugTakenFn {
	return func(ctx context.Context, slug string) (bool, error) {
		q := db.WithContext(ctx).Table(table).
			Where(fmt.Sprintf("LOWER(%s) = LOWER(?)", column), slug)
		if excludeID != "" {
			q = q.Where(fmt.Sprintf("%s <> ?", idColumn), excludeID)
		}
		var cnt int64
		if err := q.Count(&cnt).Error; err != nil {
			return false, err
		}
		return cnt > 0, nil
	}
}
