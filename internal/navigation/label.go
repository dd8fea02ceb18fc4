package navigation

import (
	"net/url"
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// HomeLabel is the label of the root path.
const HomeLabel = "Home"

var separatorRun = regexp.MustCompile(`[-_]+`)

// Label derives the display string for a location. The root path is always
// HomeLabel; otherwise a non-empty title wins over the path-derived label.
func Label(pathname, title string) string {
	segments := pathSegments(pathname)
	if len(segments) == 0 {
		return HomeLabel
	}
	if title != "" {
		return title
	}
	return strings.Join(segments, " / ")
}

func pathSegments(pathname string) []string {
	// cases.Caser keeps state and is not safe to share across goroutines.
	caser := cases.Title(language.Und, cases.NoLower)

	var out []string
	for _, raw := range strings.Split(pathname, "/") {
		if raw == "" {
			continue
		}
		segment, err := url.PathUnescape(raw)
		if err != nil {
			segment = raw
		}
		words := strings.Fields(separatorRun.ReplaceAllString(segment, " "))
		if len(words) == 0 {
			continue
		}
		for i, w := range words {
			words[i] = upperFirst(caser, w)
		}
		out = append(out, strings.Join(words, " "))
	}
	return out
}

// upperFirst title-cases the first rune of w when it is a letter and leaves
// the rest of the word untouched.
func upperFirst(caser cases.Caser, w string) string {
	r, size := utf8.DecodeRuneInString(w)
	if !unicode.IsLetter(r) {
		return w
	}
	return caser.String(w[:size]) + w[size:]
}
