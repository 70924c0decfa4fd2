package utils

import (
	"strings"
	"unicode"

	"github.com/mozillazg/go-pinyin"
)

// PersonSlug turns a display name into a lower-case ASCII identifier usable in e-mail addresses
// and file names. Han characters are romanised with pinyin.
func PersonSlug(name string) string {
	var b strings.Builder

	args := pinyin.NewArgs()
	for _, r := range name {
		switch {
		case unicode.Is(unicode.Han, r):
			for _, p := range pinyin.LazyPinyin(string(r), args) {
				b.WriteString(p)
			}
		case r < unicode.MaxASCII && (unicode.IsLetter(r) || unicode.IsDigit(r)):
			b.WriteRune(unicode.ToLower(r))
		case r == ' ' || r == '-' || r == '_' || r == '.':
			if b.Len() > 0 && !strings.HasSuffix(b.String(), "-") {
				b.WriteByte('-')
			}
		}
	}

	return strings.Trim(b.String(), "-")
}
