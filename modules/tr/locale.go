package tr

import (
	"os"
	"strings"

	"golang.org/x/text/language"
)

// Detect parses the POSIX locale environment variables (LC_ALL,
// LC_MESSAGES, LANG)
// into a BCP 47 tag, the same precedence order libc uses. The teacher's
// pkg/tr/locale package (not part of this retrieval) does the platform-
// specific version of this; trimerge3 only needs the portable part.
func Detect() (language.Tag, error) {
	for _, name := range []string{"LC_ALL", "LC_MESSAGES", "LANG"} {
		v := os.Getenv(name)
		if v == "" || v == "C" || v == "POSIX" {
			continue
		}
		v = strings.SplitN(v, ".", 2)[0]
		v = strings.ReplaceAll(v, "_", "-")
		if tag, err := language.Parse(v); err == nil {
			return tag, nil
		}
	}
	return language.AmericanEnglish, nil
}
