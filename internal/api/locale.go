package api

import (
	"net/http"
	"strings"

	"golang.org/x/text/language"
)

// localeResolver picks the display locale for prices from Accept-Language.
type localeResolver struct {
	supported []language.Tag
	matcher   language.Matcher
}

func newLocaleResolver(fallback language.Tag) *localeResolver {
	supported := []language.Tag{fallback}
	for _, tag := range []language.Tag{
		language.AmericanEnglish,
		language.BritishEnglish,
		language.German,
		language.French,
		language.Spanish,
		language.Italian,
	} {
		if tag != fallback {
			supported = append(supported, tag)
		}
	}
	return &localeResolver{supported: supported, matcher: language.NewMatcher(supported)}
}

func (l *localeResolver) Resolve(r *http.Request) language.Tag {
	accept := strings.TrimSpace(r.Header.Get("Accept-Language"))
	if accept == "" {
		return l.supported[0]
	}
	tags, _, err := language.ParseAcceptLanguage(accept)
	if err != nil || len(tags) == 0 {
		return l.supported[0]
	}
	_, index, confidence := l.matcher.Match(tags...)
	if confidence == language.No {
		return l.supported[0]
	}
	return l.supported[index]
}
