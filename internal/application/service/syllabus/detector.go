package syllabus

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/maximilianstepf/Tim-Chatbot-Backend/internal/types"
)

// courseContextPattern matches organizational-question markers, German and
// English. This is a heuristic trigger, not a language classifier; false
// positives and negatives are acceptable.
var courseContextPattern = regexp.MustCompile(`(?i)\b(` +
	`exam|prüfung|klausur|` +
	`deadline|frist|abgabe|` +
	`registration|anmeldung|anmelden|` +
	`grading|grade|note|benotung|` +
	`attendance|anwesenheit|` +
	`room|raum|hörsaal|` +
	`date|datum|termin|schedule|zeitplan|` +
	`time|uhrzeit|wann|when` +
	`)\b`)

// Detect decides which known course the text refers to. The text is
// lowercased and each course's alias set (course name plus declared
// aliases, lowercased) is searched in it. An alias only counts when its
// occurrence is delimited by non-alphanumerics, so a course named "A"
// does not match inside "exam". The first match in index order wins;
// there is no scoring and no longest-match preference. Returns
// ("", false) when no course matches or index is nil.
func Detect(index *types.CourseIndex, text string) (string, bool) {
	if index == nil {
		return "", false
	}

	normalized := strings.ToLower(text)
	for _, course := range index.Courses {
		aliases := make([]string, 0, len(course.Meta.Aliases)+1)
		aliases = append(aliases, course.Name)
		aliases = append(aliases, course.Meta.Aliases...)

		for _, alias := range aliases {
			alias = strings.ToLower(strings.TrimSpace(alias))
			if alias != "" && containsAlias(normalized, alias) {
				return course.Name, true
			}
		}
	}
	return "", false
}

// containsAlias reports whether alias occurs in text with no letter or
// digit directly adjacent on either side
func containsAlias(text, alias string) bool {
	for start := 0; start <= len(text)-len(alias); {
		i := strings.Index(text[start:], alias)
		if i < 0 {
			return false
		}
		i += start
		if boundedAt(text, i, len(alias)) {
			return true
		}
		start = i + 1
	}
	return false
}

func boundedAt(text string, i, n int) bool {
	if i > 0 {
		before, _ := utf8.DecodeLastRuneInString(text[:i])
		if isWordRune(before) {
			return false
		}
	}
	if i+n < len(text) {
		after, _ := utf8.DecodeRuneInString(text[i+n:])
		if isWordRune(after) {
			return false
		}
	}
	return true
}

func isWordRune(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r)
}

// NeedsCourseContext reports whether the text looks like an organizational
// question that would need syllabus grounding to answer
func NeedsCourseContext(text string) bool {
	return courseContextPattern.MatchString(text)
}
