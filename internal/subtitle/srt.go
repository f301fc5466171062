package subtitle

import (
	"bytes"
	"fmt"
	"html"
	"math"
	"strings"

	"github.com/microcosm-cc/bluemonday"

	"github.com/felixbrock/vidcaption/internal/domain"
)

var strict = bluemonday.StrictPolicy()

// FormatTimestamp renders seconds as an SRT timestamp (HH:MM:SS,mmm).
func FormatTimestamp(seconds float64) string {
	if seconds < 0 || math.IsNaN(seconds) {
		seconds = 0
	}

	// Round once on the whole value so 0.9996s becomes 00:00:01,000 rather than 00:00:00,1000.
	total := int64(math.Round(seconds * 1000))

	hours := total / 3_600_000
	total %= 3_600_000
	minutes := total / 60_000
	total %= 60_000
	secs := total / 1000
	millis := total % 1000

	return fmt.Sprintf("%02d:%02d:%02d,%03d", hours, minutes, secs, millis)
}

// CleanText strips markup from transcribed text. Subtitle renderers interpret
// tags such as <font> and <i>, so model output is reduced to plain text.
func CleanText(text string) string {
	sanitized := html.UnescapeString(strict.Sanitize(text))
	return strings.Join(strings.Fields(sanitized), " ")
}

// Generate renders segments as SRT cues. Segments without text after cleaning
// are skipped and the remaining cues numbered consecutively.
func Generate(segments []domain.Segment) []byte {
	var buf bytes.Buffer

	n := 0
	for _, segment := range segments {
		text := CleanText(segment.Text)
		if text == "" {
			continue
		}
		n++
		fmt.Fprintf(&buf, "%d\n", n)
		fmt.Fprintf(&buf, "%s --> %s\n", FormatTimestamp(segment.Start), FormatTimestamp(segment.End))
		buf.WriteString(text)
		buf.WriteString("\n\n")
	}

	return buf.Bytes()
}

const undetermined = "und"

// languageCodes maps the language names reported by Whisper to ISO 639-2/B.
var languageCodes = map[string]string{
	"arabic":     "ara",
	"chinese":    "chi",
	"czech":      "cze",
	"danish":     "dan",
	"dutch":      "dut",
	"english":    "eng",
	"finnish":    "fin",
	"french":     "fre",
	"german":     "ger",
	"greek":      "gre",
	"hebrew":     "heb",
	"hindi":      "hin",
	"hungarian":  "hun",
	"indonesian": "ind",
	"italian":    "ita",
	"japanese":   "jpn",
	"korean":     "kor",
	"norwegian":  "nor",
	"polish":     "pol",
	"portuguese": "por",
	"romanian":   "rum",
	"russian":    "rus",
	"spanish":    "spa",
	"swedish":    "swe",
	"thai":       "tha",
	"turkish":    "tur",
	"ukrainian":  "ukr",
	"vietnamese": "vie",
}

// LanguageCode turns a reported language into a code that is safe to use in
// file names and ffmpeg metadata. Known names map to ISO 639-2, anything else
// is reduced to lowercase letters and hyphens, and "und" is returned when
// nothing is left.
func LanguageCode(language string) string {
	language = strings.ToLower(strings.TrimSpace(language))
	if code, ok := languageCodes[language]; ok {
		return code
	}

	code := strings.Trim(strings.Map(func(r rune) rune {
		if (r >= 'a' && r <= 'z') || r == '-' {
			return r
		}
		return -1
	}, language), "-")

	if code == "" {
		return undetermined
	}
	return code
}

// FileName follows the sub-<video>.<language>.srt convention used for the
// subtitle track title.
func FileName(videoBase string, language string) string {
	return fmt.Sprintf("sub-%s.%s.srt", videoBase, LanguageCode(language))
}

// TrackTitle is the subtitle file name without its extension.
func TrackTitle(fileName string) string {
	return strings.TrimSuffix(fileName, ".srt")
}
