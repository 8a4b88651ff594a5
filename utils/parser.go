package utils

import (
	"regexp"
	"strconv"
	"strings"
)

// ratingRegex finds the first rating-like number in a string. Zoon renders
// ratings with either a comma or a dot decimal separator ("4,5", "4.5", "9").
var ratingRegex = regexp.MustCompile(`\d+[.,]\d+|\d+`)

// ParseRating pulls a decimal rating out of a text fragment such as
// "Рейтинг 4,5" or "Rating: 4,5 stars". The second return value reports
// whether a rating was present at all.
func ParseRating(text string) (float64, bool) {
	if text == "" {
		return 0, false
	}

	found := ratingRegex.FindString(text)
	if found == "" {
		return 0, false
	}

	cleaned := strings.ReplaceAll(found, ",", ".")
	rating, err := strconv.ParseFloat(cleaned, 64)
	if err != nil {
		return 0, false
	}
	return rating, true
}
