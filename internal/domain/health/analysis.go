package health

import (
	"errors"
	"fmt"
	"strings"
)

const MaxMediaSize = 10 << 20

var (
	ErrInvalidMedia  = errors.New("invalid file type")
	ErrMediaTooLarge = errors.New("file too large")
)

// mockResults no dependen del input: el checker es un stub.
var mockResults = []AnalysisResult{
	{
		Condition:      "Skin Irritation",
		Confidence:     87,
		Severity:       SeverityMedium,
		Recommendation: "Apply pet-safe moisturizer and monitor for 48 hours. Prevent licking of affected area.",
		RequiresVet:    false,
	},
	{
		Condition:      "Possible Allergic Reaction",
		Confidence:     64,
		Severity:       SeverityMedium,
		Recommendation: "Check for recent changes in diet or environment. Monitor for worsening symptoms.",
		RequiresVet:    true,
	},
	{
		Condition:      "Mild Dermatitis",
		Confidence:     42,
		Severity:       SeverityLow,
		Recommendation: "Keep area clean and dry. Consider hypoallergenic diet if symptoms persist.",
		RequiresVet:    false,
	},
}

// ValidateMedia acepta image/* y video/* de hasta 10 MiB.
func ValidateMedia(m Media) (MediaKind, error) {
	ct := strings.ToLower(strings.TrimSpace(m.ContentType))
	var kind MediaKind
	switch {
	case strings.HasPrefix(ct, "image/"):
		kind = MediaPhoto
	case strings.HasPrefix(ct, "video/"):
		kind = MediaVideo
	default:
		return "", fmt.Errorf("%w: %q", ErrInvalidMedia, m.ContentType)
	}

	if m.Size > MaxMediaSize {
		return "", fmt.Errorf("%w: %d bytes", ErrMediaTooLarge, m.Size)
	}
	return kind, nil
}
