package workflow

import "strings"

// Variant selects one of the mutually exclusive pipelines the backend offers.
// Each variant carries its own status vocabulary and stage sequence; the
// phase-mapping contract is identical in shape across all three.
type Variant string

const (
	// VariantClassic is the single-path pipeline: one description in, the
	// backend generates prompts, images, and videos.
	VariantClassic Variant = "classic"
	// VariantFourStep is the upload-driven pipeline executed one explicit
	// step at a time (scene prompts, images, video prompts, videos).
	VariantFourStep Variant = "four-step"
	// VariantDirectVideo skips prompt and image generation: uploaded images
	// plus per-image prompts go straight to video synthesis.
	VariantDirectVideo Variant = "direct-video"
)

var variantOrder = map[Variant][]Status{
	VariantClassic: {
		StatusCreated,
		StatusPromptsGenerated,
		StatusImagesGenerated,
		StatusVideoPromptsGenerated,
		StatusVideosGenerated,
		StatusCompleted,
	},
	VariantFourStep: {
		StatusCreated,
		StatusImagePromptsGenerated,
		StatusImagesGenerated,
		StatusVideoPromptsGenerated,
		StatusVideosGenerated,
		StatusCompleted,
	},
	VariantDirectVideo: {
		StatusCreated,
		StatusVideoPromptsGenerated,
		StatusVideosGenerated,
		StatusCompleted,
	},
}

// ParseVariant normalizes a variant name.
func ParseVariant(value string) (Variant, bool) {
	switch Variant(strings.ToLower(strings.TrimSpace(value))) {
	case VariantClassic:
		return VariantClassic, true
	case VariantFourStep:
		return VariantFourStep, true
	case VariantDirectVideo:
		return VariantDirectVideo, true
	}
	return "", false
}

// Rank orders statuses along a variant's pipeline so callers can detect
// regressions. Higher means further along. Unknown statuses rank -1 so a
// garbled fetch never displaces a recognized one; failed ranks above every
// ordinary status because it ends the pipeline.
func Rank(variant Variant, status Status) int {
	normalized, _ := ParseStatus(string(status))
	if normalized == StatusFailed {
		return len(variantOrder[variant]) + 1
	}
	for i, candidate := range variantOrder[variant] {
		if candidate == normalized {
			return i
		}
	}
	return -1
}
