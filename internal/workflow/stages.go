package workflow

import "context"

// Trigger invokes one backend pipeline stage for a project.
type Trigger func(ctx context.Context, projectID string) error

// Stage is one edge of a variant's pipeline graph: when a project sits at
// Entry, firing Trigger asks the backend to advance it toward Result.
type Stage struct {
	Name    string
	Entry   Status
	Result  Status
	Trigger Trigger
}

// Triggers supplies the backend calls a stage graph binds to. Commands wire
// this from the API client so the graph itself stays declarative.
type Triggers struct {
	GenerateImages       Trigger
	GenerateVideoPrompts Trigger
	GenerateVideos       Trigger
	ExecuteStep          func(ctx context.Context, projectID string, step int) error
	ExecuteDirectVideo   Trigger
}

// StagesFor builds the ordered stage graph for a variant.
func StagesFor(variant Variant, triggers Triggers) []Stage {
	step := func(n int) Trigger {
		return func(ctx context.Context, projectID string) error {
			if triggers.ExecuteStep == nil {
				return nil
			}
			return triggers.ExecuteStep(ctx, projectID, n)
		}
	}

	switch variant {
	case VariantFourStep:
		return []Stage{
			{Name: "generate images", Entry: StatusImagePromptsGenerated, Result: StatusImagesGenerated, Trigger: step(2)},
			{Name: "generate video prompts", Entry: StatusImagesGenerated, Result: StatusVideoPromptsGenerated, Trigger: step(3)},
			{Name: "generate videos", Entry: StatusVideoPromptsGenerated, Result: StatusVideosGenerated, Trigger: step(4)},
		}
	case VariantDirectVideo:
		return []Stage{
			{Name: "generate videos", Entry: StatusCreated, Result: StatusVideosGenerated, Trigger: triggers.ExecuteDirectVideo},
			{Name: "generate videos", Entry: StatusVideoPromptsGenerated, Result: StatusVideosGenerated, Trigger: triggers.ExecuteDirectVideo},
		}
	default:
		// Some backend builds report image_prompts_generated where older ones
		// report prompts_generated; both enable the same trigger.
		return []Stage{
			{Name: "generate images", Entry: StatusPromptsGenerated, Result: StatusImagesGenerated, Trigger: triggers.GenerateImages},
			{Name: "generate images", Entry: StatusImagePromptsGenerated, Result: StatusImagesGenerated, Trigger: triggers.GenerateImages},
			{Name: "generate video prompts", Entry: StatusImagesGenerated, Result: StatusVideoPromptsGenerated, Trigger: triggers.GenerateVideoPrompts},
			{Name: "generate videos", Entry: StatusVideoPromptsGenerated, Result: StatusVideosGenerated, Trigger: triggers.GenerateVideos},
		}
	}
}

// NextStage returns the stage whose entry matches the project's current
// status, if the variant defines one.
func NextStage(stages []Stage, status Status) (Stage, bool) {
	normalized, _ := ParseStatus(string(status))
	for _, stage := range stages {
		if stage.Entry == normalized {
			return stage, true
		}
	}
	return Stage{}, false
}
