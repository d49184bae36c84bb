package workflow

// Action identifies the next user-invocable trigger for a project, if any.
type Action string

const (
	ActionNone                 Action = ""
	ActionGenerateImages       Action = "generate-images"
	ActionGenerateVideoPrompts Action = "generate-video-prompts"
	ActionGenerateVideos       Action = "generate-videos"
	ActionExecuteStep          Action = "execute-step"
	ActionExecuteDirectVideo   Action = "execute-direct-video"
	ActionViewResults          Action = "view-results"
)

// Phase is the presentation of a status: a human label, a progress estimate,
// the next enabled action, and whether the pipeline has finished.
type Phase struct {
	Label    string
	Percent  int
	Action   Action
	Terminal bool
}

// processingPhase is the defensive default for any status the client does not
// recognize. Rendering it instead of failing is a deliberate contract: the
// backend may grow vocabulary the client has not learned yet.
var processingPhase = Phase{Label: "processing", Percent: 50}

var classicPhases = map[Status]Phase{
	StatusCreated:               {Label: "generating prompts", Percent: 10},
	StatusPromptsGenerated:      {Label: "prompts ready", Percent: 30, Action: ActionGenerateImages},
	StatusImagePromptsGenerated: {Label: "prompts ready", Percent: 30, Action: ActionGenerateImages},
	StatusImagesGenerated:       {Label: "images ready", Percent: 70, Action: ActionGenerateVideoPrompts},
	StatusVideoPromptsGenerated: {Label: "video prompts ready", Percent: 85, Action: ActionGenerateVideos},
	StatusVideosGenerated:       {Label: "done", Percent: 100, Action: ActionViewResults, Terminal: true},
	StatusCompleted:             {Label: "done", Percent: 100, Action: ActionViewResults, Terminal: true},
	StatusFailed:                {Label: "failed", Percent: 0, Terminal: true},
}

var fourStepPhases = map[Status]Phase{
	StatusCreated:               {Label: "generating scene prompts", Percent: 10},
	StatusImagePromptsGenerated: {Label: "scene prompts ready", Percent: 25, Action: ActionExecuteStep},
	StatusImagesGenerated:       {Label: "scene images ready", Percent: 50, Action: ActionExecuteStep},
	StatusVideoPromptsGenerated: {Label: "video prompts ready", Percent: 75, Action: ActionExecuteStep},
	StatusVideosGenerated:       {Label: "done", Percent: 100, Action: ActionViewResults, Terminal: true},
	StatusCompleted:             {Label: "done", Percent: 100, Action: ActionViewResults, Terminal: true},
	StatusFailed:                {Label: "failed", Percent: 0, Terminal: true},
}

var directVideoPhases = map[Status]Phase{
	StatusCreated:               {Label: "awaiting video generation", Percent: 20, Action: ActionExecuteDirectVideo},
	StatusVideoPromptsGenerated: {Label: "video prompts ready", Percent: 60, Action: ActionExecuteDirectVideo},
	StatusVideosGenerated:       {Label: "done", Percent: 100, Action: ActionViewResults, Terminal: true},
	StatusCompleted:             {Label: "done", Percent: 100, Action: ActionViewResults, Terminal: true},
	StatusFailed:                {Label: "failed", Percent: 0, Terminal: true},
}

var variantPhases = map[Variant]map[Status]Phase{
	VariantClassic:     classicPhases,
	VariantFourStep:    fourStepPhases,
	VariantDirectVideo: directVideoPhases,
}

// PhaseFor maps a raw status to its presentation phase. The function is total:
// every input, including unrecognized strings and unknown variants, yields a
// non-empty label and a defined action; it never panics.
func PhaseFor(variant Variant, status Status) Phase {
	phases, ok := variantPhases[variant]
	if !ok {
		phases = classicPhases
	}
	normalized, _ := ParseStatus(string(status))
	if phase, ok := phases[normalized]; ok {
		return phase
	}
	return processingPhase
}
