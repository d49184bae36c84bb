package api

// Project is the server-owned record for one generation request. The client
// caches snapshots but never mutates fields; every fetch wholesale-replaces
// the previous copy.
type Project struct {
	ProjectID   string   `json:"project_id"`
	Description string   `json:"description"`
	Status      string   `json:"status"`
	Prompts     []string `json:"prompts,omitempty"`
	Images      []string `json:"images,omitempty"`
	Videos      []string `json:"videos,omitempty"`
	CreatedAt   string   `json:"created_at"`

	// Fields populated by the dog-upload flavor of project creation.
	DogImagePath string       `json:"dog_image_path,omitempty"`
	DogAnalysis  *DogAnalysis `json:"dog_analysis,omitempty"`
	PromptType   string       `json:"prompt_type,omitempty"`

	// Fields specific to the four-step and direct-video workflow variants.
	StepPrompts        []string `json:"step_prompts,omitempty"`
	GeneratedImages    []string `json:"generated_images,omitempty"`
	VideoPrompt        string   `json:"video_prompt,omitempty"`
	SelectedImageIndex *int     `json:"selected_image_index,omitempty"`
	FinalVideoPath     string   `json:"final_video_path,omitempty"`
	CurrentStep        int      `json:"current_step,omitempty"`
}

// DogAnalysis is the image-analysis result attached to dog-upload projects.
type DogAnalysis struct {
	Breed           string   `json:"breed"`
	Characteristics []string `json:"characteristics"`
	Confidence      float64  `json:"confidence"`
}

// PromptTypeExample is one worked example attached to a content category.
type PromptTypeExample struct {
	Title       string `json:"title"`
	Prompt      string `json:"prompt"`
	Description string `json:"description"`
}

// PromptType describes one content category the backend can generate for.
type PromptType struct {
	Type                  string              `json:"type"`
	Name                  string              `json:"name"`
	Description           string              `json:"description"`
	Icon                  string              `json:"icon"`
	Examples              []PromptTypeExample `json:"examples,omitempty"`
	SuggestedDescriptions []string            `json:"suggested_descriptions,omitempty"`
	Features              []string            `json:"features,omitempty"`
	BestFor               []string            `json:"best_for,omitempty"`
	Tips                  []string            `json:"tips,omitempty"`
}

// DogUploadResult is the response to a standalone dog-image upload.
type DogUploadResult struct {
	ImagePath string      `json:"image_path"`
	Analysis  DogAnalysis `json:"analysis"`
}

type listResponse struct {
	Projects []Project `json:"projects"`
}

type promptTypesResponse struct {
	PromptTypes []PromptType `json:"prompt_types"`
}
