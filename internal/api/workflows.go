package api

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strconv"
	"strings"
)

// NewWorkflowRequest is the payload for creating a four-step workflow
// project. StyleOptions is serialized as a JSON form field the way the
// backend expects it.
type NewWorkflowRequest struct {
	Description  string
	StyleOptions string
	// ReferenceImagePath optionally seeds scene generation with an uploaded
	// reference photo.
	ReferenceImagePath string
}

// CreateNewWorkflow creates a four-step workflow project via multipart form.
func (c *Client) CreateNewWorkflow(ctx context.Context, req NewWorkflowRequest) (*Project, error) {
	if strings.TrimSpace(req.Description) == "" {
		return nil, errors.New("description must not be empty")
	}
	fields := map[string]string{"description": req.Description}
	if strings.TrimSpace(req.StyleOptions) != "" {
		fields["style_options"] = req.StyleOptions
	}
	files := map[string]string{}
	if strings.TrimSpace(req.ReferenceImagePath) != "" {
		files["file"] = req.ReferenceImagePath
	}
	body, formType, err := buildMultipart(fields, files)
	if err != nil {
		return nil, err
	}
	var project Project
	if err := c.postMultipart(ctx, "/api/projects/create-new-workflow", formType, body, &project); err != nil {
		return nil, fmt.Errorf("create workflow project: %w", err)
	}
	return &project, nil
}

// DirectVideoRequest carries the uploads for a direct image-to-video project.
// ImagePaths and Prompts are parallel: prompt i animates image i.
type DirectVideoRequest struct {
	ImagePaths []string
	Prompts    []string
}

// Validate enforces the client-side contract before any network call: at
// least one image, and exactly one prompt per image.
func (r DirectVideoRequest) Validate() error {
	if len(r.ImagePaths) == 0 {
		return errors.New("at least one image is required")
	}
	if len(r.Prompts) != len(r.ImagePaths) {
		return fmt.Errorf("got %d images but %d prompts; each image needs exactly one prompt", len(r.ImagePaths), len(r.Prompts))
	}
	for i, prompt := range r.Prompts {
		if strings.TrimSpace(prompt) == "" {
			return fmt.Errorf("prompt %d is empty", i+1)
		}
	}
	return nil
}

// CreateDirectVideo creates a direct-video project from uploaded images and
// their per-image prompts. The request is validated before anything is sent.
func (c *Client) CreateDirectVideo(ctx context.Context, req DirectVideoRequest) (*Project, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	fields := map[string]string{}
	files := map[string]string{}
	for i, path := range req.ImagePaths {
		files["image_"+strconv.Itoa(i+1)] = path
		fields["prompt_"+strconv.Itoa(i+1)] = req.Prompts[i]
	}
	body, formType, err := buildMultipart(fields, files)
	if err != nil {
		return nil, err
	}
	var project Project
	if err := c.postMultipart(ctx, "/api/projects/create-direct-video", formType, body, &project); err != nil {
		return nil, fmt.Errorf("create direct-video project: %w", err)
	}
	return &project, nil
}

// ExecuteWorkflowStep runs one numbered stage of the four-step workflow and
// returns the updated project snapshot.
func (c *Client) ExecuteWorkflowStep(ctx context.Context, projectID string, step int) (*Project, error) {
	projectID = strings.TrimSpace(projectID)
	if projectID == "" {
		return nil, errors.New("project id required")
	}
	if step < 1 || step > 4 {
		return nil, fmt.Errorf("step %d out of range 1-4", step)
	}
	path := "/api/projects/" + url.PathEscape(projectID) + "/execute-step/" + strconv.Itoa(step)
	var project Project
	if err := c.postJSON(ctx, path, nil, &project); err != nil {
		return nil, fmt.Errorf("execute step %d for project %s: %w", step, projectID, err)
	}
	return &project, nil
}

// ExecuteCompleteWorkflow runs all four workflow steps server-side.
func (c *Client) ExecuteCompleteWorkflow(ctx context.Context, projectID string) error {
	return c.trigger(ctx, projectID, "execute-complete-workflow")
}

// ExecuteDirectVideo starts video synthesis for a direct-video project.
func (c *Client) ExecuteDirectVideo(ctx context.Context, projectID string) error {
	return c.trigger(ctx, projectID, "execute-direct-video")
}
