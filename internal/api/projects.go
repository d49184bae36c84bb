package api

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/url"
	"os"
	"path/filepath"
	"strings"
)

// CreateRequest is the payload for classic project creation.
type CreateRequest struct {
	Description string `json:"description"`
	ContentType string `json:"content_type,omitempty"`
}

// Create starts a classic project from a plain description. The backend
// assigns the project identifier and the initial status.
func (c *Client) Create(ctx context.Context, req CreateRequest) (*Project, error) {
	if strings.TrimSpace(req.Description) == "" {
		return nil, errors.New("description must not be empty")
	}
	var project Project
	if err := c.postJSON(ctx, "/api/projects/create", req, &project); err != nil {
		return nil, fmt.Errorf("create project: %w", err)
	}
	return &project, nil
}

// CreateWithDogUpload creates a project whose prompts are grounded on an
// uploaded dog photo. The image is analyzed server-side before prompt
// generation begins.
func (c *Client) CreateWithDogUpload(ctx context.Context, description, contentType, imagePath string) (*Project, error) {
	if strings.TrimSpace(description) == "" {
		return nil, errors.New("description must not be empty")
	}
	fields := map[string]string{"description": description}
	if strings.TrimSpace(contentType) != "" {
		fields["content_type"] = contentType
	}
	body, formType, err := buildMultipart(fields, map[string]string{"file": imagePath})
	if err != nil {
		return nil, err
	}
	var project Project
	if err := c.postMultipart(ctx, "/api/projects/create-with-dog-upload", formType, body, &project); err != nil {
		return nil, fmt.Errorf("create project with dog upload: %w", err)
	}
	return &project, nil
}

// Get fetches the current snapshot of a project. A missing identifier is
// surfaced as an error; callers can distinguish it with IsNotFound.
func (c *Client) Get(ctx context.Context, projectID string) (*Project, error) {
	projectID = strings.TrimSpace(projectID)
	if projectID == "" {
		return nil, errors.New("project id required")
	}
	var project Project
	if err := c.getJSON(ctx, "/api/projects/"+url.PathEscape(projectID), &project); err != nil {
		return nil, fmt.Errorf("get project %s: %w", projectID, err)
	}
	return &project, nil
}

// List fetches every project in the workspace.
func (c *Client) List(ctx context.Context) ([]Project, error) {
	var payload listResponse
	if err := c.getJSON(ctx, "/api/projects", &payload); err != nil {
		return nil, fmt.Errorf("list projects: %w", err)
	}
	return payload.Projects, nil
}

// Delete removes a project and its generated artifacts. Deletion is terminal;
// the identifier is never reusable afterwards.
func (c *Client) Delete(ctx context.Context, projectID string) error {
	projectID = strings.TrimSpace(projectID)
	if projectID == "" {
		return errors.New("project id required")
	}
	if err := c.delete(ctx, "/api/projects/"+url.PathEscape(projectID)); err != nil {
		return fmt.Errorf("delete project %s: %w", projectID, err)
	}
	return nil
}

// GenerateAll triggers the full pipeline as one server-side operation.
// Completion is observed through polling, not through this call's response.
func (c *Client) GenerateAll(ctx context.Context, projectID string) error {
	return c.trigger(ctx, projectID, "generate-all")
}

// GenerateImages triggers the image-generation stage.
func (c *Client) GenerateImages(ctx context.Context, projectID string) error {
	return c.trigger(ctx, projectID, "generate-images")
}

// GenerateVideos triggers the video-generation stage.
func (c *Client) GenerateVideos(ctx context.Context, projectID string) error {
	return c.trigger(ctx, projectID, "generate-videos")
}

// AnalyzeAndGenerateVideoPrompts asks the backend to analyze generated images
// and derive improved video prompts from them.
func (c *Client) AnalyzeAndGenerateVideoPrompts(ctx context.Context, projectID string) error {
	return c.trigger(ctx, projectID, "analyze-and-generate-video-prompts")
}

func (c *Client) trigger(ctx context.Context, projectID, stage string) error {
	projectID = strings.TrimSpace(projectID)
	if projectID == "" {
		return errors.New("project id required")
	}
	path := "/api/projects/" + url.PathEscape(projectID) + "/" + stage
	if err := c.postJSON(ctx, path, nil, nil); err != nil {
		return fmt.Errorf("%s for project %s: %w", stage, projectID, err)
	}
	return nil
}

// buildMultipart assembles a multipart form from plain fields and file
// uploads keyed by form field name.
func buildMultipart(fields map[string]string, files map[string]string) (io.Reader, string, error) {
	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)

	for name, value := range fields {
		if err := writer.WriteField(name, value); err != nil {
			return nil, "", fmt.Errorf("write field %s: %w", name, err)
		}
	}
	for name, path := range files {
		if err := appendFormFile(writer, name, path); err != nil {
			return nil, "", err
		}
	}
	if err := writer.Close(); err != nil {
		return nil, "", fmt.Errorf("close multipart writer: %w", err)
	}
	return body, writer.FormDataContentType(), nil
}

func appendFormFile(writer *multipart.Writer, name, path string) error {
	file, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("open upload %s: %w", path, err)
	}
	defer file.Close()

	field, err := writer.CreateFormFile(name, filepath.Base(path))
	if err != nil {
		return fmt.Errorf("create file field %s: %w", name, err)
	}
	if _, err := io.Copy(field, file); err != nil {
		return fmt.Errorf("copy upload %s: %w", path, err)
	}
	return nil
}
