package api

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strings"
)

// PromptTypes lists the content categories the backend can generate for.
func (c *Client) PromptTypes(ctx context.Context) ([]PromptType, error) {
	var payload promptTypesResponse
	if err := c.getJSON(ctx, "/api/prompt-types", &payload); err != nil {
		return nil, fmt.Errorf("list prompt types: %w", err)
	}
	return payload.PromptTypes, nil
}

// PromptTypeDetail fetches one content category with its worked examples.
func (c *Client) PromptTypeDetail(ctx context.Context, name string) (*PromptType, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, errors.New("prompt type name required")
	}
	var detail PromptType
	if err := c.getJSON(ctx, "/api/prompt-types/"+url.PathEscape(name), &detail); err != nil {
		return nil, fmt.Errorf("get prompt type %s: %w", name, err)
	}
	return &detail, nil
}

// UploadDogImage uploads a photo for standalone analysis without creating a
// project. The returned path can later seed CreateWithDogUpload.
func (c *Client) UploadDogImage(ctx context.Context, imagePath string) (*DogUploadResult, error) {
	if strings.TrimSpace(imagePath) == "" {
		return nil, errors.New("image path required")
	}
	body, formType, err := buildMultipart(nil, map[string]string{"file": imagePath})
	if err != nil {
		return nil, err
	}
	var result DogUploadResult
	if err := c.postMultipart(ctx, "/api/upload-dog-image", formType, body, &result); err != nil {
		return nil, fmt.Errorf("upload dog image: %w", err)
	}
	return &result, nil
}
