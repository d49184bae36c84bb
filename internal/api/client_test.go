package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
)

func TestCreateReturnsInitialStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/api/projects/create" {
			t.Fatalf("unexpected request %s %s", r.Method, r.URL.Path)
		}
		if r.Header.Get("X-Request-ID") == "" {
			t.Error("expected X-Request-ID header on mutating request")
		}
		var req CreateRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Fatalf("decode request: %v", err)
		}
		if req.Description != "a corgi surfing" {
			t.Errorf("description = %q", req.Description)
		}
		json.NewEncoder(w).Encode(Project{
			ProjectID:   "proj-1",
			Description: req.Description,
			Status:      "created",
		})
	}))
	defer server.Close()

	client := newTestClient(t, server.URL)
	project, err := client.Create(context.Background(), CreateRequest{Description: "a corgi surfing"})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if project.ProjectID != "proj-1" {
		t.Errorf("project id = %q", project.ProjectID)
	}
	if project.Status != "created" {
		t.Errorf("status = %q, want created", project.Status)
	}
}

func TestCreateRejectsEmptyDescription(t *testing.T) {
	client := newTestClient(t, "http://127.0.0.1:0")
	if _, err := client.Create(context.Background(), CreateRequest{}); err == nil {
		t.Fatal("expected error for empty description")
	}
}

func TestGetMissingProjectIsNotFound(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"detail":"project not found"}`, http.StatusNotFound)
	}))
	defer server.Close()

	client := newTestClient(t, server.URL)
	_, err := client.Get(context.Background(), "missing")
	if err == nil {
		t.Fatal("expected error for missing project")
	}
	if !IsNotFound(err) {
		t.Errorf("IsNotFound(%v) = false, want true", err)
	}
}

func TestListUnwrapsEnvelope(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/projects" {
			t.Fatalf("unexpected path %s", r.URL.Path)
		}
		json.NewEncoder(w).Encode(listResponse{Projects: []Project{
			{ProjectID: "a", Status: "created"},
			{ProjectID: "b", Status: "completed"},
		}})
	}))
	defer server.Close()

	client := newTestClient(t, server.URL)
	projects, err := client.List(context.Background())
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(projects) != 2 {
		t.Fatalf("got %d projects, want 2", len(projects))
	}
	if projects[1].ProjectID != "b" {
		t.Errorf("second project = %q", projects[1].ProjectID)
	}
}

func TestDeleteIssuesDELETE(t *testing.T) {
	var gotMethod, gotPath string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotMethod = r.Method
		gotPath = r.URL.Path
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	client := newTestClient(t, server.URL)
	if err := client.Delete(context.Background(), "proj-9"); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if gotMethod != http.MethodDelete || gotPath != "/api/projects/proj-9" {
		t.Errorf("got %s %s", gotMethod, gotPath)
	}
}

func TestCreateWithDogUploadSendsMultipart(t *testing.T) {
	imagePath := writeTempImage(t)

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseMultipartForm(1 << 20); err != nil {
			t.Fatalf("parse multipart: %v", err)
		}
		if got := r.FormValue("description"); got != "my dog rex" {
			t.Errorf("description = %q", got)
		}
		file, header, err := r.FormFile("file")
		if err != nil {
			t.Fatalf("form file: %v", err)
		}
		file.Close()
		if header.Filename != filepath.Base(imagePath) {
			t.Errorf("filename = %q", header.Filename)
		}
		json.NewEncoder(w).Encode(Project{ProjectID: "dog-1", Status: "created"})
	}))
	defer server.Close()

	client := newTestClient(t, server.URL)
	project, err := client.CreateWithDogUpload(context.Background(), "my dog rex", "", imagePath)
	if err != nil {
		t.Fatalf("CreateWithDogUpload: %v", err)
	}
	if project.ProjectID != "dog-1" {
		t.Errorf("project id = %q", project.ProjectID)
	}
}

func TestCreateDirectVideoValidatesParallelPrompts(t *testing.T) {
	client := newTestClient(t, "http://127.0.0.1:0")

	_, err := client.CreateDirectVideo(context.Background(), DirectVideoRequest{
		ImagePaths: []string{"a.png", "b.png"},
		Prompts:    []string{"only one"},
	})
	if err == nil {
		t.Fatal("expected validation error for mismatched prompt count")
	}

	_, err = client.CreateDirectVideo(context.Background(), DirectVideoRequest{})
	if err == nil {
		t.Fatal("expected validation error for zero images")
	}
}

func TestCreateDirectVideoUploadsNumberedPairs(t *testing.T) {
	first := writeTempImage(t)
	second := writeTempImage(t)

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseMultipartForm(1 << 20); err != nil {
			t.Fatalf("parse multipart: %v", err)
		}
		if got := r.FormValue("prompt_1"); got != "zoom in slowly" {
			t.Errorf("prompt_1 = %q", got)
		}
		if got := r.FormValue("prompt_2"); got != "pan left" {
			t.Errorf("prompt_2 = %q", got)
		}
		for _, field := range []string{"image_1", "image_2"} {
			file, _, err := r.FormFile(field)
			if err != nil {
				t.Fatalf("missing file field %s: %v", field, err)
			}
			file.Close()
		}
		json.NewEncoder(w).Encode(Project{ProjectID: "direct-1", Status: "created"})
	}))
	defer server.Close()

	client := newTestClient(t, server.URL)
	project, err := client.CreateDirectVideo(context.Background(), DirectVideoRequest{
		ImagePaths: []string{first, second},
		Prompts:    []string{"zoom in slowly", "pan left"},
	})
	if err != nil {
		t.Fatalf("CreateDirectVideo: %v", err)
	}
	if project.ProjectID != "direct-1" {
		t.Errorf("project id = %q", project.ProjectID)
	}
}

func TestExecuteWorkflowStepChecksRange(t *testing.T) {
	client := newTestClient(t, "http://127.0.0.1:0")
	if _, err := client.ExecuteWorkflowStep(context.Background(), "proj-1", 0); err == nil {
		t.Error("expected error for step 0")
	}
	if _, err := client.ExecuteWorkflowStep(context.Background(), "proj-1", 5); err == nil {
		t.Error("expected error for step 5")
	}
}

func TestExecuteWorkflowStepPostsNumberedPath(t *testing.T) {
	var gotPath string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		json.NewEncoder(w).Encode(Project{ProjectID: "proj-1", Status: "images_generated", CurrentStep: 3})
	}))
	defer server.Close()

	client := newTestClient(t, server.URL)
	project, err := client.ExecuteWorkflowStep(context.Background(), "proj-1", 3)
	if err != nil {
		t.Fatalf("ExecuteWorkflowStep: %v", err)
	}
	if gotPath != "/api/projects/proj-1/execute-step/3" {
		t.Errorf("path = %q", gotPath)
	}
	if project.CurrentStep != 3 {
		t.Errorf("current step = %d", project.CurrentStep)
	}
}

func TestStatusErrorCarriesBody(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "backend on fire", http.StatusBadGateway)
	}))
	defer server.Close()

	client := newTestClient(t, server.URL)
	err := client.GenerateAll(context.Background(), "proj-1")
	if err == nil {
		t.Fatal("expected error")
	}
	var statusErr *StatusError
	if !errors.As(err, &statusErr) {
		t.Fatalf("error %v is not a StatusError", err)
	}
	if statusErr.StatusCode != http.StatusBadGateway {
		t.Errorf("status = %d", statusErr.StatusCode)
	}
	if statusErr.Body != "backend on fire" {
		t.Errorf("body = %q", statusErr.Body)
	}
}

func TestMediaURLResolution(t *testing.T) {
	client := newTestClient(t, "http://localhost:8000")

	cases := []struct {
		in   string
		want string
	}{
		{"", ""},
		{"media/proj-1/video.mp4", "http://localhost:8000/media/proj-1/video.mp4"},
		{"/media/proj-1/video.mp4", "http://localhost:8000/media/proj-1/video.mp4"},
		{"https://cdn.example.com/v.mp4", "https://cdn.example.com/v.mp4"},
	}
	for _, tc := range cases {
		if got := client.MediaURL(tc.in); got != tc.want {
			t.Errorf("MediaURL(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func newTestClient(t *testing.T, baseURL string) *Client {
	t.Helper()
	client, err := New(baseURL)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return client
}

func writeTempImage(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "photo.jpg")
	if err := os.WriteFile(path, []byte("not really a jpeg"), 0o644); err != nil {
		t.Fatalf("write temp image: %v", err)
	}
	return path
}

func TestUploadDogImageReturnsAnalysis(t *testing.T) {
	imagePath := writeTempImage(t)

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/api/upload-dog-image" {
			t.Fatalf("unexpected request %s %s", r.Method, r.URL.Path)
		}
		if err := r.ParseMultipartForm(1 << 20); err != nil {
			t.Fatalf("parse multipart: %v", err)
		}
		file, header, err := r.FormFile("file")
		if err != nil {
			t.Fatalf("missing file part: %v", err)
		}
		file.Close()
		if header.Filename != filepath.Base(imagePath) {
			t.Errorf("filename = %q", header.Filename)
		}
		json.NewEncoder(w).Encode(DogUploadResult{
			ImagePath: "uploads/photo.jpg",
			Analysis: DogAnalysis{
				Breed:           "corgi",
				Characteristics: []string{"short legs", "big ears"},
				Confidence:      0.92,
			},
		})
	}))
	defer server.Close()

	client := newTestClient(t, server.URL)
	result, err := client.UploadDogImage(context.Background(), imagePath)
	if err != nil {
		t.Fatalf("UploadDogImage: %v", err)
	}
	if result.ImagePath != "uploads/photo.jpg" {
		t.Errorf("image path = %q", result.ImagePath)
	}
	if result.Analysis.Breed != "corgi" || result.Analysis.Confidence != 0.92 {
		t.Errorf("analysis = %+v", result.Analysis)
	}
}

func TestUploadDogImageRequiresPath(t *testing.T) {
	client := newTestClient(t, "http://127.0.0.1:0")
	if _, err := client.UploadDogImage(context.Background(), "  "); err == nil {
		t.Fatal("expected error for empty image path")
	}
}
