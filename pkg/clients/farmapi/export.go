package farmapi

import (
	"bytes"
	"context"
	"fmt"
	"mime"
	"net/http"
	"path"
)

// Blob is a downloaded backend export (CSV or PDF) with its filename hint.
type Blob struct {
	Filename    string
	ContentType string
	Data        []byte
}

// Download fetches a backend-rendered export blob. Active collection filters
// must be forwarded as query parameters so the export matches the view the
// admin is looking at.
func (c *Client) Download(ctx context.Context, exportPath string, filters map[string]string) (*Blob, error) {
	req := c.http.R().SetContext(ctx)
	for key, value := range filters {
		if value != "" {
			req.SetQueryParam(key, value)
		}
	}

	resp, err := req.Get(exportPath)
	if err != nil {
		return nil, fmt.Errorf("download %s: %w", exportPath, err)
	}
	if resp.StatusCode() >= http.StatusBadRequest {
		return nil, &APIError{Status: resp.StatusCode(), Message: string(resp.Body())}
	}

	filename := dispositionFilename(resp.Header().Get("Content-Disposition"))
	if filename == "" {
		filename = path.Base(exportPath)
	}

	return &Blob{
		Filename:    filename,
		ContentType: resp.Header().Get("Content-Type"),
		Data:        resp.Body(),
	}, nil
}

// UploadResponse mirrors the file upload endpoint's payload.
type UploadResponse struct {
	URL string `json:"url"`
}

// Upload sends a photo or document as multipart form data and returns the
// stored URL.
func (c *Client) Upload(ctx context.Context, filename string, data []byte) (string, error) {
	result := new(UploadResponse)
	apiErr := new(errorPayload)

	resp, err := c.http.R().
		SetContext(ctx).
		SetFileReader("file", filename, bytes.NewReader(data)).
		SetResult(result).
		SetError(apiErr).
		Post("/upload")
	if err != nil {
		return "", fmt.Errorf("upload %s: %w", filename, err)
	}
	if resp.StatusCode() >= http.StatusBadRequest {
		return "", toAPIError(resp, apiErr)
	}

	return result.URL, nil
}

func dispositionFilename(header string) string {
	if header == "" {
		return ""
	}
	_, params, err := mime.ParseMediaType(header)
	if err != nil {
		return ""
	}
	return params["filename"]
}
