package backend

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
)

// Image library surface. Upload is multipart, everything else is JSON.

type ImageInfo struct {
	URL      string `json:"url"`
	Name     string `json:"name,omitempty"`
	Folder   string `json:"folder,omitempty"`
	Size     int64  `json:"size,omitempty"`
	Uploaded string `json:"uploaded,omitempty"`
}

func (c *Client) ListImages(ctx context.Context, folder string) ([]ImageInfo, error) {
	url := c.ImagesURL + "/list"
	if folder != "" {
		url += "?folder=" + folder
	}
	var out []ImageInfo
	err := c.do(ctx, http.MethodGet, url, nil, &out)
	return out, err
}

// UploadImage streams one file as multipart form data under the `image`
// field, optionally into a folder.
func (c *Client) UploadImage(ctx context.Context, filename string, file io.Reader, folder string) (ImageInfo, error) {
	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)

	part, err := writer.CreateFormFile("image", filename)
	if err != nil {
		return ImageInfo{}, err
	}
	if _, err := io.Copy(part, file); err != nil {
		return ImageInfo{}, fmt.Errorf("read upload: %w", err)
	}
	if folder != "" {
		if err := writer.WriteField("folder", folder); err != nil {
			return ImageInfo{}, err
		}
	}
	if err := writer.Close(); err != nil {
		return ImageInfo{}, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.ImagesURL+"/upload", &buf)
	if err != nil {
		return ImageInfo{}, err
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())
	if token, ok := sessionFromContext(ctx); ok {
		req.AddCookie(&http.Cookie{Name: "jwt", Value: token})
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return ImageInfo{}, fmt.Errorf("upload image: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		return ImageInfo{}, decodeError(resp)
	}

	var out ImageInfo
	if err := decodeJSON(resp.Body, &out); err != nil {
		return ImageInfo{}, err
	}
	return out, nil
}

func (c *Client) UploadImageFromURL(ctx context.Context, srcURL, folder string) (ImageInfo, error) {
	body := map[string]string{"url": srcURL}
	if folder != "" {
		body["folder"] = folder
	}
	var out ImageInfo
	err := c.do(ctx, http.MethodPost, c.ImagesURL+"/upload-from-url", body, &out)
	return out, err
}

// DeleteImage removes an image by its URL. The backend takes the URL in
// the request body, not the path.
func (c *Client) DeleteImage(ctx context.Context, imageURL string) error {
	body := map[string]string{"imageUrl": imageURL}
	return c.do(ctx, http.MethodDelete, c.ImagesURL+"/delete", body, nil)
}
