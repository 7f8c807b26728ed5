// Package imagestore wraps the remote image host. Uploads are transformed
// server-side (bounded to 800x800, automatic quality and format) and return
// a stable URL plus the asset's public ID for later deletion.
package imagestore

import (
	"context"
	"fmt"
	"io"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"

	"github.com/binarychai/playlist-backend/internal/config"
)

// transformation is applied to every upload: fit inside 800x800, pick
// quality and delivery format automatically.
const transformation = "c_limit,w_800,h_800/q_auto/f_auto"

// folderPrefix namespaces all assets of this deployment.
const folderPrefix = "binarychai"

// UploadResult identifies a stored asset.
type UploadResult struct {
	URL      string `json:"url"`
	PublicID string `json:"public_id"`
}

// Client talks to Cloudinary.
type Client struct {
	cld *cloudinary.Cloudinary
}

// New creates a Client from the configured credentials.
func New(cfg *config.Config) (*Client, error) {
	cld, err := cloudinary.NewFromParams(cfg.CloudinaryCloudName, cfg.CloudinaryAPIKey, cfg.CloudinaryAPISecret)
	if err != nil {
		return nil, fmt.Errorf("init cloudinary: %w", err)
	}
	return &Client{cld: cld}, nil
}

// Upload stores an image in the given folder and returns its URL and public ID.
func (c *Client) Upload(ctx context.Context, file io.Reader, folder string) (*UploadResult, error) {
	if folder == "" {
		folder = "playlists"
	}

	resp, err := c.cld.Upload.Upload(ctx, file, uploader.UploadParams{
		Folder:         folderPrefix + "/" + folder,
		ResourceType:   "image",
		Transformation: transformation,
	})
	if err != nil {
		return nil, fmt.Errorf("upload image: %w", err)
	}

	return &UploadResult{URL: resp.SecureURL, PublicID: resp.PublicID}, nil
}

// Delete removes a stored asset by its public ID.
func (c *Client) Delete(ctx context.Context, publicID string) error {
	_, err := c.cld.Upload.Destroy(ctx, uploader.DestroyParams{PublicID: publicID})
	if err != nil {
		return fmt.Errorf("delete image: %w", err)
	}
	return nil
}
