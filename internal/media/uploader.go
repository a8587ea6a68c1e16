// Package media proxies admin file uploads to Cloudinary. The platform only
// ever stores the returned URL; file bytes never touch the database.
package media

import (
	"context"
	"fmt"
	"io"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
)

// UploadResult is the collaborator's answer: a public URL plus the remote
// asset id.
type UploadResult struct {
	URL      string `json:"url"`
	PublicID string `json:"publicId"`
}

// Uploader accepts a file payload and returns where it now lives. Upload
// errors are surfaced verbatim and never retried here: a blind retry could
// duplicate the asset.
type Uploader interface {
	Upload(ctx context.Context, file io.Reader, filename string) (*UploadResult, error)
}

// CloudinaryUploader sends files to a Cloudinary folder with auto resource
// type detection (image, video or raw).
type CloudinaryUploader struct {
	cld    *cloudinary.Cloudinary
	folder string
}

func NewCloudinaryUploader(cloudName, apiKey, apiSecret, folder string) (*CloudinaryUploader, error) {
	cld, err := cloudinary.NewFromParams(cloudName, apiKey, apiSecret)
	if err != nil {
		return nil, fmt.Errorf("failed to configure cloudinary: %w", err)
	}
	return &CloudinaryUploader{cld: cld, folder: folder}, nil
}

func (u *CloudinaryUploader) Upload(ctx context.Context, file io.Reader, filename string) (*UploadResult, error) {
	result, err := u.cld.Upload.Upload(ctx, file, uploader.UploadParams{
		Folder:       u.folder,
		ResourceType: "auto",
	})
	if err != nil {
		return nil, err
	}
	return &UploadResult{URL: result.SecureURL, PublicID: result.PublicID}, nil
}
