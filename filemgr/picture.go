package filemgr

import (
	"fmt"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"eventify/models"
	"eventify/utils"

	"github.com/disintegration/imaging"
)

const uploadRoot = "./static/uploads"

var supportedImageTypes = map[string]bool{
	"image/jpeg": true,
	"image/png":  true,
	"image/webp": true,
	"image/gif":  true,
}

// SaveUploadedImage stores one multipart image under uploadRoot/<bucket>/ and
// writes a 300x200 thumbnail next to it. Returns the stored image reference.
func SaveUploadedImage(file multipart.File, header *multipart.FileHeader, bucket string) (models.GalleryImage, error) {
	defer file.Close()

	buff := make([]byte, 512)
	n, err := file.Read(buff)
	if err != nil {
		return models.GalleryImage{}, fmt.Errorf("error reading file: %w", err)
	}
	contentType := http.DetectContentType(buff[:n])
	if !strings.HasPrefix(contentType, "image/") || !supportedImageTypes[contentType] {
		return models.GalleryImage{}, fmt.Errorf("unsupported file type %s", contentType)
	}
	if _, err := file.Seek(0, 0); err != nil {
		return models.GalleryImage{}, err
	}

	img, err := imaging.Decode(file)
	if err != nil {
		return models.GalleryImage{}, fmt.Errorf("invalid image: %w", err)
	}

	dir := filepath.Join(uploadRoot, bucket)
	if err := os.MkdirAll(filepath.Join(dir, "thumb"), 0755); err != nil {
		return models.GalleryImage{}, err
	}

	filename := utils.GenerateID(16) + ".jpg"
	if err := imaging.Save(img, filepath.Join(dir, filename)); err != nil {
		return models.GalleryImage{}, err
	}

	thumb := imaging.Thumbnail(img, 300, 200, imaging.Lanczos)
	if err := imaging.Save(thumb, filepath.Join(dir, "thumb", filename)); err != nil {
		return models.GalleryImage{}, err
	}

	return models.GalleryImage{
		URL:      "/static/uploads/" + bucket + "/" + filename,
		Filename: filename,
	}, nil
}
