package controllers

import (
	"fmt"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
)

const maxImageSize = 10 << 20 // 10MB

// saveUploadedImage validates the "image" form file and stores it under dir
// with a timestamped name, returning the stored path. Validation problems
// come back as a *ValidationError.
func saveUploadedImage(c *gin.Context, dir string) (string, error) {
	file, err := c.FormFile("image")
	if err != nil {
		return "", &ValidationError{Errors: []FieldError{{Field: "image", Message: "Image is required"}}}
	}
	if fe := checkImage(file); fe != nil {
		return "", &ValidationError{Errors: []FieldError{*fe}}
	}

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", err
	}

	filename := fmt.Sprintf("%d-%s", time.Now().UnixMilli(), filepath.Base(file.Filename))
	path := filepath.Join(dir, filename)
	if err := c.SaveUploadedFile(file, path); err != nil {
		return "", err
	}
	return path, nil
}

func checkImage(file *multipart.FileHeader) *FieldError {
	if !strings.HasPrefix(file.Header.Get("Content-Type"), "image/") {
		return &FieldError{Field: "image", Message: "File is not an image"}
	}
	if file.Size > maxImageSize {
		return &FieldError{Field: "image", Message: "Image file is too large"}
	}
	return nil
}
