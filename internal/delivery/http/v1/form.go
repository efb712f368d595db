package v1

import (
	"errors"
	"io"
	"net/http"

	"go-jobportal-backend/pkg/storage"

	"github.com/gin-gonic/gin"
)

// formUpload reads an optional multipart file field into an Upload.
// A missing field is not an error; the caller gets nil.
func formUpload(c *gin.Context, field string) (*storage.Upload, error) {
	fileHeader, err := c.FormFile(field)
	if err != nil {
		if errors.Is(err, http.ErrMissingFile) || errors.Is(err, http.ErrNotMultipart) {
			return nil, nil
		}
		return nil, err
	}

	src, err := fileHeader.Open()
	if err != nil {
		return nil, err
	}
	defer src.Close()

	data, err := io.ReadAll(src)
	if err != nil {
		return nil, err
	}

	return &storage.Upload{
		Data:        data,
		Filename:    fileHeader.Filename,
		ContentType: fileHeader.Header.Get("Content-Type"),
	}, nil
}

// formString returns a pointer to the form value when the field was present
// in the request, nil otherwise. An explicitly supplied empty string is a
// valid overwrite.
func formString(c *gin.Context, field string) *string {
	if v, ok := c.GetPostForm(field); ok {
		return &v
	}
	return nil
}
