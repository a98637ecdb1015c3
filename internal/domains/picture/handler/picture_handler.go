package handler

import (
	"io"
	"mime/multipart"

	"github.com/gin-gonic/gin"

	"collection-backend/internal/domains/picture/service"
	"collection-backend/internal/shared/middleware"
	"collection-backend/internal/shared/response"
)

// PictureHandler exposes the multipart image upload/delete endpoints.
type PictureHandler struct {
	service service.PictureService
}

func NewPictureHandler(service service.PictureService) *PictureHandler {
	return &PictureHandler{service: service}
}

// Upload handles POST /api/upload_pic. Every part named "image" that
// carries a filename is stored; the payload is {"image_url": [...]} with
// the URLs in arrival order, or null when no part matched.
func (h *PictureHandler) Upload(c *gin.Context) {
	callerID, ok := middleware.CallerID(c)
	if !ok {
		response.Fail(c, 401, "unauthorized")
		return
	}

	form, err := c.MultipartForm()
	if err != nil {
		response.Fail(c, 400, "invalid multipart form")
		return
	}

	files, err := readImageParts(form.File["image"])
	if err != nil {
		response.Fail(c, 400, "failed to read image part")
		return
	}

	if len(files) == 0 {
		response.Success(c, 200, "no images uploaded", gin.H{"image_url": nil})
		return
	}

	urls, err := h.service.Upload(c.Request.Context(), callerID, files)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, 200, "images uploaded", gin.H{"image_url": urls})
}

// Delete handles POST /api/delete_pic. The filenames of the parts named
// "image" select the caller's objects to remove.
func (h *PictureHandler) Delete(c *gin.Context) {
	callerID, ok := middleware.CallerID(c)
	if !ok {
		response.Fail(c, 401, "unauthorized")
		return
	}

	form, err := c.MultipartForm()
	if err != nil {
		response.Fail(c, 400, "invalid multipart form")
		return
	}

	filenames := make([]string, 0)
	for _, fh := range form.File["image"] {
		if fh.Filename == "" {
			continue
		}
		filenames = append(filenames, fh.Filename)
	}

	if len(filenames) == 0 {
		response.Success(c, 200, "no images deleted", gin.H{"image_url": nil})
		return
	}

	urls, err := h.service.Delete(c.Request.Context(), callerID, filenames)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, 200, "images deleted", gin.H{"image_url": urls})
}

// readImageParts loads each named part fully into memory, in the order
// the parts arrived.
func readImageParts(headers []*multipart.FileHeader) ([]service.File, error) {
	files := make([]service.File, 0, len(headers))

	for _, fh := range headers {
		if fh.Filename == "" {
			continue
		}

		src, err := fh.Open()
		if err != nil {
			return nil, err
		}

		data, err := io.ReadAll(src)
		src.Close()
		if err != nil {
			return nil, err
		}

		files = append(files, service.File{
			Name:        fh.Filename,
			Data:        data,
			ContentType: fh.Header.Get("Content-Type"),
		})
	}

	return files, nil
}
