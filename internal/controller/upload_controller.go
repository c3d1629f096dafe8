package controller

import (
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	apperrors "github.com/masterdu/masterdu-backend/internal/errors"
	"github.com/masterdu/masterdu-backend/internal/middleware"
	"github.com/masterdu/masterdu-backend/internal/storage"
)

type UploadController struct {
	storage storage.ImageStorage
}

func NewUploadController(storage storage.ImageStorage) *UploadController {
	return &UploadController{
		storage: storage,
	}
}

// UploadImage accepts a multipart image upload for the CMS
// POST /api/upload-image
func (ctrl *UploadController) UploadImage(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	fileHeader, err := c.FormFile("image")
	if err != nil {
		log.Warn("Upload request without image field", map[string]interface{}{
			"error": err.Error(),
		})
		apperrors.BadRequest(c, apperrors.ValidationRequired, "請選擇要上傳的圖片")
		return
	}

	contentType := fileHeader.Header.Get("Content-Type")
	if err := storage.ValidateContentType(contentType); err != nil {
		log.Warn("Upload rejected: content type not allowed", map[string]interface{}{
			"content_type": contentType,
		})
		apperrors.BadRequest(c, apperrors.UploadInvalidFileType, "只接受 JPEG、PNG、GIF 或 WEBP 圖片")
		return
	}

	if err := storage.ValidateFileSize(fileHeader.Size); err != nil {
		log.Warn("Upload rejected: file too large", map[string]interface{}{
			"size": fileHeader.Size,
		})
		apperrors.BadRequest(c, apperrors.UploadFileTooLarge, "圖片大小不可超過 10MB")
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		log.Error("Failed to open uploaded file", err, nil)
		apperrors.InternalError(c, "")
		return
	}
	defer file.Close()

	data, err := io.ReadAll(io.LimitReader(file, storage.MaxImageSize+1))
	if err != nil {
		log.Error("Failed to read uploaded file", err, nil)
		apperrors.InternalError(c, "")
		return
	}
	if int64(len(data)) > storage.MaxImageSize {
		apperrors.BadRequest(c, apperrors.UploadFileTooLarge, "圖片大小不可超過 10MB")
		return
	}

	// "type" sorts uploads by the collection they belong to,
	// e.g. service-, course-, blog-.
	imageType := c.DefaultPostForm("type", "general")
	filename := storage.BuildFilename(imageType, fileHeader.Filename)

	stored, err := ctrl.storage.Save(filename, data, contentType)
	if err != nil {
		log.Error("Failed to store uploaded image", err, map[string]interface{}{
			"filename": filename,
		})
		apperrors.RespondWithError(c, http.StatusInternalServerError, apperrors.UploadFailed, "圖片上傳失敗，請稍後再試")
		return
	}

	log.Info("Image uploaded", map[string]interface{}{
		"filename": stored.Filename,
		"size":     len(data),
	})

	c.JSON(http.StatusOK, gin.H{
		"success":  true,
		"imageUrl": stored.URL,
		"filename": stored.Filename,
	})
}

// DeleteImage removes an uploaded image by filename
// DELETE /api/delete-image/:filename
func (ctrl *UploadController) DeleteImage(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)
	filename := c.Param("filename")

	if err := storage.ValidateFilename(filename); err != nil {
		log.Warn("Delete rejected: unsafe filename", map[string]interface{}{
			"filename": filename,
		})
		apperrors.BadRequest(c, apperrors.UploadInvalidFilename, "檔案名稱不正確")
		return
	}

	if err := ctrl.storage.Delete(filename); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			apperrors.NotFound(c, apperrors.ResourceNotFound, "找不到此圖片")
			return
		}
		log.Error("Failed to delete image", err, map[string]interface{}{
			"filename": filename,
		})
		apperrors.InternalError(c, "")
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}
