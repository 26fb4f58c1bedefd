package controllers

import (
	"errors"
	"io"
	"net/http"
	"path/filepath"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/yeremiapane/food-order-app/services"
	"github.com/yeremiapane/food-order-app/utils"
)

const maxUploadBytes = 10 << 20

type UploadController struct {
	storage *services.StorageService
}

func NewUploadController(storage *services.StorageService) *UploadController {
	return &UploadController{storage: storage}
}

// UploadImage handles POST /admin/common/upload (multipart field "file").
// The stored object gets a fresh uuid name with the original extension.
func (uc *UploadController) UploadImage(c *gin.Context) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		utils.RespondErrorWithStatus(c, http.StatusBadRequest, errors.New("multipart field 'file' is required"))
		return
	}
	if fileHeader.Size > maxUploadBytes {
		utils.RespondErrorWithStatus(c, http.StatusBadRequest, errors.New("file exceeds the 10MB upload limit"))
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		utils.RespondErrorWithStatus(c, http.StatusBadRequest, errors.New("error reading uploaded file"))
		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		utils.RespondError(c, utils.UploadError("upload stream ended early", err))
		return
	}

	objectName := uuid.NewString() + filepath.Ext(fileHeader.Filename)
	url, err := uc.storage.Upload(c.Request.Context(), data, objectName)
	if err != nil {
		utils.ErrorLogger.Printf("upload failed for %s: %v", fileHeader.Filename, err)
		utils.RespondError(c, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "File uploaded", gin.H{"url": url})
}
