package services

import (
	"errors"
	"io"
	"testing"

	"github.com/minio/minio-go/v7"
	"github.com/stretchr/testify/assert"
	"github.com/yeremiapane/food-order-app/utils"
)

func TestCategorizeUploadError(t *testing.T) {
	utils.InitLogger()

	remote := minio.ErrorResponse{Code: "AccessDenied", Message: "Access Denied."}
	err := categorizeUploadError(remote)
	assert.Equal(t, utils.CodeUpload, utils.ErrorCode(err))
	assert.Contains(t, err.Error(), "rejected")
	assert.Contains(t, err.Error(), "Access Denied.")

	err = categorizeUploadError(io.ErrUnexpectedEOF)
	assert.Equal(t, utils.CodeUpload, utils.ErrorCode(err))
	assert.Contains(t, err.Error(), "ended early")

	err = categorizeUploadError(errors.New("connection refused"))
	assert.Equal(t, utils.CodeUpload, utils.ErrorCode(err))
	assert.Contains(t, err.Error(), "transport")
}
