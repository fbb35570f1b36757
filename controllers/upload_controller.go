package controllers

import (
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"shopper/apperr"
	"shopper/logger"
)

// UploadField is the multipart field name the admin panel sends images in.
const UploadField = "product"

type UploadController struct {
	uploadDir string
	baseURL   string
}

func NewUploadController(uploadDir, baseURL string) *UploadController {
	return &UploadController{uploadDir: uploadDir, baseURL: baseURL}
}

// Upload stores a single image under <field>_<timestamp><ext> and returns
// the URL it will be served from.
func (uc *UploadController) Upload(c *gin.Context) {
	file, err := c.FormFile(UploadField)
	if err != nil {
		apperr.Respond(c, apperr.Wrap(apperr.ErrNoFile, err))
		return
	}

	if err := os.MkdirAll(uc.uploadDir, 0o755); err != nil {
		apperr.Respond(c, apperr.Wrap(apperr.ErrPersistence, err))
		return
	}

	filename := fmt.Sprintf("%s_%d%s", UploadField, time.Now().UnixNano(), filepath.Ext(file.Filename))
	if err := c.SaveUploadedFile(file, filepath.Join(uc.uploadDir, filename)); err != nil {
		logger.Log.Error("file save failed", zap.String("filename", filename), zap.Error(err))
		apperr.Respond(c, apperr.Wrap(apperr.ErrPersistence, err))
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":   1,
		"image_url": fmt.Sprintf("%s/images/%s", uc.baseURL, filename),
	})
}
