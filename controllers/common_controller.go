package controllers

import (
	"os"
	"path/filepath"

	"github.com/2741538125/sky-takeout/pkg/resp"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// CommonController handles shared admin endpoints, currently file upload for
// dish and setmeal images. Files land in UploadDir and are served back via
// the static /uploads route.
type CommonController struct {
	UploadDir string
	Log       *logrus.Logger
}

func NewCommonController(uploadDir string, log *logrus.Logger) *CommonController {
	return &CommonController{UploadDir: uploadDir, Log: log}
}

// POST /admin/common/upload  (multipart field "file")
func (h *CommonController) Upload(c *gin.Context) {
	file, err := c.FormFile("file")
	if err != nil {
		resp.BadRequest(c, "missing file")
		return
	}

	if err := os.MkdirAll(h.UploadDir, 0o755); err != nil {
		resp.ServerError(c, err)
		return
	}

	// keep the original extension, replace the name with a UUID
	objectName := uuid.NewString() + filepath.Ext(file.Filename)
	dst := filepath.Join(h.UploadDir, objectName)
	if err := c.SaveUploadedFile(file, dst); err != nil {
		h.Log.WithError(err).Warn("file upload failed")
		resp.ServerError(c, err)
		return
	}

	resp.OK(c, gin.H{"path": "/uploads/" + objectName})
}
