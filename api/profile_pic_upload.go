package api

import (
	"bitwise74/dating-api/model"
	"bitwise74/dating-api/util"
	"bitwise74/dating-api/validators"
	"context"
	"errors"
	"mime"
	"net/http"
	"path"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// ProfilePicUpload stores an uploaded image and points the user's
// profile_pic at it. The bytes are written first and the record committed
// second; if the commit fails the stored object is removed again so
// neither side is left half done.
func (a *API) ProfilePicUpload(c *gin.Context) {
	requestID := c.MustGet("requestID").(string)

	userID, err := strconv.Atoi(c.Param("userID"))
	if err != nil {
		c.AbortWithStatusJSON(http.StatusNotFound, gin.H{
			"error":     "User not found",
			"requestID": requestID,
		})
		return
	}

	var user model.User

	if err := a.DB.First(&user, userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.AbortWithStatusJSON(http.StatusNotFound, gin.H{
				"error":     "User not found",
				"requestID": requestID,
			})
			return
		}

		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
			"error":     "Internal server error",
			"requestID": requestID,
		})

		zap.L().Error("Failed to look up user", zap.Error(err), zap.String("requestID", requestID))
		return
	}

	fh, err := c.FormFile("file")
	if err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{
			"error":     validators.ErrNoFile.Error(),
			"requestID": requestID,
		})
		return
	}

	code, f, err := validators.PictureValidator(fh)
	if err != nil {
		if code == http.StatusInternalServerError {
			zap.L().Error("Failed to validate picture", zap.Error(err), zap.String("requestID", requestID))
			err = errors.New("internal server error")
		}

		c.AbortWithStatusJSON(code, gin.H{
			"error":     err.Error(),
			"requestID": requestID,
		})
		return
	}
	defer f.Close()

	name := util.SanitizeFilename(fh.Filename)
	if name == "" {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{
			"error":     "Invalid file name",
			"requestID": requestID,
		})
		return
	}

	key := path.Join(viper.GetString("upload.dir"), name)

	contentType := mime.TypeByExtension(path.Ext(name))
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	if err := a.Store.Save(c.Request.Context(), key, f, fh.Size, contentType); err != nil {
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
			"error":     "Internal server error",
			"requestID": requestID,
		})

		zap.L().Error("Failed to store picture", zap.Error(err), zap.String("requestID", requestID))
		return
	}

	if err := a.DB.Model(&user).Update("profile_pic", key).Error; err != nil {
		// Roll the stored object back so the record and the media store
		// stay consistent
		if derr := a.Store.Delete(context.Background(), key); derr != nil {
			zap.L().Error("Failed to clean up after failed commit", zap.Error(derr), zap.String("requestID", requestID))
		}

		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
			"error":     "Internal server error",
			"requestID": requestID,
		})

		zap.L().Error("Failed to update profile_pic", zap.Error(err), zap.String("requestID", requestID))
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":         "Profile picture uploaded successfully!",
		"profile_pic_url": "/" + key,
	})
}
