package api

import (
	"bitwise74/dating-api/model"
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Pointer fields so "absent" and "set to zero value" can be told apart.
// A key that's missing from the JSON body leaves the column untouched.
type profileUpdateBody struct {
	Age      *int    `json:"age"`
	Gender   *string `json:"gender"`
	Bio      *string `json:"bio"`
	Location *string `json:"location"`
}

func (a *API) ProfileUpdate(c *gin.Context) {
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

	var data profileUpdateBody
	if err := c.ShouldBind(&data); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{
			"error":     "Invalid request body",
			"requestID": requestID,
		})

		zap.L().Debug("Can't bind request body", zap.Error(err), zap.String("requestID", requestID))
		return
	}

	updates := map[string]any{}
	if data.Age != nil {
		updates["age"] = *data.Age
	}
	if data.Gender != nil {
		updates["gender"] = *data.Gender
	}
	if data.Bio != nil {
		updates["bio"] = *data.Bio
	}
	if data.Location != nil {
		updates["location"] = *data.Location
	}

	if len(updates) > 0 {
		if err := a.DB.Model(&user).Updates(updates).Error; err != nil {
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
				"error":     "Internal server error",
				"requestID": requestID,
			})

			zap.L().Error("Failed to update profile", zap.Error(err), zap.String("requestID", requestID))
			return
		}
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Profile updated successfully!",
	})
}
