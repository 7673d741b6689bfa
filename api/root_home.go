package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

func (a *API) Home(c *gin.Context) {
	c.String(http.StatusOK, "Welcome to the Dating API")
}
