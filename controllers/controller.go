package controllers

import (
	"errors"
	"net/http"

	"starwars/middleware"
	"starwars/utils"

	"github.com/gin-gonic/gin"
)

// bindError answers 400 for a body that failed BindJSON. missing builds the message for an absent key.
func bindError(c *gin.Context, err error, missing func(field string) string) {
	var mf *utils.MissingFieldError
	if errors.As(err, &mf) {
		c.JSON(http.StatusBadRequest, gin.H{"message": missing(mf.Field)})
		return
	}
	c.JSON(http.StatusBadRequest, gin.H{"message": "Error! El body debe ser un objeto JSON válido"})
}

// storeError logs err and answers 500 with its text.
func storeError(c *gin.Context, err error, context string) {
	utils.LogError(err, context, middleware.RequestIDFrom(c))
	c.JSON(http.StatusInternalServerError, gin.H{"message": err.Error()})
}

func missingInBody(field string) string {
	return "Error! Asegúrate de enviar '" + field + "' en el body"
}
