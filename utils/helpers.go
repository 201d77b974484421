package utils

import (
	"net/http"

	"github.com/palaceapp/palace-api/middleware"
	"github.com/palaceapp/palace-api/models"
)

func GetUser(r *http.Request) (*models.User, bool) {
	return middleware.UserFromContext(r.Context())
}
