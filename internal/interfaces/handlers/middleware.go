package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"secret-server/internal/domain/entities"
	"secret-server/internal/domain/services"
	"secret-server/internal/interfaces/dto"
	"secret-server/pkg/errors"
)

const currentUserKey = "current_user"

func respondWithError(c *gin.Context, httpStatus, errorCode int, message string) {
	c.JSON(httpStatus, dto.APIResponse{
		Error: &dto.ErrorResponse{
			Code: errorCode,
			Text: message,
		},
	})
}

func respondWithSuccess(c *gin.Context, response, data any) {
	c.JSON(http.StatusOK, dto.APIResponse{
		Response: response,
		Data:     data,
	})
}

func handleServiceError(c *gin.Context, err error) {
	switch e := err.(type) {
	case *errors.ValidationError:
		respondWithError(c, http.StatusBadRequest, 400, e.Message)
	case *errors.BadRequestError:
		respondWithError(c, http.StatusBadRequest, 400, e.Message)
	case *errors.UnauthorizedError:
		respondWithError(c, http.StatusUnauthorized, 401, e.Message)
	case *errors.ForbiddenError:
		respondWithError(c, http.StatusForbidden, 403, e.Message)
	case *errors.NotFoundError:
		respondWithError(c, http.StatusNotFound, 404, e.Message)
	case *errors.InternalError:
		respondWithError(c, http.StatusInternalServerError, 500, e.Message)
	default:
		respondWithError(c, http.StatusInternalServerError, 500, "internal server error")
	}
}

func bearerToken(c *gin.Context) string {
	header := c.GetHeader("Authorization")
	if header == "" {
		return ""
	}
	return strings.TrimSpace(strings.TrimPrefix(header, "Bearer "))
}

// AuthMiddleware validates the bearer token and stores the authenticated
// user in the request context.
func AuthMiddleware(authSvc *services.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := bearerToken(c)
		if token == "" {
			respondWithError(c, http.StatusUnauthorized, 401, "missing bearer token")
			c.Abort()
			return
		}

		user, err := authSvc.ValidateToken(c.Request.Context(), token)
		if err != nil {
			handleServiceError(c, err)
			c.Abort()
			return
		}

		c.Set(currentUserKey, user)
		c.Next()
	}
}

func currentUser(c *gin.Context) (*entities.User, bool) {
	value, ok := c.Get(currentUserKey)
	if !ok {
		return nil, false
	}
	user, ok := value.(*entities.User)
	return user, ok
}

func CORSMiddleware() gin.HandlerFunc {
	return gin.HandlerFunc(func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", "*")
		c.Header("Access-Control-Allow-Credentials", "true")
		c.Header("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, X-CSRF-Token, Authorization, accept, origin, Cache-Control, X-Requested-With")
		c.Header("Access-Control-Allow-Methods", "POST, OPTIONS, GET, PUT, DELETE")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	})
}
