package identity

import (
	"net/http"

	"github.com/Inteligencia-Artificial-UTalca/unidad-4-rule-based-pcg-teamrc/service/i"
	"github.com/gin-gonic/gin"
)

// IdentityServer handles HTTP requests related to authentication.
type IdentityServer struct {
	authService i.Authenticator
}

// NewIdentityServer creates a new IdentityServer.
func NewIdentityServer(a i.Authenticator) *IdentityServer {
	return &IdentityServer{
		authService: a,
	}
}

// RegisterPublic registers public routes.
func (c *IdentityServer) RegisterPublic(route *gin.RouterGroup) {
	auth := route.Group("/auth")
	{
		auth.POST("/login", c.login)
	}
}

// RegisterProtected registers privileged routes.
func (c *IdentityServer) RegisterProtected(route *gin.RouterGroup) {
}

// login exchanges the admin key for an access token.
func (c *IdentityServer) login(ctx *gin.Context) {
	var request AuthRequest

	if err := ctx.ShouldBind(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	token, err := c.authService.SignIn(request.AdminKey)
	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "invalid admin key"})
		return
	}

	response := &AuthResponse{
		Token: token,
	}
	ctx.JSON(http.StatusOK, response)
}
