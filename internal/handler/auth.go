package handler

import (
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/appayon/table-reservation/internal/utils"
)

// RoleAdmin is the role claim carried by admin session tokens.
const RoleAdmin = "ADMIN"

// AuthHandler issues admin session tokens against the single shared
// credential pair.  The dashboard exchanges the credentials for a JWT
// and presents it on every admin request, so no ambient logged-in flag
// exists server-side.
type AuthHandler struct {
	Username     string // configured admin username
	PasswordHash string // bcrypt hash of the configured admin password
	JWTSecret    string
	AccessTTLMin int
}

func NewAuthHandler(username, passwordHash, jwtSecret string, accessTTLMin int) *AuthHandler {
	return &AuthHandler{
		Username:     username,
		PasswordHash: passwordHash,
		JWTSecret:    jwtSecret,
		AccessTTLMin: accessTTLMin,
	}
}

type loginReq struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type tokenPart struct {
	Token   string    `json:"token"`
	Expires time.Time `json:"expires"`
}

type userPart struct {
	Username string `json:"username"`
	Role     string `json:"role"`
}

type loginResp struct {
	User   userPart  `json:"user"`
	Access tokenPart `json:"access"`
}

// Login handles POST /api/auth/login.  On success it returns a signed
// access token; any credential mismatch yields an identical 401 so the
// response does not reveal which half was wrong.
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	req.Username = strings.TrimSpace(req.Username)
	if req.Username == "" || req.Password == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "username/password required"})
	}
	if req.Username != h.Username || !utils.VerifyPassword(h.PasswordHash, req.Password) {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "invalid credentials"})
	}
	access, err := utils.NewAccessToken(h.JWTSecret, req.Username, RoleAdmin, h.AccessTTLMin)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "issue access failed"})
	}
	return c.JSON(http.StatusOK, loginResp{
		User:   userPart{Username: req.Username, Role: RoleAdmin},
		Access: tokenPart{Token: access.Token, Expires: access.Exp},
	})
}

// Me handles GET /api/auth/me.  It echoes the identity of the
// presented token so the dashboard can restore its session on reload.
func (h *AuthHandler) Me(c echo.Context) error {
	username, _ := c.Get("username").(string)
	role, _ := c.Get("role").(string)
	return c.JSON(http.StatusOK, userPart{Username: username, Role: role})
}
