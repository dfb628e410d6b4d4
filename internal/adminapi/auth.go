package adminapi

import (
	"net/http"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/printarts/printrec/internal/app"
	"github.com/printarts/printrec/internal/domain"
	"github.com/printarts/printrec/internal/webserver"
	"github.com/printarts/printrec/pkg/common"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

type loginPayload struct {
	Username string `json:"username" validate:"required,min=1,max=100"`
	Password string `json:"password" validate:"required,min=1,max=100"`
}

func registerAuthRoutes() {
	webserver.PubPOST("/auth/login", login)
	webserver.PubGET("/auth/verify", verifyToken)
}

func login(c echo.Context) error {
	var payload loginPayload
	if err := c.Bind(&payload); err != nil {
		return fail(c, http.StatusBadRequest, "INVALID_REQUEST", "Unable to parse credentials", err.Error())
	}
	if err := c.Validate(&payload); err != nil {
		return err
	}

	var opr domain.SysOpr
	err := GetDB(c).Where("username = ? and status = ?", payload.Username, common.ENABLED).First(&opr).Error
	if err != nil || bcrypt.CompareHashAndPassword([]byte(opr.Password), []byte(payload.Password)) != nil {
		return fail(c, http.StatusUnauthorized, "UNAUTHORIZED", "Invalid username or password", nil)
	}

	expireHours := app.GApp().GetSettingsInt64Value("auth", "token_expire_hours")
	if expireHours <= 0 {
		expireHours = 8
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub":  opr.Username,
		"role": opr.Level,
		"iss":  app.GApp().GetSettingsStringValue("auth", "token_issuer"),
		"exp":  time.Now().Add(time.Duration(expireHours) * time.Hour).Unix(),
	})
	signed, err := token.SignedString([]byte(app.GApp().Config().Web.Secret))
	if err != nil {
		return fail(c, http.StatusInternalServerError, "TOKEN_ERROR", "Failed to issue token", err.Error())
	}

	if err := GetDB(c).Model(&domain.SysOpr{}).Where("id = ?", opr.ID).
		Update("last_login", time.Now()).Error; err != nil {
		zap.L().Warn("failed to record login time", zap.String("username", opr.Username), zap.Error(err))
	}

	return ok(c, map[string]interface{}{
		"access_token": signed,
		"token_type":   "bearer",
	})
}

func verifyToken(c echo.Context) error {
	tokenStr := c.QueryParam("token")
	if tokenStr == "" {
		return fail(c, http.StatusUnauthorized, "UNAUTHORIZED", "Token is required", nil)
	}

	token, err := jwt.Parse(tokenStr, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return []byte(app.GApp().Config().Web.Secret), nil
	})
	if err != nil || !token.Valid {
		return fail(c, http.StatusUnauthorized, "UNAUTHORIZED", "Invalid or expired token", nil)
	}

	claims, _ := token.Claims.(jwt.MapClaims)
	return ok(c, map[string]interface{}{
		"valid":    true,
		"username": claims["sub"],
		"role":     claims["role"],
	})
}
