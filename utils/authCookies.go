package utils

import (
	"github.com/gin-gonic/gin"
)

// Cookie names shared with the token middleware.
const (
	AccessTokenCookie  = "accessToken"
	RefreshTokenCookie = "refreshToken"
)

// SetAuthCookies stores both tokens as HttpOnly cookies scoped to the
// whole site. The Secure flag is dropped only in debug mode so local
// HTTP development works.
func SetAuthCookies(c *gin.Context, accessToken, refreshToken string) {
	setAuthCookie(c, AccessTokenCookie, accessToken, int(AccessTokenExpiry.Seconds()))
	setAuthCookie(c, RefreshTokenCookie, refreshToken, int(RefreshTokenExpiry.Seconds()))
}

// ClearAuthCookies expires both token cookies.
func ClearAuthCookies(c *gin.Context) {
	setAuthCookie(c, AccessTokenCookie, "", -1)
	setAuthCookie(c, RefreshTokenCookie, "", -1)
}

func setAuthCookie(c *gin.Context, name, value string, maxAge int) {
	secure := gin.Mode() != gin.DebugMode
	c.SetCookie(name, value, maxAge, "/", "", secure, true)
}
