package utils

import (
	"net/http"
	"time"

	"github.com/indianiiot/telemetry-backend/internal/config"
)

func SetAuthCookies(w http.ResponseWriter, access, refresh string) {
	http.SetCookie(
		w, &http.Cookie{
			Name:     config.AccessCookieName,
			Value:    access,
			Path:     "/",
			Expires:  time.Now().Add(config.AccessTokenDuration),
			HttpOnly: true,
			SameSite: http.SameSiteLaxMode,
		},
	)

	http.SetCookie(
		w, &http.Cookie{
			Name:     config.RefreshCookieName,
			Value:    refresh,
			Path:     "/",
			Expires:  time.Now().Add(config.RefreshTokenDuration),
			HttpOnly: true,
			SameSite: http.SameSiteLaxMode,
		},
	)
}

func ClearAuthCookies(w http.ResponseWriter) {
	http.SetCookie(
		w, &http.Cookie{
			Name:     config.AccessCookieName,
			Value:    "",
			Path:     "/",
			MaxAge:   -1,
			HttpOnly: true,
			SameSite: http.SameSiteLaxMode,
		},
	)

	http.SetCookie(
		w, &http.Cookie{
			Name:     config.RefreshCookieName,
			Value:    "",
			Path:     "/",
			MaxAge:   -1,
			HttpOnly: true,
			SameSite: http.SameSiteLaxMode,
		},
	)
}
