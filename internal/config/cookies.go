package config

import (
	"fmt"
	"net/http"
	"strings"
	"time"
)

/*
Cookies stores the player token in two cookies: "auth" carries the header and
payload and stays readable by scripts, "sign" carries the signature and is
HTTP-only. Both are needed to rebuild the token.
*/
type Cookies struct {
	Domain   string
	Secure   bool
	SameSite http.SameSite
}

func parseSameSite(s string) http.SameSite {
	switch strings.ToUpper(s) {
	case "DEFAULT":
		return http.SameSiteDefaultMode
	case "LAX":
		return http.SameSiteLaxMode
	case "NONE":
		return http.SameSiteNoneMode
	default:
		return http.SameSiteStrictMode
	}
}

func NewCookies() (*Cookies, error) {
	domain, err := requireEnv("COOKIES_DOMAIN")
	if err != nil {
		return nil, err
	}
	secure, err := requireEnv("COOKIES_SECURE")
	if err != nil {
		return nil, err
	}
	sameSite, err := requireEnv("COOKIES_SAMESITE")
	if err != nil {
		return nil, err
	}

	cookies := &Cookies{
		Domain:   domain,
		Secure:   secure != "0",
		SameSite: parseSameSite(sameSite),
	}
	return cookies, nil
}

func (c *Cookies) cookie(name, value string, httpOnly bool) *http.Cookie {
	return &http.Cookie{
		Name:     name,
		Path:     "/",
		Value:    value,
		HttpOnly: httpOnly,
		Domain:   c.Domain,
		Secure:   c.Secure,
		SameSite: c.SameSite,
	}
}

func (c *Cookies) Clear(w http.ResponseWriter) {
	for _, name := range []string{"auth", "sign"} {
		cookie := c.cookie(name, "delete", name == "sign")
		cookie.MaxAge = -1
		http.SetCookie(w, cookie)
	}
}

func (c *Cookies) Refresh(w http.ResponseWriter, token string, expires time.Time) error {
	lastDot := strings.LastIndexByte(token, '.')
	if lastDot < 0 || strings.Count(token, ".") != 2 {
		return fmt.Errorf("malformed JWT token generated")
	}

	auth := c.cookie("auth", token[:lastDot], false)
	auth.Expires = expires
	http.SetCookie(w, auth)

	sign := c.cookie("sign", token[lastDot+1:], true)
	sign.Expires = expires
	http.SetCookie(w, sign)

	return nil
}

// Token joins the two cookies back into a JWT.
func (c *Cookies) Token(r *http.Request) (string, error) {
	auth, err := r.Cookie("auth")
	if err != nil {
		return "", err
	}
	sign, err := r.Cookie("sign")
	if err != nil {
		return "", err
	}
	return auth.Value + "." + sign.Value, nil
}
