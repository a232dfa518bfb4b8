package cartcookie

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"encoding/json"
	"errors"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/faizaniiiking/Ecommerce/internal/modules/cart"
)

var ErrInvalid = errors.New("invalid cart cookie")

// Codec carries the whole session cart in a signed cookie. There is no
// server-side cart state; the cookie is the session.
type Codec struct {
	Secret     []byte
	CookieName string
	Secure     bool
}

func New(secret []byte, name string, secure bool) *Codec {
	return &Codec{Secret: secret, CookieName: name, Secure: secure}
}

// value format: base64(json(cart)).base64(hmac)
func (c *Codec) Encode(crt cart.Cart) (string, error) {
	b, err := json.Marshal(crt)
	if err != nil {
		return "", err
	}
	payload := base64.RawURLEncoding.EncodeToString(b)
	return payload + "." + sign(c.Secret, payload), nil
}

func (c *Codec) Decode(v string) (cart.Cart, error) {
	parts := strings.Split(v, ".")
	if len(parts) != 2 {
		return cart.Cart{}, ErrInvalid
	}
	payload, sig := parts[0], parts[1]
	if !verify(c.Secret, payload, sig) {
		return cart.Cart{}, ErrInvalid
	}
	raw, err := base64.RawURLEncoding.DecodeString(payload)
	if err != nil {
		return cart.Cart{}, ErrInvalid
	}
	var crt cart.Cart
	if err := json.Unmarshal(raw, &crt); err != nil {
		return cart.Cart{}, ErrInvalid
	}
	if crt.Items == nil {
		crt.Items = []cart.Item{}
	}
	return crt, nil
}

// Get reads the session cart. A missing or tampered cookie yields an empty
// cart; a tampered one is also cleared.
func (c *Codec) Get(ctx *gin.Context) cart.Cart {
	v, err := ctx.Cookie(c.CookieName)
	if err != nil || v == "" {
		return cart.New()
	}
	crt, err := c.Decode(v)
	if err != nil {
		c.Clear(ctx)
		return cart.New()
	}
	return crt
}

func (c *Codec) Set(ctx *gin.Context, crt cart.Cart) {
	val, err := c.Encode(crt)
	if err != nil {
		return
	}
	maxAge := int((30 * 24 * time.Hour).Seconds())
	ctx.SetSameSite(2) // Lax
	ctx.SetCookie(c.CookieName, val, maxAge, "/", "", c.Secure, true)
}

func (c *Codec) Clear(ctx *gin.Context) {
	ctx.SetSameSite(2) // Lax
	ctx.SetCookie(c.CookieName, "", -1, "/", "", c.Secure, true)
}

func sign(secret []byte, payload string) string {
	mac := hmac.New(sha256.New, secret)
	mac.Write([]byte(payload))
	return base64.RawURLEncoding.EncodeToString(mac.Sum(nil))
}

func verify(secret []byte, payload, sig string) bool {
	return hmac.Equal([]byte(sign(secret, payload)), []byte(sig))
}
