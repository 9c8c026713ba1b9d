package http

import (
	"encoding/json"
	"net/url"
	"time"

	"github.com/gofiber/fiber/v2"
)

// FlashCookie cookie que transporta los avisos del panel hasta la siguiente página.
const FlashCookie = "flash_messages"

// FlashMessage aviso de una sola lectura.
type FlashMessage struct {
	Level   string `json:"level"` // error, info
	Message string `json:"message"`
}

// addFlash agrega un aviso a los pendientes de la cookie.
func addFlash(c *fiber.Ctx, level, message string) {
	msgs := append(readFlash(c), FlashMessage{Level: level, Message: message})
	raw, err := json.Marshal(msgs)
	if err != nil {
		return
	}
	c.Cookie(&fiber.Cookie{
		Name:     FlashCookie,
		Value:    url.QueryEscape(string(raw)),
		Path:     "/admin",
		HTTPOnly: true,
		SameSite: fiber.CookieSameSiteLaxMode,
	})
}

// consumeFlash devuelve los avisos pendientes y borra la cookie.
func consumeFlash(c *fiber.Ctx) []FlashMessage {
	msgs := readFlash(c)
	if c.Cookies(FlashCookie) != "" {
		c.Cookie(&fiber.Cookie{
			Name:     FlashCookie,
			Value:    "",
			Path:     "/admin",
			Expires:  time.Unix(0, 0),
			HTTPOnly: true,
		})
	}
	return msgs
}

func readFlash(c *fiber.Ctx) []FlashMessage {
	raw := c.Cookies(FlashCookie)
	if raw == "" {
		return []FlashMessage{}
	}
	decoded, err := url.QueryUnescape(raw)
	if err != nil {
		return []FlashMessage{}
	}
	var msgs []FlashMessage
	if err := json.Unmarshal([]byte(decoded), &msgs); err != nil || msgs == nil {
		return []FlashMessage{}
	}
	return msgs
}
