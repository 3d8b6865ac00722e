package rayid

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// HeaderName is the response header carrying the request trace id.
const HeaderName = "X-Ray-ID"

// LocalsKey is the fiber locals key holding the trace id.
const LocalsKey = "ray_id"

// New returns a middleware that assigns a unique ray id to every
// request. Clients may supply their own via the header; anything else
// gets a fresh UUID.
func New() fiber.Handler {
	return func(c *fiber.Ctx) error {
		rid := c.Get(HeaderName)
		if rid == "" {
			rid = uuid.NewString()
		}

		c.Locals(LocalsKey, rid)
		c.Set(HeaderName, rid)

		return c.Next()
	}
}
