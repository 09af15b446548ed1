package middleware

import (
	"log/slog"

	"github.com/gofiber/fiber/v2"
	"github.com/limelight-tw/loyalty/backend/utils"
	"github.com/limelight-tw/loyalty/loyalty/identity"
)

const profileLocalsKey = "platform_profile"

// PlatformAuth extracts the identity-platform profile triple forwarded by the
// gateway after its login handshake. The handshake itself is out of scope
// here; the triple is trusted as given, never re-derived.
func PlatformAuth() fiber.Handler {
	return func(c *fiber.Ctx) error {
		profile := identity.PlatformProfile{
			MemberID:    c.Get("X-Member-Id"),
			DisplayName: c.Get("X-Display-Name"),
			AvatarURL:   c.Get("X-Avatar-Url"),
		}

		if profile.MemberID == "" {
			slog.Debug("Auth required: no platform profile on request",
				slog.String("type", "http"),
				slog.String("path", c.Path()))
			return utils.SendUnauthorized(c, "No resolvable platform profile")
		}

		c.Locals(profileLocalsKey, profile)
		return c.Next()
	}
}

// ProfileFromCtx returns the profile stored by PlatformAuth.
func ProfileFromCtx(c *fiber.Ctx) (identity.PlatformProfile, bool) {
	profile, ok := c.Locals(profileLocalsKey).(identity.PlatformProfile)
	return profile, ok
}
