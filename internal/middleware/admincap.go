package middleware

import (
	"context"

	"github.com/google/uuid"
	"github.com/m1z23r/drift/pkg/drift"
)

const (
	AdminCapHeader = "X-Admin-Cap"
	AdminCapIDKey  = "admin_cap_id"
)

// AdminCapVerifier checks that capID was issued for vaultID and is held by
// holderID.
type AdminCapVerifier interface {
	VerifyAdmin(ctx context.Context, capID, vaultID, holderID uuid.UUID) error
}

// AdminCap guards routes under /vaults/:vaultId with the capability named in
// the X-Admin-Cap header. It must run after Auth.
func AdminCap(verifier AdminCapVerifier) drift.HandlerFunc {
	return func(c *drift.Context) {
		header := c.GetHeader(AdminCapHeader)
		if header == "" {
			c.Forbidden("missing admin capability")
			return
		}

		capID, err := uuid.Parse(header)
		if err != nil {
			c.Forbidden("invalid admin capability")
			return
		}

		vaultID, err := uuid.Parse(c.Param("vaultId"))
		if err != nil {
			c.BadRequest("invalid vault id")
			return
		}

		if err := verifier.VerifyAdmin(c.Request.Context(), capID, vaultID, GetAccountID(c)); err != nil {
			c.Forbidden("admin capability does not authorize this vault")
			return
		}

		c.Set(AdminCapIDKey, capID)
		c.Next()
	}
}

func GetAdminCapID(c *drift.Context) uuid.UUID {
	if id, ok := c.Get(AdminCapIDKey); ok {
		if uid, ok := id.(uuid.UUID); ok {
			return uid
		}
	}
	return uuid.Nil
}
