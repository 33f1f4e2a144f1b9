// file: internals/helpers/token.go
package helper

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// Kunci Locals yang dihydrate oleh middleware AuthJWT.
const (
	LocUserID    = "user_id"
	LocUserRole  = "user_role"
	LocStudentID = "student_id"
)

// Role yang dikenal sistem.
const (
	RoleAdmin     = "admin"     // bendahara
	RolePrincipal = "principal" // kepala sekolah, read-only
	RoleParent    = "parent"    // wali, scoped ke satu siswa
)

func uuidFromLocals(c *fiber.Ctx, key string) (uuid.UUID, error) {
	v := c.Locals(key)
	if v == nil {
		return uuid.Nil, fiber.NewError(fiber.StatusUnauthorized, key+" tidak ditemukan di token")
	}
	s, ok := v.(string)
	if !ok || strings.TrimSpace(s) == "" {
		return uuid.Nil, fiber.NewError(fiber.StatusUnauthorized, key+" kosong di token")
	}
	id, err := uuid.Parse(strings.TrimSpace(s))
	if err != nil {
		return uuid.Nil, fiber.NewError(fiber.StatusBadRequest, "Format "+key+" tidak valid di token")
	}
	return id, nil
}

func GetUserIDFromToken(c *fiber.Ctx) (uuid.UUID, error) {
	return uuidFromLocals(c, LocUserID)
}

// GetStudentIDFromToken: untuk sesi wali — siswa yang boleh diakses.
func GetStudentIDFromToken(c *fiber.Ctx) (uuid.UUID, error) {
	return uuidFromLocals(c, LocStudentID)
}

func GetRoleFromToken(c *fiber.Ctx) (string, error) {
	v := c.Locals(LocUserRole)
	s, ok := v.(string)
	if !ok || strings.TrimSpace(s) == "" {
		return "", fiber.NewError(fiber.StatusUnauthorized, "role tidak ditemukan di token")
	}
	return strings.ToLower(strings.TrimSpace(s)), nil
}
