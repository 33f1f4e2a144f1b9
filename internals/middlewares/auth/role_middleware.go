package auth

import (
	"github.com/gofiber/fiber/v2"

	helper "sekolahku_backend/internals/helpers"
)

// OnlyRoles validasi role user terhadap daftar role yang diizinkan.
func OnlyRoles(customForbiddenMessage string, roles ...string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		role, err := helper.GetRoleFromToken(c)
		if err != nil {
			return err
		}
		for _, allowed := range roles {
			if role == allowed {
				return c.Next()
			}
		}
		if customForbiddenMessage == "" {
			customForbiddenMessage = "Anda tidak berhak mengakses resource ini"
		}
		return fiber.NewError(fiber.StatusForbidden, customForbiddenMessage)
	}
}

// OnlyAdmin: khusus bendahara/admin.
func OnlyAdmin() fiber.Handler {
	return OnlyRoles("Hanya admin yang boleh mengakses", helper.RoleAdmin)
}

// AdminOrPrincipal: admin penuh, kepala sekolah read-only (pasang di route GET).
func AdminOrPrincipal() fiber.Handler {
	return OnlyRoles("Hanya admin atau kepala sekolah yang boleh mengakses", helper.RoleAdmin, helper.RolePrincipal)
}

// OnlyParent: sesi wali, dibatasi satu siswa via claim student_id.
func OnlyParent() fiber.Handler {
	return OnlyRoles("Hanya wali siswa yang boleh mengakses", helper.RoleParent)
}
