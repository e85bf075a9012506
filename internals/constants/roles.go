package constants

import "fmt"

// Role dasar aplikasi CLAS
const (
	RoleStudent     = "student"
	RoleFacilitator = "facilitator"
	RoleSupervisor  = "supervisor"
	RoleAdmin       = "admin"
	RoleOwner       = "owner"
)

// Template pesan error role
const (
	ErrOnlyFacilitatorsCanAccess = "❌ Hanya facilitator, supervisor, atau admin yang boleh mengakses fitur %s."
	ErrOnlyAdminsCanAccess       = "❌ Hanya admin yang boleh mengakses fitur %s."
	ErrOnlySupervisorsCanAccess  = "❌ Hanya supervisor atau admin yang boleh mengakses fitur %s."
)

// Fungsi helper untuk menghasilkan pesan error dinamis
func RoleErrorFacilitator(feature string) string {
	return fmt.Sprintf(ErrOnlyFacilitatorsCanAccess, feature)
}

func RoleErrorAdmin(feature string) string {
	return fmt.Sprintf(ErrOnlyAdminsCanAccess, feature)
}

func RoleErrorSupervisor(feature string) string {
	return fmt.Sprintf(ErrOnlySupervisorsCanAccess, feature)
}

// ==========================
// ✅ Grouped Role Slices
// ==========================
var (
	AllRoles = []string{
		RoleStudent,
		RoleFacilitator,
		RoleSupervisor,
		RoleAdmin,
		RoleOwner,
	}

	FacilitatorAndAbove = []string{
		RoleFacilitator,
		RoleSupervisor,
		RoleAdmin,
		RoleOwner,
	}

	SupervisorAndAbove = []string{
		RoleSupervisor,
		RoleAdmin,
		RoleOwner,
	}

	AdminOnly = []string{
		RoleAdmin,
		RoleOwner,
	}
)
