package user

type Permission string

const (
	// Self Management
	PermissionViewOwnProfile Permission = "profile.view_own"
	PermissionEditOwnProfile Permission = "profile.edit_own"

	// Employee Management
	PermissionEmployeeView   Permission = "employee.view"
	PermissionEmployeeCreate Permission = "employee.create"
	PermissionEmployeeDelete Permission = "employee.delete"

	// Attendance Management
	PermissionAttendanceView   Permission = "attendance.view"
	PermissionAttendanceMark   Permission = "attendance.mark"
	PermissionAttendanceDelete Permission = "attendance.delete"

	// Wages
	PermissionWageView          Permission = "wage.view"
	PermissionWageRecordAdvance Permission = "wage.record_advance"
	PermissionWageDeleteAdvance Permission = "wage.delete_advance"

	// Reports
	PermissionReportsView   Permission = "reports.view"
	PermissionReportsExport Permission = "reports.export"
)

// RolePermissions maps roles to their permissions
var RolePermissions = map[Role][]Permission{
	RoleAdmin: {
		// Admin has all permissions
		PermissionViewOwnProfile,
		PermissionEditOwnProfile,
		PermissionEmployeeView,
		PermissionEmployeeCreate,
		PermissionEmployeeDelete,
		PermissionAttendanceView,
		PermissionAttendanceMark,
		PermissionAttendanceDelete,
		PermissionWageView,
		PermissionWageRecordAdvance,
		PermissionWageDeleteAdvance,
		PermissionReportsView,
		PermissionReportsExport,
	},
	RoleSupervisor: {
		// Supervisor works within one site and cannot delete
		PermissionViewOwnProfile,
		PermissionEditOwnProfile,
		PermissionEmployeeView,
		PermissionEmployeeCreate,
		PermissionAttendanceView,
		PermissionAttendanceMark,
		PermissionWageView,
		PermissionWageRecordAdvance,
		PermissionReportsView,
		PermissionReportsExport,
	},
}

// HasPermission checks if a role has a specific permission
func HasPermission(role Role, permission Permission) bool {
	permissions, exists := RolePermissions[role]
	if !exists {
		return false
	}

	for _, p := range permissions {
		if p == permission {
			return true
		}
	}

	return false
}
