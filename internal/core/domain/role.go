package domain

// Role is the closed set of actor roles in the system.
type Role string

const (
	RoleHRAdmin  Role = "hr_admin"
	RoleManager  Role = "manager"
	RoleEmployee Role = "employee"
)

// ParseRole validates a raw role string.
func ParseRole(s string) (Role, error) {
	switch Role(s) {
	case RoleHRAdmin, RoleManager, RoleEmployee:
		return Role(s), nil
	}
	return "", ErrUnknownRole
}

func (r Role) Valid() bool {
	_, err := ParseRole(string(r))
	return err == nil
}

// CanManageEmployees reports whether the role may create, edit, and delete
// employee records.
func (r Role) CanManageEmployees() bool {
	return r == RoleHRAdmin
}

// CanManageDepartments reports whether the role may administer departments
// and department membership.
func (r Role) CanManageDepartments() bool {
	return r == RoleManager
}

// CanManageProjects reports whether the role may administer projects and
// project assignments.
func (r Role) CanManageProjects() bool {
	return r == RoleHRAdmin
}

// CanGenerateReports reports whether the role may run aggregate reports.
func (r Role) CanGenerateReports() bool {
	return r == RoleHRAdmin
}
