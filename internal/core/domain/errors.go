package domain

import "errors"

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUserExists         = errors.New("user already exists for this employee")
	ErrUserNotFound       = errors.New("user not found")
	ErrRegistrationClosed = errors.New("public registration is disabled")
	ErrUnknownRole        = errors.New("unknown role")
	ErrForbidden          = errors.New("access forbidden")

	ErrEmployeeNotFound = errors.New("employee not found")
	ErrEmailTaken       = errors.New("email already registered")
	ErrSelfDelete       = errors.New("an employee cannot delete their own record")

	ErrDepartmentNotFound  = errors.New("department not found")
	ErrDepartmentHasOwner  = errors.New("department has another manager assigned")
	ErrAlreadyInDepartment = errors.New("employee already has a department assigned")
	ErrNotInDepartment     = errors.New("employee has no department assigned")

	ErrProjectNotFound    = errors.New("project not found")
	ErrAssignmentNotFound = errors.New("project assignment not found")
	ErrAlreadyAssigned    = errors.New("employee is already assigned to this project")

	ErrTimeRecordNotFound  = errors.New("time record not found")
	ErrInvalidTimeRecord   = errors.New("hours must be positive and description non-empty")
	ErrDailyCapExceeded    = errors.New("daily hours cap exceeded")
	ErrBeforeContractDate  = errors.New("date precedes contract date")
	ErrDuplicateSubmission = errors.New("identical time record already submitted")
	ErrEmptyReport         = errors.New("no data to generate the report")
	ErrUnknownReportKind   = errors.New("unknown report kind")
)
