package employee

import "errors"

// Employee domain errors
var (
	ErrEmployeeNotFound   = errors.New("Employee not found")
	ErrEmployeeCodeExists = errors.New("employeeCode already exists")
	ErrEmailExists        = errors.New("email already exists")
	ErrDepartmentInvalid  = errors.New("departmentId is invalid")
	ErrManagerInvalid     = errors.New("managerId is invalid")
)
