package models

import (
	"strings"

	"github.com/pkg/errors"
)

type UserRole string

const (
	UserRoleWorker    UserRole = "worker"
	UserRoleRecruiter UserRole = "recruiter"
	UserRoleHRManager UserRole = "hr_manager"
)

var roleHumanName = map[UserRole]string{
	UserRoleWorker:    "Worker",
	UserRoleRecruiter: "Recruiter",
	UserRoleHRManager: "HR manager",
}

// ParseUserRole normalizes the raw token claim value, roles arrive in mixed case
func ParseUserRole(value string) (UserRole, error) {
	role := UserRole(strings.ToLower(strings.TrimSpace(value)))
	if err := role.Validate(); err != nil {
		return "", err
	}
	return role, nil
}

func (r UserRole) Validate() error {
	switch r {
	case UserRoleWorker, UserRoleRecruiter, UserRoleHRManager:
		return nil
	}
	return errors.Errorf("unknown user role (%v)", string(r))
}

func (r UserRole) ToHuman() string {
	if human, exist := roleHumanName[r]; exist {
		return human
	}
	return string(r)
}

func (r UserRole) IsWorker() bool {
	return r == UserRoleWorker
}

// CanManageEvents reports whether the role may create events and approve workers
func (r UserRole) CanManageEvents() bool {
	return r == UserRoleRecruiter || r == UserRoleHRManager
}
