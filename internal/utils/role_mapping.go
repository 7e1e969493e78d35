package utils

import (
	"strings"

	"review_project/internal/domain"
)

func ParseRole(raw string) (domain.Role, bool) {
	switch domain.Role(strings.ToLower(strings.TrimSpace(raw))) {
	case domain.ADMIN:
		return domain.ADMIN, true
	case domain.EMPLOYEE:
		return domain.EMPLOYEE, true
	default:
		return "", false
	}
}
