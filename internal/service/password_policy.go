package service

import (
	"fmt"
	"unicode"

	"github.com/petmall-admin/internal/config"
)

// PasswordPolicyError 密码不满足策略
type PasswordPolicyError struct {
	Reason string
}

func (e *PasswordPolicyError) Error() string {
	return "Password " + e.Reason
}

// Is 便于 errors.Is(err, ErrWeakPassword)
func (e *PasswordPolicyError) Is(target error) bool {
	return target == ErrWeakPassword
}

func validatePassword(policy config.PasswordPolicyConfig, password string) error {
	if policy.MinLength > 0 && len([]rune(password)) < policy.MinLength {
		return &PasswordPolicyError{Reason: fmt.Sprintf("must be at least %d characters", policy.MinLength)}
	}

	var hasUpper, hasLower, hasNumber, hasSpecial bool
	for _, r := range password {
		switch {
		case unicode.IsUpper(r):
			hasUpper = true
		case unicode.IsLower(r):
			hasLower = true
		case unicode.IsDigit(r):
			hasNumber = true
		default:
			hasSpecial = true
		}
	}

	if policy.RequireUpper && !hasUpper {
		return &PasswordPolicyError{Reason: "must contain an uppercase letter"}
	}
	if policy.RequireLower && !hasLower {
		return &PasswordPolicyError{Reason: "must contain a lowercase letter"}
	}
	if policy.RequireNumber && !hasNumber {
		return &PasswordPolicyError{Reason: "must contain a digit"}
	}
	if policy.RequireSpecial && !hasSpecial {
		return &PasswordPolicyError{Reason: "must contain a special character"}
	}
	return nil
}
