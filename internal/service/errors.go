package service

import (
	"errors"
	"fmt"
)

// 错误文案同时作为接口 detail 原样返回
var (
	ErrNotFound                = errors.New("Resource not found")
	ErrOrderNotFound           = errors.New("Order not found")
	ErrOrderStatusRequired     = errors.New("Status is required")
	ErrOrderStatusInvalid      = errors.New("Unknown order status")
	ErrOrderTransition         = errors.New("order status transition not allowed")
	ErrShipmentNotFound        = errors.New("Shipping not found")
	ErrShipmentExists          = errors.New("Shipping already exists for this order")
	ErrShipmentOrderNotShipped = errors.New("Order has not been shipped")
	ErrShipmentStatusBad       = errors.New("Unknown shipping status")
	ErrShipmentStageInvalid    = errors.New("shipping can only advance one stage at a time")
	ErrShipmentDelivered       = errors.New("shipping already delivered")
	ErrVIPNotFound             = errors.New("VIP level not found")
	ErrVIPNameExists           = errors.New("VIP level name already exists")
	ErrVIPLevelExists          = errors.New("VIP level number already exists")
	ErrVIPHasMembers           = errors.New("VIP level has members")
	ErrUserNotFound            = errors.New("User not found")
	ErrUserExists              = errors.New("Email already registered")
	ErrUserStatusInvalid       = errors.New("Unknown user status")
	ErrCategoryNotFound        = errors.New("Category not found")
	ErrCategoryExists          = errors.New("Category name already exists")
	ErrBannerNotFound          = errors.New("Banner not found")
	ErrProductNotFound         = errors.New("Product not found")
	ErrInvalidCredentials      = errors.New("Incorrect username/email or password")
	ErrAdminExists             = errors.New("Email already registered")
	ErrAdminUsernameTaken      = errors.New("Username already registered")
	ErrInvalidInput            = errors.New("Invalid input")
	ErrWeakPassword            = errors.New("Password does not meet policy")
	ErrInvalidToken            = errors.New("Invalid token")
)

// TransitionError 非法的订单状态迁移
type TransitionError struct {
	From string
	To   string
}

func (e *TransitionError) Error() string {
	return fmt.Sprintf("%s: %s -> %s", ErrOrderTransition.Error(), e.From, e.To)
}

// Unwrap 便于 errors.Is(err, ErrOrderTransition)
func (e *TransitionError) Unwrap() error {
	return ErrOrderTransition
}

// VIPMembersError 删除仍有会员的等级
type VIPMembersError struct {
	Members int64
}

func (e *VIPMembersError) Error() string {
	return fmt.Sprintf("Cannot delete VIP level with %d members", e.Members)
}

// Unwrap 便于 errors.Is(err, ErrVIPHasMembers)
func (e *VIPMembersError) Unwrap() error {
	return ErrVIPHasMembers
}

// FieldError 输入校验失败
type FieldError struct {
	Field   string
	Message string
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// Unwrap 便于 errors.Is(err, ErrInvalidInput)
func (e *FieldError) Unwrap() error {
	return ErrInvalidInput
}
