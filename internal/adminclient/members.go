package adminclient

import (
	"context"
	"fmt"
	"net/url"
)

// VIPMembersError 等级下仍有会员，删除请求不会发出
type VIPMembersError struct {
	Level   string
	Members int64
}

func (e *VIPMembersError) Error() string {
	return fmt.Sprintf("该等级下还有 %d 位会员，请先处理会员后再删除等级", e.Members)
}

// UserQuery 用户列表查询
type UserQuery struct {
	Skip   int
	Limit  int
	Search string
	Status string
}

// ListVIPLevels 会员等级列表
func (c *Client) ListVIPLevels(ctx context.Context) ([]VIPLevel, error) {
	var levels []VIPLevel
	if err := c.get(ctx, "/admin/vip", nil, &levels); err != nil {
		return nil, err
	}
	return levels, nil
}

// CreateVIPLevel 创建会员等级
func (c *Client) CreateVIPLevel(ctx context.Context, form VIPForm) (*VIPLevel, error) {
	if err := Validate(form); err != nil {
		return nil, err
	}
	var level VIPLevel
	if err := c.post(ctx, "/admin/vip", form, &level); err != nil {
		return nil, err
	}
	return &level, nil
}

// UpdateVIPLevel 更新会员等级
func (c *Client) UpdateVIPLevel(ctx context.Context, id string, form VIPForm) (*VIPLevel, error) {
	if err := Validate(form); err != nil {
		return nil, err
	}
	var level VIPLevel
	if err := c.put(ctx, "/admin/vip/"+url.PathEscape(id), form, &level); err != nil {
		return nil, err
	}
	return &level, nil
}

// DeleteVIPLevel 删除等级；本地记录显示仍有会员时直接拒绝，不发请求
func (c *Client) DeleteVIPLevel(ctx context.Context, level VIPLevel) error {
	if level.MemberCount > 0 {
		return &VIPMembersError{Level: level.Name, Members: level.MemberCount}
	}
	return c.delete(ctx, "/admin/vip/"+url.PathEscape(level.ID), nil)
}

// ListUsers 用户列表
func (c *Client) ListUsers(ctx context.Context, q UserQuery) (*Page[User], error) {
	v := windowValues(q.Skip, q.Limit)
	setIf(v, "search", q.Search)
	setIf(v, "status", q.Status)
	var page Page[User]
	if err := c.get(ctx, "/admin/users", v, &page); err != nil {
		return nil, err
	}
	return &page, nil
}

// GetUser 用户详情
func (c *Client) GetUser(ctx context.Context, id string) (*User, error) {
	var user User
	if err := c.get(ctx, "/admin/users/"+url.PathEscape(id), nil, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

// CreateUser 创建用户
func (c *Client) CreateUser(ctx context.Context, form UserForm) (*User, error) {
	if err := Validate(form); err != nil {
		return nil, err
	}
	var user User
	if err := c.post(ctx, "/admin/users", form, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

// UpdateUser 更新用户
func (c *Client) UpdateUser(ctx context.Context, id string, form UserForm) (*User, error) {
	if err := Validate(form); err != nil {
		return nil, err
	}
	var user User
	if err := c.put(ctx, "/admin/users/"+url.PathEscape(id), form, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

// UpdateUserStatus 切换 活跃/非活跃
func (c *Client) UpdateUserStatus(ctx context.Context, id, status string) (*User, error) {
	var user User
	body := map[string]string{"status": status}
	if err := c.put(ctx, "/admin/users/"+url.PathEscape(id)+"/status", body, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

// DeleteUser 删除用户
func (c *Client) DeleteUser(ctx context.Context, id string) error {
	return c.delete(ctx, "/admin/users/"+url.PathEscape(id), nil)
}
