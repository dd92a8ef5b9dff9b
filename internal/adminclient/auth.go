package adminclient

import "context"

// Login 登录并保存令牌
func (c *Client) Login(ctx context.Context, form LoginForm) (*LoginResult, error) {
	if err := Validate(form); err != nil {
		return nil, err
	}
	var result LoginResult
	if err := c.post(ctx, "/admin/login", form, &result); err != nil {
		return nil, err
	}
	c.SetToken(result.AccessToken)
	return &result, nil
}

// Register 注册管理员
func (c *Client) Register(ctx context.Context, form RegisterForm) (*Admin, error) {
	if err := Validate(form); err != nil {
		return nil, err
	}
	var admin Admin
	if err := c.post(ctx, "/admin/register", form, &admin); err != nil {
		return nil, err
	}
	return &admin, nil
}

// Me 当前管理员
func (c *Client) Me(ctx context.Context) (*Admin, error) {
	var admin Admin
	if err := c.get(ctx, "/admin/me", nil, &admin); err != nil {
		return nil, err
	}
	return &admin, nil
}
