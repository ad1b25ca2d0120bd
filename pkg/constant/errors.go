/*
 * @Description:
 * @Author: 安知鱼
 * @Date: 2025-08-20 14:40:12
 * @LastEditTime: 2025-09-22 19:03:50
 * @LastEditors: 安知鱼
 */
package constant

import "errors"

// 定义业务逻辑相关的标准错误
var (
	// ErrNotFound 表示资源未找到，可以由 Handler 转换为 404
	ErrNotFound = errors.New("资源未找到")

	// ErrForbidden 表示无权访问，可以由 Handler 转换为 403
	ErrForbidden = errors.New("操作禁止")

	// ErrConflict 表示资源冲突，可以由 Handler 转换为 409
	ErrConflict = errors.New("资源冲突")

	// ErrInternalServer 表示服务器内部错误，可以由 Handler 转换为 500
	ErrInternalServer = errors.New("内部服务器错误")

	// ErrBadRequest 表示请求参数错误，可以由 Handler 转换为 400
	ErrBadRequest = errors.New("错误的请求")

	// ErrUnauthorized 表示未授权，可以由 Handler 转换为 401
	ErrUnauthorized = errors.New("未经授权的访问")

	// ErrInvalidToken 表示无效的令牌，可以由 Handler 转换为 401
	ErrInvalidToken = errors.New("无效令牌")

	// ErrInvalidPublicID 表示无效的公共ID，可以由 Handler 转换为 400
	ErrInvalidPublicID = errors.New("无效的公共ID")

	// ErrTagTooLong 表示标签或字段名超出长度上限，可以由 Handler 转换为 400
	ErrTagTooLong = errors.New("标签长度超出上限")

	// ErrTagNameConflict 表示同分组下标签文本冲突，可以由 Handler 转换为 409
	ErrTagNameConflict = errors.New("该分组下已存在同名标签")

	// ErrGroupNameConflict 表示同用户下分组名称冲突，可以由 Handler 转换为 409
	ErrGroupNameConflict = errors.New("已存在同名标签分组")

	// ErrNotGroupOwner 表示操作了不属于自己的标签分组
	ErrNotGroupOwner = errors.New("标签分组不属于当前用户")

	// ErrUsernameTaken 表示用户名已被占用，可以由 Handler 转换为 409
	ErrUsernameTaken = errors.New("用户名已被占用")

	// ErrInvalidCredentials 表示用户名或密码错误，可以由 Handler 转换为 401
	ErrInvalidCredentials = errors.New("用户名或密码错误")

	// ErrUserBanned 表示用户已被封禁或未激活，可以由 Handler 转换为 403
	ErrUserBanned = errors.New("用户状态异常")
)
