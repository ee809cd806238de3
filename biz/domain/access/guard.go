package access

import (
	"github.com/xh-polaris/psych-wellness/biz/infrastructure/consts"
)

// 归属守卫: 所有跨用户的读写判定收口在这里, 避免各服务各写一份造成泄露面

// ReadGuard 读路径守卫
// 非本人的记录一律按"不存在"处理, 调用方无法区分"没有"和"不是你的"
func ReadGuard(uid, owner string) error {
	if uid != owner {
		return consts.ErrNotFound
	}
	return nil
}

// WriteGuard 写路径守卫, 跨用户修改显式拒绝
func WriteGuard(uid, owner string) error {
	if uid != owner {
		return consts.ErrNotAuthorized
	}
	return nil
}

// IsAdmin 判断调用方是否为部署时指定的管理员
func IsAdmin(uid, adminId string) bool {
	return uid != "" && uid == adminId
}
