package identity

import (
	"context"
	"fmt"

	"github.com/golang-jwt/jwt/v4"
	"github.com/xh-polaris/psych-wellness/biz/infrastructure/config"
	"github.com/xh-polaris/psych-wellness/biz/infrastructure/consts"
)

// 身份上下文: 核心逻辑只依赖这里取出的调用方标识, 不接触任何凭证

type ctxKey struct{}

// WithIdentity 将调用方标识写入上下文
func WithIdentity(ctx context.Context, uid string) context.Context {
	return context.WithValue(ctx, ctxKey{}, uid)
}

// FromContext 取出调用方标识, 缺失时视为未授权用户
func FromContext(ctx context.Context) (string, error) {
	uid, ok := ctx.Value(ctxKey{}).(string)
	if !ok || uid == "" {
		return "", consts.ErrInvalidUser
	}
	return uid, nil
}

// ParseToken 校验JWT并返回其中的用户标识
func ParseToken(token string) (string, error) {
	c := config.GetConfig()
	parsed, err := jwt.Parse(token, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return []byte(c.Auth.SecretKey), nil
	})
	if err != nil || !parsed.Valid {
		return "", consts.ErrInvalidUser
	}
	claims, ok := parsed.Claims.(jwt.MapClaims)
	if !ok {
		return "", consts.ErrInvalidUser
	}
	uid, ok := claims["uid"].(string)
	if !ok || uid == "" {
		return "", consts.ErrInvalidUser
	}
	return uid, nil
}
