package router

import (
	"context"
	"net/http"
	"strings"

	"github.com/cloudwego/hertz/pkg/app"
	bizerrors "github.com/xh-polaris/gopkg/errors"
	"github.com/xh-polaris/psych-wellness/biz/infrastructure/consts"
	"github.com/xh-polaris/psych-wellness/biz/infrastructure/identity"
	"google.golang.org/grpc/status"
)

func _rootMw() []app.HandlerFunc {
	return []app.HandlerFunc{authMw}
}

func _chatMw() []app.HandlerFunc {
	return nil
}

// authMw 校验Bearer凭证并把调用方标识写入上下文
// 后续所有处理只认上下文里的标识, 不再接触凭证
func authMw(ctx context.Context, c *app.RequestContext) {
	token := string(c.GetHeader("Authorization"))
	token = strings.TrimPrefix(token, "Bearer ")
	if token == "" {
		abortUnauthorized(c)
		return
	}

	uid, err := identity.ParseToken(token)
	if err != nil {
		abortUnauthorized(c)
		return
	}
	c.Next(identity.WithIdentity(ctx, uid))
}

func abortUnauthorized(c *app.RequestContext) {
	s, _ := status.FromError(consts.ErrInvalidUser)
	c.JSON(http.StatusOK, &bizerrors.BizError{
		Code: uint32(s.Code()),
		Msg:  s.Message(),
	})
	c.Abort()
}
