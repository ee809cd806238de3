package identity

import (
	"context"
	"errors"
	"testing"

	"github.com/xh-polaris/psych-wellness/biz/infrastructure/consts"
)

func TestFromContext(t *testing.T) {
	ctx := WithIdentity(context.Background(), "alice")
	uid, err := FromContext(ctx)
	if err != nil {
		t.Fatalf("FromContext err = %v", err)
	}
	if uid != "alice" {
		t.Errorf("uid = %q, want alice", uid)
	}
}

func TestFromContextMissing(t *testing.T) {
	if _, err := FromContext(context.Background()); !errors.Is(err, consts.ErrInvalidUser) {
		t.Errorf("err = %v, want ErrInvalidUser", err)
	}

	// 空标识等同于缺失
	if _, err := FromContext(WithIdentity(context.Background(), "")); !errors.Is(err, consts.ErrInvalidUser) {
		t.Errorf("empty uid: err = %v, want ErrInvalidUser", err)
	}
}
