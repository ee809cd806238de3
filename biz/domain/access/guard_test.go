package access

import (
	"errors"
	"testing"

	"github.com/xh-polaris/psych-wellness/biz/infrastructure/consts"
)

func TestReadGuard(t *testing.T) {
	if err := ReadGuard("alice", "alice"); err != nil {
		t.Errorf("own record: err = %v, want nil", err)
	}
	// 跨用户读按不存在处理, 而不是显式拒绝
	if err := ReadGuard("mallory", "alice"); !errors.Is(err, consts.ErrNotFound) {
		t.Errorf("cross user read: err = %v, want ErrNotFound", err)
	}
}

func TestWriteGuard(t *testing.T) {
	if err := WriteGuard("alice", "alice"); err != nil {
		t.Errorf("own record: err = %v, want nil", err)
	}
	if err := WriteGuard("mallory", "alice"); !errors.Is(err, consts.ErrNotAuthorized) {
		t.Errorf("cross user write: err = %v, want ErrNotAuthorized", err)
	}
}

func TestIsAdmin(t *testing.T) {
	tests := []struct {
		uid     string
		adminId string
		want    bool
	}{
		{"admin", "admin", true},
		{"alice", "admin", false},
		{"", "", false},
		{"", "admin", false},
	}
	for _, tt := range tests {
		if got := IsAdmin(tt.uid, tt.adminId); got != tt.want {
			t.Errorf("IsAdmin(%q, %q) = %v, want %v", tt.uid, tt.adminId, got, tt.want)
		}
	}
}
