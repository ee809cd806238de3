package service

import (
	"errors"
	"testing"

	"github.com/xh-polaris/psych-wellness/biz/adaptor/cmd"
	"github.com/xh-polaris/psych-wellness/biz/infrastructure/config"
	"github.com/xh-polaris/psych-wellness/biz/infrastructure/consts"
)

func newResourceService() *ResourceService {
	c := &config.Config{}
	c.Auth.AdminId = "admin"
	return &ResourceService{
		Config:         c,
		ResourceMapper: newFakeResourceMapper(),
		CounterMapper:  newFakeCounterMapper(),
	}
}

func validResource() *cmd.AddTherapeuticResourceReq {
	return &cmd.AddTherapeuticResourceReq{
		Category:            "breathing",
		Name:                "box breathing",
		Description:         "four counts in, hold, out, hold",
		Tag:                 "anxiety",
		EffectivenessRating: 4,
		Difficulty:          "beginner",
		AppliesTo:           []string{"anxiety", "stress"},
	}
}

func TestAddTherapeuticResourceAdminOnly(t *testing.T) {
	svc := newResourceService()

	_, err := svc.AddTherapeuticResource(identCtx("alice"), validResource())
	if !errors.Is(err, consts.ErrNotAuthorized) {
		t.Errorf("non admin: err = %v, want ErrNotAuthorized", err)
	}

	resp, err := svc.AddTherapeuticResource(identCtx("admin"), validResource())
	if err != nil {
		t.Fatalf("admin add err = %v", err)
	}
	if resp.ResourceId != 0 {
		t.Errorf("first resource id = %d, want 0", resp.ResourceId)
	}
}

func TestGetTherapeuticResourcePublicRead(t *testing.T) {
	svc := newResourceService()
	added, err := svc.AddTherapeuticResource(identCtx("admin"), validResource())
	if err != nil {
		t.Fatalf("add err = %v", err)
	}

	// 资源库是公共读, 普通用户也能读到管理员上架的资源
	got, err := svc.GetTherapeuticResource(identCtx("alice"), &cmd.GetTherapeuticResourceReq{
		Category:   "breathing",
		ResourceId: added.ResourceId,
	})
	if err != nil {
		t.Fatalf("GetTherapeuticResource err = %v", err)
	}
	if !got.Found || got.Resource.Name != "box breathing" {
		t.Errorf("resource = %+v", got.Resource)
	}

	// 类目也是键的一部分
	miss, err := svc.GetTherapeuticResource(identCtx("alice"), &cmd.GetTherapeuticResourceReq{
		Category:   "meditation",
		ResourceId: added.ResourceId,
	})
	if err != nil {
		t.Fatalf("GetTherapeuticResource err = %v", err)
	}
	if miss.Found {
		t.Error("resource found under wrong category")
	}
}

func TestGetResourceCounter(t *testing.T) {
	svc := newResourceService()
	ctx := identCtx("admin")

	for i := 0; i < 3; i++ {
		if _, err := svc.AddTherapeuticResource(ctx, validResource()); err != nil {
			t.Fatalf("add err = %v", err)
		}
	}

	counter, err := svc.GetResourceCounter(identCtx("alice"))
	if err != nil {
		t.Fatalf("GetResourceCounter err = %v", err)
	}
	if counter.Count != 3 {
		t.Errorf("counter = %d, want 3", counter.Count)
	}
}
