package services

import (
	"errors"
	"testing"

	"github.com/Yatnesh1410/MovieAPI/internal/mocks"
)

func TestPolicyService_AddPolicy(t *testing.T) {
	var added [][]interface{}
	saved := false
	enforcer := &mocks.MockCasbinEnforcer{
		AddPolicyFunc: func(params ...interface{}) (bool, error) {
			added = append(added, params)
			return true, nil
		},
		SavePolicyFunc: func() error {
			saved = true
			return nil
		},
	}
	svc := NewPolicyServiceWithEnforcer(enforcer)

	if err := svc.AddPolicy("role_user", "/api/v1/movie/*", "GET"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(added) != 1 {
		t.Fatalf("expected one AddPolicy call, got %d", len(added))
	}
	if !saved {
		t.Error("policy change not persisted")
	}
}

func TestPolicyService_AddPolicy_EnforcerError(t *testing.T) {
	enforcer := &mocks.MockCasbinEnforcer{
		AddPolicyFunc: func(params ...interface{}) (bool, error) {
			return false, errors.New("adapter down")
		},
	}
	svc := NewPolicyServiceWithEnforcer(enforcer)

	if err := svc.AddPolicy("role_user", "/api/v1/movie/*", "GET"); err == nil {
		t.Fatal("expected error")
	}
}

func TestPolicyService_RemovePolicy(t *testing.T) {
	saved := false
	enforcer := &mocks.MockCasbinEnforcer{
		SavePolicyFunc: func() error {
			saved = true
			return nil
		},
	}
	svc := NewPolicyServiceWithEnforcer(enforcer)

	if err := svc.RemovePolicy("role_user", "/api/v1/movie/*", "GET"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !saved {
		t.Error("policy change not persisted")
	}
}

func TestPolicyService_CheckPermission(t *testing.T) {
	enforcer := &mocks.MockCasbinEnforcer{
		EnforceFunc: func(rvals ...interface{}) (bool, error) {
			return rvals[0] == "role_admin", nil
		},
	}
	svc := NewPolicyServiceWithEnforcer(enforcer)

	allowed, err := svc.CheckPermission("role_admin", "/api/v1/movie/add", "POST")
	if err != nil || !allowed {
		t.Errorf("admin should be allowed, got %v %v", allowed, err)
	}

	allowed, err = svc.CheckPermission("role_user", "/api/v1/movie/add", "POST")
	if err != nil || allowed {
		t.Errorf("user should be denied, got %v %v", allowed, err)
	}
}

func TestPolicyService_GetPolicies(t *testing.T) {
	want := [][]string{{"role_user", "/api/v1/movie/*", "GET"}}
	enforcer := &mocks.MockCasbinEnforcer{
		GetPolicyFunc: func() ([][]string, error) {
			return want, nil
		},
	}
	svc := NewPolicyServiceWithEnforcer(enforcer)

	got := svc.GetPolicies()
	if len(got) != 1 || got[0][0] != "role_user" {
		t.Errorf("unexpected policies %v", got)
	}
}
