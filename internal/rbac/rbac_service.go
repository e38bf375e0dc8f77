package rbac

import (
	"sync"

	"go-engnet/internal/shared/identity"

	"github.com/casbin/casbin/v2"
	"github.com/casbin/casbin/v2/model"
)

// The platform has exactly two role tiers, so policies are static and live in
// code instead of a database-backed adapter.
const modelText = `
[request_definition]
r = sub, obj, act

[policy_definition]
p = sub, obj, act

[policy_effect]
e = some(where (p.eft == allow))

[matchers]
m = r.sub == p.sub && r.obj == p.obj && r.act == p.act
`

type policy struct {
	role     string
	resource string
	action   string
}

var defaultPolicies = []policy{
	// Admins manage everything, including lifecycle decisions and deletion.
	{identity.RoleAdmin, "reimbursement", "read"},
	{identity.RoleAdmin, "reimbursement", "create"},
	{identity.RoleAdmin, "reimbursement", "update"},
	{identity.RoleAdmin, "reimbursement", "approve"},
	{identity.RoleAdmin, "reimbursement", "delete"},
	{identity.RoleAdmin, "user", "read"},
	{identity.RoleAdmin, "user", "create"},
	{identity.RoleAdmin, "user", "update"},
	{identity.RoleAdmin, "user", "delete"},
	{identity.RoleAdmin, "client", "read"},
	{identity.RoleAdmin, "client", "create"},
	{identity.RoleAdmin, "client", "update"},
	{identity.RoleAdmin, "client", "delete"},
	{identity.RoleAdmin, "sale", "read"},
	{identity.RoleAdmin, "sale", "create"},
	{identity.RoleAdmin, "sale", "update"},
	{identity.RoleAdmin, "sale", "delete"},
	{identity.RoleAdmin, "report", "read"},
	{identity.RoleAdmin, "report", "create"},
	{identity.RoleAdmin, "report", "update"},
	{identity.RoleAdmin, "report", "delete"},

	// Standard members file and follow their own requests and work the CRM.
	{identity.RoleMember, "reimbursement", "read"},
	{identity.RoleMember, "reimbursement", "create"},
	{identity.RoleMember, "reimbursement", "update"},
	{identity.RoleMember, "user", "read"},
	{identity.RoleMember, "client", "read"},
	{identity.RoleMember, "client", "create"},
	{identity.RoleMember, "client", "update"},
	{identity.RoleMember, "sale", "read"},
	{identity.RoleMember, "sale", "create"},
	{identity.RoleMember, "sale", "update"},
	{identity.RoleMember, "report", "read"},
	{identity.RoleMember, "report", "create"},
	{identity.RoleMember, "report", "update"},
}

//go:generate mockgen -source=rbac_service.go -destination=mock/rbac_service_mock.go -package=mock
type Service interface {
	Enforce(role, resource, action string) (bool, error)
}

type service struct {
	enforcer *casbin.Enforcer
	mu       sync.RWMutex
}

func NewService() (Service, error) {
	m, err := model.NewModelFromString(modelText)
	if err != nil {
		return nil, err
	}

	enforcer, err := casbin.NewEnforcer(m)
	if err != nil {
		return nil, err
	}

	for _, p := range defaultPolicies {
		if _, err := enforcer.AddPolicy(p.role, p.resource, p.action); err != nil {
			return nil, err
		}
	}

	return &service{enforcer: enforcer}, nil
}

func (s *service) Enforce(role, resource, action string) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.enforcer.Enforce(role, resource, action)
}
