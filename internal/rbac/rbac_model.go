package rbac

import (
	"fmt"

	"github.com/casbin/casbin/v2"
	"github.com/casbin/casbin/v2/model"
)

// Role permissions apply in every branch; the branch only scopes the account to role grouping.
const modelText = `[request_definition]
r = sub, dom, obj, act

[policy_definition]
p = sub, obj, act

[role_definition]
g = _, _, _

[policy_effect]
e = some(where (p.eft == allow))

[matchers]
m = g(r.sub, p.sub, r.dom) && r.obj == p.obj && r.act == p.act
`

func NewEnforcer() (*casbin.Enforcer, error) {
	m, err := model.NewModelFromString(modelText)
	if err != nil {
		return nil, err
	}
	return casbin.NewEnforcer(m)
}

func accountSubject(id int64) string { return fmt.Sprintf("account:%d", id) }
func roleSubject(id int64) string    { return fmt.Sprintf("role:%d", id) }
func branchDomain(id int64) string   { return fmt.Sprintf("branch:%d", id) }
