// Package access holds the static role rule table and answers whether a role
// may perform an action on an entity.
package access

import (
	"fmt"

	"github.com/GlebRadaev/tradefund/internal/domain"
)

type Role string

const (
	RoleAdmin Role = "admin"
	RoleUser  Role = "user"
)

type Action string

const (
	ActionView   Action = "view"
	ActionCreate Action = "create"
	ActionUpdate Action = "update"
	ActionDelete Action = "delete"
	// ActionManage covers every other action on the same entity.
	ActionManage Action = "manage"
)

type Entity string

const (
	EntityAdminDashboard Entity = "admin_dashboard"
	EntityUserDashboard  Entity = "user_dashboard"
	EntityUsers          Entity = "users"
	EntityTrades         Entity = "trades"
)

type Effect string

const (
	Allow Effect = "allow"
	Deny  Effect = "deny"
)

type Rule struct {
	Role   Role   `json:"role"`
	Action Action `json:"action"`
	Entity Entity `json:"entity"`
	Effect Effect `json:"effect"`
}

// rules is evaluated from the end: a later rule overrides an earlier one for
// the same role and entity.
var rules = []Rule{
	{Role: RoleAdmin, Action: ActionManage, Entity: EntityAdminDashboard, Effect: Allow},
	{Role: RoleAdmin, Action: ActionView, Entity: EntityAdminDashboard, Effect: Allow},
	{Role: RoleAdmin, Action: ActionManage, Entity: EntityUsers, Effect: Allow},
	{Role: RoleAdmin, Action: ActionManage, Entity: EntityTrades, Effect: Allow},

	{Role: RoleUser, Action: ActionManage, Entity: EntityUserDashboard, Effect: Allow},
	{Role: RoleUser, Action: ActionManage, Entity: EntityAdminDashboard, Effect: Deny},
	{Role: RoleUser, Action: ActionView, Entity: EntityAdminDashboard, Effect: Deny},
}

func (r Rule) matches(role Role, action Action, entity Entity) bool {
	if r.Role != role || r.Entity != entity {
		return false
	}
	return r.Action == action || r.Action == ActionManage
}

// Can reports whether role may perform action on entity. Combinations with no
// matching rule are denied.
func Can(role Role, action Action, entity Entity) bool {
	for i := len(rules) - 1; i >= 0; i-- {
		if rules[i].matches(role, action, entity) {
			return rules[i].Effect == Allow
		}
	}
	return false
}

// Authorize turns a negative Can decision into an error wrapping
// domain.ErrForbidden.
func Authorize(role Role, action Action, entity Entity) error {
	if Can(role, action, entity) {
		return nil
	}
	return fmt.Errorf("%s can't %s %s: %w", role, action, entity, domain.ErrForbidden)
}

// Rules returns the declared rules of role in declaration order.
func Rules(role Role) []Rule {
	res := make([]Rule, 0, len(rules))
	for _, r := range rules {
		if r.Role == role {
			res = append(res, r)
		}
	}
	return res
}

func ParseRole(s string) (Role, error) {
	switch Role(s) {
	case RoleAdmin, RoleUser:
		return Role(s), nil
	}
	return "", fmt.Errorf("unknown role %q: %w", s, domain.ErrValidation)
}
