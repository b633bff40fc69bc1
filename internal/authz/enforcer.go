// Package authz decides which roles may write recipes and catalog entries.
//
// Rules are Casbin policies over (role, object, action, ownership). The
// built-in policy lets members manage their own recipes and reserves tag and
// ingredient writes for admins, who inherit every member permission.
package authz

import (
	_ "embed"
	"fmt"
	"os"
	"strings"

	"github.com/casbin/casbin/v2"
	"github.com/casbin/casbin/v2/model"
	fileadapter "github.com/casbin/casbin/v2/persist/file-adapter"

	"github.com/foodgramapp/foodgram-server/internal/domain"
	domainerrors "github.com/foodgramapp/foodgram-server/internal/errors"
)

//go:embed model.conf
var embeddedModel string

//go:embed policy.csv
var embeddedPolicy string

// Object is a protected resource kind.
type Object string

const (
	ObjectRecipe     Object = "recipe"
	ObjectTag        Object = "tag"
	ObjectIngredient Object = "ingredient"
)

// Action is a write operation on an Object.
type Action string

const (
	ActionCreate Action = "create"
	ActionUpdate Action = "update"
	ActionDelete Action = "delete"
)

const (
	ownOwn   = "own"
	ownOther = "other"
)

// Enforcer evaluates write permissions.
type Enforcer struct {
	enforcer *casbin.SyncedEnforcer
}

// NewEnforcer builds an enforcer from the embedded model. When policyPath
// names an existing file it replaces the built-in policy.
func NewEnforcer(policyPath string) (*Enforcer, error) {
	m, err := model.NewModelFromString(embeddedModel)
	if err != nil {
		return nil, fmt.Errorf("load casbin model: %w", err)
	}

	var enforcer *casbin.SyncedEnforcer
	if policyPath != "" && fileExists(policyPath) {
		enforcer, err = casbin.NewSyncedEnforcer(m, fileadapter.NewAdapter(policyPath))
	} else {
		enforcer, err = casbin.NewSyncedEnforcer(m)
		if err == nil {
			err = loadEmbeddedPolicy(enforcer, embeddedPolicy)
		}
	}
	if err != nil {
		return nil, fmt.Errorf("create casbin enforcer: %w", err)
	}

	return &Enforcer{enforcer: enforcer}, nil
}

func loadEmbeddedPolicy(enforcer *casbin.SyncedEnforcer, policy string) error {
	for _, line := range strings.Split(policy, "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		parts := strings.Split(line, ",")
		for i := range parts {
			parts[i] = strings.TrimSpace(parts[i])
		}

		switch ptype, rule := parts[0], parts[1:]; ptype {
		case "p":
			if len(rule) != 4 {
				return fmt.Errorf("policy %q: want 4 fields, got %d", line, len(rule))
			}
			if _, err := enforcer.AddPolicy(rule); err != nil {
				return fmt.Errorf("add policy %v: %w", rule, err)
			}
		case "g":
			if len(rule) != 2 {
				return fmt.Errorf("grouping %q: want 2 fields, got %d", line, len(rule))
			}
			if _, err := enforcer.AddGroupingPolicy(rule[0], rule[1]); err != nil {
				return fmt.Errorf("add grouping policy %v: %w", rule, err)
			}
		}
	}
	return nil
}

// Can reports whether role may perform action on obj. owned says whether
// the acting user owns the target.
func (e *Enforcer) Can(role domain.Role, obj Object, action Action, owned bool) (bool, error) {
	own := ownOther
	if owned {
		own = ownOwn
	}
	allowed, err := e.enforcer.Enforce(string(role), string(obj), string(action), own)
	if err != nil {
		return false, fmt.Errorf("enforce: %w", err)
	}
	return allowed, nil
}

// Authorize returns a forbidden error unless user may perform action on obj.
// ownerID is the owner of the target, empty for unowned resources.
func (e *Enforcer) Authorize(user *domain.User, obj Object, action Action, ownerID string) error {
	allowed, err := e.Can(user.Role, obj, action, ownerID != "" && ownerID == user.ID)
	if err != nil {
		return err
	}
	if !allowed {
		return domainerrors.Forbiddenf("not allowed to %s this %s", action, obj)
	}
	return nil
}

func fileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
