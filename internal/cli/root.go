package cli

import (
	"fmt"

	"github.com/julianstephens/offscreen/internal/backup"
	"github.com/julianstephens/offscreen/internal/identity"
	"github.com/julianstephens/offscreen/internal/logger"
	"github.com/julianstephens/offscreen/internal/models"
	"github.com/julianstephens/offscreen/internal/storage"
	"github.com/julianstephens/offscreen/internal/usage"
)

type Context struct {
	Store    storage.Provider
	Identity identity.Provider
}

// Service returns a usage service bound to the context's store.
func (c *Context) Service() *usage.Service {
	return usage.NewService(c.Store)
}

// RequireUser loads the store, resolves the signed-in principal, and returns
// the matching user record. Commands that read or write usage data start here.
func (c *Context) RequireUser() (models.User, error) {
	if err := c.Store.Load(); err != nil {
		return models.User{}, err
	}

	principal, err := c.Identity.Current()
	if err != nil {
		return models.User{}, err
	}

	user, err := c.Store.GetOrCreateUser(principal)
	if err != nil {
		return models.User{}, fmt.Errorf("failed to resolve user: %w", err)
	}
	return user, nil
}

// PerformAutomaticBackup creates an automatic backup and silently handles errors
func (c *Context) PerformAutomaticBackup() {
	mgr := backup.NewManager(c.Store.GetConfigPath())
	_, err := mgr.CreateBackup()
	if err != nil {
		// Log warning but don't interrupt user workflow
		logger.Warn("Automatic backup failed", "error", err)
	}
}

func formatMinutes(minutes float64) string {
	if minutes == float64(int(minutes)) {
		return fmt.Sprintf("%d min", int(minutes))
	}
	return fmt.Sprintf("%.1f min", minutes)
}
