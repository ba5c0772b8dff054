package cli

import (
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/huh"

	"github.com/julianstephens/offscreen/internal/identity"
)

type LoginCmd struct {
	Principal string `arg:"" optional:"" help:"Account identifier to sign in as (e.g. an email address)."`
}

func (c *LoginCmd) Run(ctx *Context) error {
	principal := strings.TrimSpace(c.Principal)

	if principal == "" {
		form := huh.NewForm(
			huh.NewGroup(
				huh.NewInput().
					Title("Account").
					Description("Identifier to sign in as (e.g. an email address)").
					Value(&principal).
					Validate(func(s string) error {
						if strings.TrimSpace(s) == "" {
							return fmt.Errorf("account identifier is required")
						}
						return nil
					}),
			),
		)
		if err := form.Run(); err != nil {
			return err
		}
		principal = strings.TrimSpace(principal)
	}

	if err := ctx.Identity.SetCurrent(principal); err != nil {
		return fmt.Errorf("failed to store credentials: %w", err)
	}

	fmt.Printf("Signed in as %s\n", principal)
	return nil
}

type LogoutCmd struct{}

func (c *LogoutCmd) Run(ctx *Context) error {
	if err := ctx.Identity.Clear(); err != nil {
		return fmt.Errorf("failed to clear credentials: %w", err)
	}
	fmt.Println("Signed out.")
	return nil
}

type WhoamiCmd struct{}

func (c *WhoamiCmd) Run(ctx *Context) error {
	principal, err := ctx.Identity.Current()
	if err != nil {
		if errors.Is(err, identity.ErrNoPrincipal) {
			fmt.Println("Not signed in.")
			return nil
		}
		return err
	}
	fmt.Println(principal)
	return nil
}
