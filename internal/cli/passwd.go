package cli

import (
	"fmt"

	"verdant/internal/models"
	"verdant/internal/validation"
)

type PasswdCmd struct {
	Old     string `help:"Current password. Prompted when omitted."`
	New     string `help:"New password. Prompted when omitted."`
	Confirm string `help:"Confirmation of the new password."`
}

func (c *PasswdCmd) Run(ctx *Context) error {
	if err := requireLogin(ctx); err != nil {
		return err
	}

	if c.Old == "" {
		if err := promptInput("Current password", &c.Old, true); err != nil {
			return err
		}
	}
	if c.New == "" {
		if err := promptInput("New password", &c.New, true); err != nil {
			return err
		}
	}
	if c.Confirm == "" {
		if err := promptInput("Confirm new password", &c.Confirm, true); err != nil {
			return err
		}
	}
	if err := validation.PasswordChange(c.Old, c.New, c.Confirm); err != nil {
		return err
	}

	email := ctx.Session.Current().User.Email
	if email == "" {
		return fmt.Errorf("User email not found. Please log in again.")
	}

	reqCtx, cancel := timeoutContext()
	defer cancel()

	err := ctx.API.ChangePassword(reqCtx, models.PasswordChange{
		Email:           email,
		OldPassword:     c.Old,
		NewPassword:     c.New,
		ConfirmPassword: c.Confirm,
	})
	if err != nil {
		return actionError(err, "Failed to change password")
	}
	fmt.Println("Password changed successfully!")
	return nil
}
