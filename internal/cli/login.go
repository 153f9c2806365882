package cli

import (
	"fmt"

	"github.com/charmbracelet/huh"

	"verdant/internal/models"
	"verdant/internal/validation"
)

type LoginCmd struct {
	Email    string `short:"e" help:"Account email."`
	Password string `short:"p" help:"Account password. Prompted when omitted."`
}

func (c *LoginCmd) Run(ctx *Context) error {
	if c.Email == "" {
		if err := promptInput("Email", &c.Email, false); err != nil {
			return err
		}
	}
	if c.Password == "" {
		if err := promptInput("Password", &c.Password, true); err != nil {
			return err
		}
	}
	if err := validation.Login(c.Email, c.Password); err != nil {
		return err
	}

	reqCtx, cancel := timeoutContext()
	defer cancel()

	resp, err := ctx.API.Login(reqCtx, models.Credentials{Email: c.Email, Password: c.Password})
	if err != nil {
		return actionError(err, "Invalid email or password")
	}

	sess := ctx.Session.Current()
	sess.Server = ctx.Server
	sess.Token = resp.AccessToken
	sess.User = resp.User
	if err := ctx.Session.Save(sess); err != nil {
		return err
	}

	fmt.Printf("Logged in as %s (%s)\n", resp.User.Username, resp.User.Email)
	return nil
}

type RegisterCmd struct {
	Username string `short:"u" help:"Desired username."`
	Email    string `short:"e" help:"Account email."`
	Password string `short:"p" help:"Account password. Prompted when omitted."`
}

func (c *RegisterCmd) Run(ctx *Context) error {
	if c.Username == "" {
		if err := promptInput("Username", &c.Username, false); err != nil {
			return err
		}
	}
	if c.Email == "" {
		if err := promptInput("Email", &c.Email, false); err != nil {
			return err
		}
	}
	confirm := c.Password
	if c.Password == "" {
		if err := promptInput("Password", &c.Password, true); err != nil {
			return err
		}
		if err := promptInput("Confirm password", &confirm, true); err != nil {
			return err
		}
	}
	if err := validation.Registration(c.Username, c.Email, c.Password, confirm); err != nil {
		return err
	}

	reqCtx, cancel := timeoutContext()
	defer cancel()

	resp, err := ctx.API.Register(reqCtx, models.Registration{
		Username: c.Username,
		Email:    c.Email,
		Password: c.Password,
	})
	if err != nil {
		return actionError(err, "Registration failed. Please try again.")
	}

	sess := ctx.Session.Current()
	sess.Server = ctx.Server
	sess.Token = resp.AccessToken
	sess.User = resp.User
	if err := ctx.Session.Save(sess); err != nil {
		return err
	}

	fmt.Printf("Registered and logged in as %s\n", resp.User.Username)
	return nil
}

type LogoutCmd struct{}

func (c *LogoutCmd) Run(ctx *Context) error {
	if err := ctx.Session.Clear(); err != nil {
		return err
	}
	fmt.Println("Logged out.")
	return nil
}

type WhoamiCmd struct{}

func (c *WhoamiCmd) Run(ctx *Context) error {
	if err := requireLogin(ctx); err != nil {
		return err
	}

	reqCtx, cancel := timeoutContext()
	defer cancel()

	user, err := ctx.API.CurrentUser(reqCtx)
	if err != nil {
		return actionError(err, "Failed to load user information")
	}
	fmt.Printf("%s <%s> (id %d)\n", user.Username, user.Email, user.ID)
	return nil
}

// promptInput asks for a single value interactively.
func promptInput(title string, value *string, secret bool) error {
	input := huh.NewInput().Title(title).Value(value)
	if secret {
		input = input.EchoMode(huh.EchoModePassword)
	}
	return huh.NewForm(huh.NewGroup(input)).Run()
}
