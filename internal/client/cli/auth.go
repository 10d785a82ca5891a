package cli

import (
	"fmt"

	"github.com/tejashvarkr/Project-Wellness-Hub/internal/wellnessrpc"
)

type SignupCmd struct {
	Email    string `help:"Email address." placeholder:"EMAIL"`
	FullName string `name:"name" help:"Full name."`
	UserName string `name:"username" help:"Public username (letters, digits, underscore)."`
}

func (cmd *SignupCmd) Run(c *Context) error {
	var err error
	if cmd.Email == "" {
		if cmd.Email, err = GetSimpleText(c.In, "Email", c.Out); err != nil {
			return err
		}
	}
	if cmd.FullName == "" {
		if cmd.FullName, err = GetSimpleText(c.In, "Full name", c.Out); err != nil {
			return err
		}
	}
	if cmd.UserName == "" {
		if cmd.UserName, err = GetSimpleText(c.In, "Username", c.Out); err != nil {
			return err
		}
	}

	password, err := GetPassword("Password (min 6 characters)", c.Out)
	if err != nil {
		return err
	}
	again, err := GetPassword("Repeat password", c.Out)
	if err != nil {
		return err
	}
	if password != again {
		return fmt.Errorf("passwords do not match")
	}

	p, err := c.API.SignUp(c.Ctx, &wellnessrpc.SignUpRequest{
		Email:    cmd.Email,
		Password: password,
		FullName: cmd.FullName,
		UserName: cmd.UserName,
	})
	if err != nil {
		return err
	}

	c.Logger.Info(c.Ctx, "Signed up", "user_id", p.ID)
	success(c.Out, "Welcome, %s!", p.FullName)
	return nil
}

type LoginCmd struct {
	Email string `arg:"" optional:"" help:"Email address."`
}

func (cmd *LoginCmd) Run(c *Context) error {
	var err error
	if cmd.Email == "" {
		if cmd.Email, err = GetSimpleText(c.In, "Email", c.Out); err != nil {
			return err
		}
	}
	password, err := GetPassword("Password", c.Out)
	if err != nil {
		return err
	}

	p, err := c.API.SignIn(c.Ctx, cmd.Email, password)
	if err != nil {
		return err
	}

	c.Logger.Info(c.Ctx, "Signed in", "user_id", p.ID)
	success(c.Out, "Signed in as %s", p.Email)
	return nil
}

type LogoutCmd struct{}

func (cmd *LogoutCmd) Run(c *Context) error {
	if !c.Session.SignedIn() {
		warn(c.Out, "Not signed in.")
		return nil
	}
	if err := c.API.SignOut(c.Ctx); err != nil {
		return err
	}
	success(c.Out, "Signed out.")
	return nil
}

type WhoamiCmd struct {
	Refresh bool `short:"r" help:"Fetch the profile from the server instead of the local cache."`
}

func (cmd *WhoamiCmd) Run(c *Context) error {
	if err := c.requireSession(); err != nil {
		return err
	}

	p := c.Session.Profile()
	if cmd.Refresh || p == nil {
		var err error
		if p, err = c.API.Session(c.Ctx); err != nil {
			return err
		}
	}
	printProfile(c, p)
	return nil
}

func printProfile(c *Context, p *wellnessrpc.Profile) {
	title(c.Out, p.FullName)
	field(c.Out, "Email", p.Email)
	field(c.Out, "Username", p.UserName)
	field(c.Out, "Points", p.Points)
	if p.NextLevelAt > 0 {
		field(c.Out, "Level", fmt.Sprintf("%s (next at %d)", p.Level, p.NextLevelAt))
	} else {
		field(c.Out, "Level", p.Level)
	}
	field(c.Out, "Member since", p.CreatedAt.Format("2006-01-02"))
}

type ProfileCmd struct {
	Update ProfileUpdateCmd `cmd:"" help:"Change your name or username."`
}

type ProfileUpdateCmd struct {
	FullName string `name:"name" help:"New full name."`
	UserName string `name:"username" help:"New username."`
}

func (cmd *ProfileUpdateCmd) Run(c *Context) error {
	if err := c.requireSession(); err != nil {
		return err
	}
	if cmd.FullName == "" && cmd.UserName == "" {
		return fmt.Errorf("nothing to update: pass --name and/or --username")
	}

	current := c.Session.Profile()
	fullName, userName := cmd.FullName, cmd.UserName
	if current != nil {
		if fullName == "" {
			fullName = current.FullName
		}
		if userName == "" {
			userName = current.UserName
		}
	}

	p, err := c.API.UpdateProfile(c.Ctx, fullName, userName)
	if err != nil {
		return err
	}
	success(c.Out, "Profile updated.")
	printProfile(c, p)
	return nil
}

type AccountCmd struct {
	Delete AccountDeleteCmd `cmd:"" help:"Delete your account and all of its data."`
}

type AccountDeleteCmd struct {
	Yes bool `short:"y" help:"Do not ask for confirmation."`
}

func (cmd *AccountDeleteCmd) Run(c *Context) error {
	if err := c.requireSession(); err != nil {
		return err
	}
	if !cmd.Yes {
		ok, err := Confirm(c.In, dangerStyle.Render("This permanently deletes all your data. Continue?"), c.Out)
		if err != nil {
			return err
		}
		if !ok {
			warn(c.Out, "Cancelled.")
			return nil
		}
	}
	if err := c.API.DeleteAccount(c.Ctx); err != nil {
		return err
	}
	success(c.Out, "Account deleted.")
	return nil
}
