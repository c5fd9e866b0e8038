package main

import (
	"context"

	"github.com/internhub/backend/core/user"
)

// addUser creates a manager account.
func (cli *commandLine) addUser(name, email, pwd string, isAdmin bool) error {
	nu := user.NewUser{
		Name:     name,
		Email:    email,
		Password: pwd,
		IsAdmin:  isAdmin,
	}
	if err := nu.Validate(cli.validate, cli.usrSvc); err != nil {
		return err
	}
	_, err := cli.usrSvc.Create(context.Background(), nu)
	return err
}
