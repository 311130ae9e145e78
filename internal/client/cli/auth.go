package cli

import (
	"context"
	"fmt"
)

const minPasswordLen = 6

func (a *App) register(ctx context.Context) {
	email, err := GetSimpleText(a.reader, "Enter email", a.out)
	if err != nil {
		fmt.Fprintf(a.out, "error: %v\n", err)
		return
	}

	password, err := GetPassword(a.out)
	if err != nil {
		fmt.Fprintf(a.out, "error: %v\n", err)
		return
	}
	if len(password) < minPasswordLen {
		fmt.Fprintf(a.out, "Password must be at least %d characters\n", minPasswordLen)
		return
	}

	if _, err := a.controller.SignUp(ctx, email, password); err != nil {
		fmt.Fprintf(a.out, "Registration unsuccessful: %s\n", err.Error())
		return
	}

	fmt.Fprintln(a.out, "Registered. You can now log in.")
}

func (a *App) login(ctx context.Context) {
	email, err := GetSimpleText(a.reader, "Enter email", a.out)
	if err != nil {
		fmt.Fprintf(a.out, "error: %v\n", err)
		return
	}

	password, err := GetPassword(a.out)
	if err != nil {
		fmt.Fprintf(a.out, "error: %v\n", err)
		return
	}

	if err := a.controller.SignIn(ctx, email, password); err != nil {
		fmt.Fprintf(a.out, "Login unsuccessful: %s\n", err.Error())
		return
	}

	fmt.Fprintln(a.out, "Login successful")
	a.list()
}

func (a *App) logout(ctx context.Context) {
	a.clearListControls()
	if err := a.controller.SignOut(ctx); err != nil {
		fmt.Fprintf(a.out, "Logout finished with error: %s\n", err.Error())
		return
	}
	fmt.Fprintln(a.out, "Logged out")
}

func (a *App) whoami() {
	user := a.controller.User()
	if user == nil {
		fmt.Fprintln(a.out, "Not logged in")
		return
	}
	fmt.Fprintln(a.out, user.Email)
}
