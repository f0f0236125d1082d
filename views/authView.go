package views

import "github.com/ZeyadMahfouzz/supermarket-client/models"

// authView is the entry screen. Returns false when the user quits.
func (a *App) authView() bool {
	a.printf("\n  1) Log in\n  2) Register\n  q) Quit\n")
	switch a.prompt("Choose") {
	case "1":
		email := a.prompt("Email")
		password := a.prompt("Password")
		result := a.session.Login(email, password)
		if result.Success {
			a.cart.Fetch()
			a.printf("Welcome back, %s!\n", a.session.Current().Name)
		} else {
			a.printf("%s\n", result.Message)
		}
	case "2":
		data := models.RegisterData{
			Name:     a.prompt("Name"),
			Email:    a.prompt("Email"),
			Password: a.prompt("Password (min 8 characters)"),
		}
		result := a.session.Register(data)
		if result.Success {
			a.cart.Fetch()
			a.printf("Account created. Welcome, %s!\n", a.session.Current().Name)
		} else {
			a.printf("%s\n", result.Message)
		}
	case "q":
		return false
	}
	return true
}
