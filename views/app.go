package views

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
	"sync/atomic"

	"github.com/ZeyadMahfouzz/supermarket-client/api"
	"github.com/ZeyadMahfouzz/supermarket-client/store"
)

// App wires the stores and services into the terminal storefront. All state
// lives in the stores; the views only read it and trigger operations.
type App struct {
	client  *api.Client
	session *store.SessionStore
	cart    *store.CartStore

	in  *bufio.Scanner
	out io.Writer

	// expired flips when a 401 forces a session teardown, routing the loop
	// back to the entry view no matter which screen triggered it.
	expired atomic.Bool
}

func NewApp(client *api.Client, session *store.SessionStore, cart *store.CartStore, in io.Reader, out io.Writer) *App {
	app := &App{
		client:  client,
		session: session,
		cart:    cart,
		in:      bufio.NewScanner(in),
		out:     out,
	}
	session.OnExpired(func() { app.expired.Store(true) })
	return app
}

func (a *App) Run() {
	a.printf("Welcome to the Supermarket storefront.\n")
	for {
		if a.expired.Swap(false) {
			a.printf("\nYour session has expired. Please log in again.\n")
		}
		if !a.session.IsAuthenticated() {
			if !a.authView() {
				return
			}
			continue
		}
		if !a.mainMenu() {
			return
		}
	}
}

func (a *App) mainMenu() bool {
	session := a.session.Current()
	a.printf("\nSigned in as %s (%s). Cart: %d item(s).\n", session.Name, session.Role, a.cart.ItemCount())
	a.printf("  1) Browse items\n")
	a.printf("  2) View cart\n")
	a.printf("  3) Checkout\n")
	a.printf("  4) My orders\n")
	if session.IsAdmin() {
		a.printf("  5) Manage store\n")
	}
	a.printf("  l) Log out   q) Quit\n")

	switch a.prompt("Choose") {
	case "1":
		a.itemsView()
	case "2":
		a.cartView()
	case "3":
		a.paymentView()
	case "4":
		a.ordersView()
	case "5":
		if session.IsAdmin() {
			a.adminView()
		}
	case "l":
		a.session.Logout()
		a.printf("Logged out.\n")
	case "q":
		return false
	}
	return true
}

func (a *App) printf(format string, args ...any) {
	fmt.Fprintf(a.out, format, args...)
}

func (a *App) prompt(label string) string {
	a.printf("%s: ", label)
	if !a.in.Scan() {
		return "q"
	}
	return strings.TrimSpace(a.in.Text())
}

func (a *App) promptInt(label string) (int, bool) {
	value, err := strconv.Atoi(a.prompt(label))
	if err != nil {
		a.printf("Please enter a number.\n")
		return 0, false
	}
	return value, true
}

func (a *App) promptInt64(label string) (int64, bool) {
	value, err := strconv.ParseInt(a.prompt(label), 10, 64)
	if err != nil {
		a.printf("Please enter a number.\n")
		return 0, false
	}
	return value, true
}

func (a *App) promptFloat(label string) (float64, bool) {
	value, err := strconv.ParseFloat(a.prompt(label), 64)
	if err != nil {
		a.printf("Please enter a number.\n")
		return 0, false
	}
	return value, true
}

func (a *App) report(result store.Result, successMessage string) {
	if result.Success {
		a.printf("%s\n", successMessage)
	} else {
		a.printf("%s\n", result.Message)
	}
}
