package views

import (
	"strings"

	"github.com/ZeyadMahfouzz/supermarket-client/stock"
)

func (a *App) itemsView() {
	items, err := a.client.Items.List()
	if err != nil {
		a.printf("%s\n", err.Error())
		return
	}

	query := strings.ToLower(a.prompt("Search (blank for all)"))
	admin := a.session.IsAdmin()

	a.printf("\n%-4s %-28s %10s  %s\n", "ID", "Item", "Price", "Stock")
	shown := 0
	for _, item := range items {
		if query != "" &&
			!strings.Contains(strings.ToLower(item.Name), query) &&
			!strings.Contains(strings.ToLower(item.Description), query) {
			continue
		}
		a.printf("%-4d %-28s %10.2f  %s\n", item.ID, item.Name, item.Price, stock.Label(item.Quantity, admin))
		shown++
	}
	if shown == 0 {
		a.printf("No items matched.\n")
		return
	}

	choice := a.prompt("Item id to add to cart (blank to go back)")
	if choice == "" {
		return
	}

	itemID, ok := parseID(choice)
	if !ok {
		a.printf("Please enter a number.\n")
		return
	}
	quantity, ok := a.promptInt("Quantity")
	if !ok {
		return
	}

	result := a.cart.AddItem(itemID, quantity)
	a.report(result, "Added to cart.")
}
