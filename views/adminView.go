package views

import "github.com/ZeyadMahfouzz/supermarket-client/models"

// adminView exposes the store-management affordances. The backend enforces
// the role for real; this view only controls visibility.
func (a *App) adminView() {
	a.printf("\n  1) Add item\n  2) Update item\n  3) Delete item\n  b) Back\n")
	switch a.prompt("Choose") {
	case "1":
		item := models.Item{Name: a.prompt("Name")}
		price, ok := a.promptFloat("Price")
		if !ok {
			return
		}
		quantity, ok := a.promptInt("Stock quantity")
		if !ok {
			return
		}
		item.Price = price
		item.Quantity = quantity
		item.Category = a.prompt("Category")
		item.Description = a.prompt("Description")

		created, err := a.client.Items.Create(item)
		if err != nil {
			a.printf("%s\n", err.Error())
			return
		}
		a.printf("Created item %d (%s).\n", created.ID, created.Name)
	case "2":
		itemID, ok := a.promptInt64("Item id")
		if !ok {
			return
		}
		item, err := a.client.Items.Details(itemID)
		if err != nil {
			a.printf("%s\n", err.Error())
			return
		}
		if name := a.prompt("Name (blank to keep \"" + item.Name + "\")"); name != "" {
			item.Name = name
		}
		if raw := a.prompt("Price (blank to keep)"); raw != "" {
			if price, ok := parseFloat(raw); ok {
				item.Price = price
			}
		}
		if raw := a.prompt("Stock quantity (blank to keep)"); raw != "" {
			if quantity, ok := parseInt(raw); ok {
				item.Quantity = quantity
			}
		}
		if err := a.client.Items.Update(item); err != nil {
			a.printf("%s\n", err.Error())
			return
		}
		a.printf("Item updated.\n")
	case "3":
		itemID, ok := a.promptInt64("Item id")
		if !ok {
			return
		}
		if err := a.client.Items.Delete(itemID); err != nil {
			a.printf("%s\n", err.Error())
			return
		}
		a.printf("Item deleted.\n")
	}
}
