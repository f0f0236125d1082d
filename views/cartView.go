package views

import "strconv"

func parseID(value string) (int64, bool) {
	id, err := strconv.ParseInt(value, 10, 64)
	return id, err == nil
}

func parseInt(value string) (int, bool) {
	n, err := strconv.Atoi(value)
	return n, err == nil
}

func parseFloat(value string) (float64, bool) {
	f, err := strconv.ParseFloat(value, 64)
	return f, err == nil
}

func (a *App) cartView() {
	if result := a.cart.Fetch(); !result.Success {
		a.printf("%s\n", result.Message)
		return
	}

	cart := a.cart.Cart()
	if cart.IsEmpty() {
		a.printf("Your cart is empty.\n")
		return
	}

	a.printf("\n%-6s %-28s %5s %10s %10s\n", "Line", "Item", "Qty", "Unit", "Subtotal")
	for _, line := range cart.Items {
		a.printf("%-6d %-28s %5d %10.2f %10.2f\n",
			line.CartItemID, line.Name, line.Quantity, line.UnitPrice, line.Subtotal)
	}
	a.printf("%52s %10.2f\n", "Total:", cart.TotalPrice)

	a.printf("  u) Update quantity   r) Remove line   c) Clear cart   b) Back\n")
	switch a.prompt("Choose") {
	case "u":
		lineID, ok := a.promptInt64("Line id")
		if !ok {
			return
		}
		quantity, ok := a.promptInt("New quantity")
		if !ok {
			return
		}
		a.report(a.cart.UpdateQuantity(lineID, quantity), "Quantity updated.")
	case "r":
		lineID, ok := a.promptInt64("Line id")
		if !ok {
			return
		}
		a.report(a.cart.RemoveItem(lineID), "Item removed.")
	case "c":
		a.report(a.cart.Clear(), "Cart cleared.")
	}
}
