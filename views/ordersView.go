package views

import "github.com/ZeyadMahfouzz/supermarket-client/models"

func statusLabel(status models.OrderStatus) string {
	switch status {
	case models.OrderPending:
		return "Pending"
	case models.OrderProcessing:
		return "Processing"
	case models.OrderShipping:
		return "Shipping"
	case models.OrderDelivered:
		return "Delivered"
	case models.OrderCancelled:
		return "Cancelled"
	}
	return string(status)
}

func (a *App) ordersView() {
	admin := a.session.IsAdmin()

	var (
		orders []models.Order
		err    error
	)
	if admin && a.prompt("Show all orders? (y/n)") == "y" {
		orders, err = a.client.Orders.All()
	} else {
		orders, err = a.client.Orders.History()
	}
	if err != nil {
		a.printf("%s\n", err.Error())
		return
	}

	if filter := a.prompt("Filter by status (blank for all)"); filter != "" {
		if status, ok := models.ParseOrderStatus(filter); ok {
			filtered := orders[:0]
			for _, order := range orders {
				if order.Status == status {
					filtered = append(filtered, order)
				}
			}
			orders = filtered
		} else {
			a.printf("Unknown status %q, showing all.\n", filter)
		}
	}

	if len(orders) == 0 {
		a.printf("No orders yet.\n")
		return
	}

	a.printf("\n%-6s %-12s %10s  %-12s %s\n", "Order", "Status", "Total", "Payment", "Date")
	for _, order := range orders {
		a.printf("%-6d %-12s %10.2f  %-12s %s\n",
			order.ID, statusLabel(order.Status), order.TotalAmount, order.PaymentMethod, order.OrderDate)
	}

	raw := a.prompt("Order id for actions (blank to go back)")
	if raw == "" {
		return
	}
	orderID, ok := parseID(raw)
	if !ok {
		a.printf("Please enter a number.\n")
		return
	}
	var selected *models.Order
	for i := range orders {
		if orders[i].ID == orderID {
			selected = &orders[i]
			break
		}
	}
	if selected == nil {
		a.printf("No such order in the list.\n")
		return
	}

	// Affordances depend on the order's current status: users may cancel
	// pending orders, admins may advance anything non-terminal.
	if admin && selected.AdminEditable() {
		next := selected.Status.NextStatuses()
		for i, status := range next {
			a.printf("  %d) Move to %s\n", i+1, statusLabel(status))
		}
		choice, ok := a.promptInt("New status")
		if !ok || choice < 1 || choice > len(next) {
			return
		}
		if err := a.client.Orders.UpdateStatus(selected.ID, next[choice-1]); err != nil {
			a.printf("%s\n", err.Error())
		} else {
			a.printf("Order status updated.\n")
		}
		return
	}

	if !admin && selected.CanCancel() {
		if a.prompt("Cancel this order? (y/n)") == "y" {
			if err := a.client.Orders.Cancel(selected.ID); err != nil {
				a.printf("%s\n", err.Error())
			} else {
				a.printf("Order cancelled.\n")
			}
		}
		return
	}

	a.printf("No actions available for a %s order.\n", statusLabel(selected.Status))
}
