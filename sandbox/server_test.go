package sandbox_test

import (
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/ZeyadMahfouzz/supermarket-client/api"
	"github.com/ZeyadMahfouzz/supermarket-client/models"
	"github.com/ZeyadMahfouzz/supermarket-client/payment"
	"github.com/ZeyadMahfouzz/supermarket-client/sandbox"
	"github.com/ZeyadMahfouzz/supermarket-client/stock"
	"github.com/ZeyadMahfouzz/supermarket-client/store"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func newBackend(t *testing.T) string {
	t.Helper()
	server := httptest.NewServer(sandbox.New("test-secret").Router())
	t.Cleanup(server.Close)
	return server.URL
}

// newStorefront assembles the full client stack against the given backend,
// the same wiring cmd/storefront uses.
func newStorefront(t *testing.T, baseURL string) (*api.Client, *store.SessionStore, *store.CartStore) {
	t.Helper()
	client := api.NewClient(baseURL)
	session := store.NewSessionStore(client, filepath.Join(t.TempDir(), "session.json"))
	cart := store.NewCartStore(client, session, stock.NewChecker(client.Items))
	return client, session, cart
}

func registerShopper(t *testing.T, session *store.SessionStore, email string) {
	t.Helper()
	result := session.Register(models.RegisterData{Name: "Test Shopper", Email: email, Password: "password123"})
	require.True(t, result.Success, result.Message)
}

func TestRegisterLoginAndBrowse(t *testing.T) {
	backend := newBackend(t)
	client, session, _ := newStorefront(t, backend)

	registerShopper(t, session, "shopper@example.com")

	current := session.Current()
	assert.Equal(t, "shopper@example.com", current.Email)
	assert.Equal(t, "Test Shopper", current.Name)
	assert.Equal(t, models.RoleUser, current.Role)
	assert.False(t, session.IsAdmin())

	items, err := client.Items.List()
	require.NoError(t, err)
	require.Len(t, items, 8)
	assert.Equal(t, "Whole Milk 1L", items[0].Name)

	item, err := client.Items.Details(items[0].ID)
	require.NoError(t, err)
	assert.Equal(t, 38.50, item.Price)
	assert.True(t, item.InStock())
}

func TestDuplicateRegistrationRejected(t *testing.T) {
	backend := newBackend(t)
	_, session, _ := newStorefront(t, backend)
	registerShopper(t, session, "shopper@example.com")

	_, other, _ := newStorefront(t, backend)
	result := other.Register(models.RegisterData{Name: "Someone Else", Email: "shopper@example.com", Password: "password123"})

	assert.False(t, result.Success)
	assert.Equal(t, "An account with this email already exists", result.Message)
}

func TestLoginWithWrongPassword(t *testing.T) {
	backend := newBackend(t)
	_, session, _ := newStorefront(t, backend)
	registerShopper(t, session, "shopper@example.com")
	session.Logout()

	result := session.Login("shopper@example.com", "wrong-password")
	assert.False(t, result.Success)
	assert.Equal(t, "Invalid email or password", result.Message)
	assert.False(t, session.IsAuthenticated())
}

func TestFullCheckoutFlow(t *testing.T) {
	backend := newBackend(t)
	client, session, cart := newStorefront(t, backend)
	registerShopper(t, session, "shopper@example.com")

	require.True(t, cart.AddItem(1, 2).Success)
	assert.Equal(t, 2, cart.ItemCount())
	assert.Equal(t, 77.00, cart.Cart().TotalPrice)

	dispatcher := payment.NewDispatcher()
	*dispatcher.Credit() = payment.CreditCardForm{
		CardNumber:     "4111 1111 1111 1111",
		CardHolderName: "Test Shopper",
		ExpiryDate:     "12/29",
		CVV:            "123",
	}
	request, err := dispatcher.BuildRequest()
	require.NoError(t, err)

	result := cart.Checkout(request)
	require.True(t, result.Success, result.Message)
	assert.NotZero(t, result.OrderID)
	assert.NotEmpty(t, result.TransactionID)
	assert.Equal(t, 77.00, result.TotalAmount)
	assert.Equal(t, "CREDIT_CARD", result.PaymentMethod)

	assert.True(t, cart.Cart().IsEmpty(), "checkout empties the cart")

	orders, err := client.Orders.History()
	require.NoError(t, err)
	require.Len(t, orders, 1)
	assert.Equal(t, result.OrderID, orders[0].ID)
	assert.Equal(t, models.OrderPending, orders[0].Status)
	assert.Equal(t, 77.00, orders[0].TotalAmount)
	assert.Equal(t, "Whole Milk 1L", orders[0].ItemDetails["1"].Name)

	item, err := client.Items.Details(1)
	require.NoError(t, err)
	assert.Equal(t, 118, item.Quantity, "checkout decrements stock")
}

func TestDeclinedCardLeavesCart(t *testing.T) {
	backend := newBackend(t)
	_, session, cart := newStorefront(t, backend)
	registerShopper(t, session, "shopper@example.com")
	require.True(t, cart.AddItem(1, 1).Success)

	result := cart.Checkout(models.CheckoutRequest{
		PaymentMethod: "CREDIT_CARD",
		CreditCardPayment: &models.CreditCardPayment{
			CardNumber:     "4111111111110000",
			CardholderName: "Test Shopper",
			ExpiryDate:     "12/29",
			CVV:            "123",
		},
	})

	assert.False(t, result.Success)
	assert.Equal(t, "Payment was declined by the card issuer", result.Message)
	assert.Equal(t, 1, cart.ItemCount(), "a declined payment must not consume the cart")
}

func TestCheckoutWithEmptyCart(t *testing.T) {
	backend := newBackend(t)
	_, session, cart := newStorefront(t, backend)
	registerShopper(t, session, "shopper@example.com")

	result := cart.Checkout(models.CheckoutRequest{
		PaymentMethod: "CASH",
		CashPayment:   &models.CashPayment{Confirmed: true},
	})

	assert.False(t, result.Success)
	assert.Equal(t, "Cart is empty", result.Message)
}

func TestOutOfStockItemRejectedBeforeTheNetwork(t *testing.T) {
	backend := newBackend(t)
	_, session, cart := newStorefront(t, backend)
	registerShopper(t, session, "shopper@example.com")

	// Mango Juice is seeded with zero stock.
	result := cart.AddItem(8, 1)
	assert.False(t, result.Success)
	assert.Equal(t, "Only 0 available", result.Message)
}

func TestBackendStockCheckOnMergedLines(t *testing.T) {
	backend := newBackend(t)
	_, session, cart := newStorefront(t, backend)
	registerShopper(t, session, "shopper@example.com")

	// Ground Coffee is seeded with 4 in stock. Each add passes the advisory
	// check on its own; the backend rejects the merged line.
	require.True(t, cart.AddItem(7, 4).Success)
	result := cart.AddItem(7, 4)

	assert.False(t, result.Success)
	assert.Equal(t, "Insufficient stock for Ground Coffee 250g. Only 4 available", result.Message)
	assert.Equal(t, 4, cart.ItemCount())
}

func TestUserCancelsPendingOrder(t *testing.T) {
	backend := newBackend(t)
	client, session, cart := newStorefront(t, backend)
	registerShopper(t, session, "shopper@example.com")

	require.True(t, cart.AddItem(5, 2).Success)
	result := cart.Checkout(models.CheckoutRequest{PaymentMethod: "CASH", CashPayment: &models.CashPayment{Confirmed: true}})
	require.True(t, result.Success, result.Message)

	require.NoError(t, client.Orders.Cancel(result.OrderID))

	order, err := client.Orders.Details(result.OrderID)
	require.NoError(t, err)
	assert.Equal(t, models.OrderCancelled, order.Status)

	item, err := client.Items.Details(5)
	require.NoError(t, err)
	assert.Equal(t, 30, item.Quantity, "cancelled stock goes back on the shelf")
}

func TestAdminOrderLifecycle(t *testing.T) {
	backend := newBackend(t)
	client, session, cart := newStorefront(t, backend)
	registerShopper(t, session, "shopper@example.com")
	require.True(t, cart.AddItem(1, 1).Success)
	placed := cart.Checkout(models.CheckoutRequest{PaymentMethod: "CASH", CashPayment: &models.CashPayment{Confirmed: true}})
	require.True(t, placed.Success, placed.Message)

	adminClient, adminSession, _ := newStorefront(t, backend)
	require.True(t, adminSession.Login(sandbox.AdminEmail, sandbox.AdminPassword).Success)
	require.True(t, adminSession.IsAdmin())

	orders, err := adminClient.Orders.All()
	require.NoError(t, err)
	require.Len(t, orders, 1)

	// Stages cannot be skipped.
	err = adminClient.Orders.UpdateStatus(placed.OrderID, models.OrderDelivered)
	require.Error(t, err)
	assert.Equal(t, "Invalid status transition from PENDING to DELIVERED", err.Error())

	for _, status := range []models.OrderStatus{models.OrderProcessing, models.OrderShipping, models.OrderDelivered} {
		require.NoError(t, adminClient.Orders.UpdateStatus(placed.OrderID, status))
	}

	err = adminClient.Orders.UpdateStatus(placed.OrderID, models.OrderCancelled)
	require.Error(t, err)
	assert.Equal(t, "Cannot change status of a DELIVERED order", err.Error())

	// The owner can no longer cancel once the order left PENDING.
	err = client.Orders.Cancel(placed.OrderID)
	require.Error(t, err)
	assert.Equal(t, "Only pending orders can be cancelled", err.Error())
}

func TestOrdersByStatusFilter(t *testing.T) {
	backend := newBackend(t)
	client, session, cart := newStorefront(t, backend)
	registerShopper(t, session, "shopper@example.com")

	require.True(t, cart.AddItem(1, 1).Success)
	first := cart.Checkout(models.CheckoutRequest{PaymentMethod: "CASH", CashPayment: &models.CashPayment{Confirmed: true}})
	require.True(t, first.Success)

	require.True(t, cart.AddItem(2, 1).Success)
	second := cart.Checkout(models.CheckoutRequest{PaymentMethod: "CASH", CashPayment: &models.CashPayment{Confirmed: true}})
	require.True(t, second.Success)

	require.NoError(t, client.Orders.Cancel(second.OrderID))

	pending, err := client.Orders.ByStatus(models.OrderPending)
	require.NoError(t, err)
	require.Len(t, pending, 1)
	assert.Equal(t, first.OrderID, pending[0].ID)

	cancelled, err := client.Orders.ByStatus(models.OrderCancelled)
	require.NoError(t, err)
	require.Len(t, cancelled, 1)
	assert.Equal(t, second.OrderID, cancelled[0].ID)
}

func TestAdminEndpointsRejectRegularUsers(t *testing.T) {
	backend := newBackend(t)
	client, session, _ := newStorefront(t, backend)
	registerShopper(t, session, "shopper@example.com")

	_, err := client.Orders.All()
	require.Error(t, err)
	assert.True(t, api.IsBusiness(err))
	assert.Equal(t, "Admin access required", err.Error())

	_, err = client.Items.Create(models.Item{Name: "Contraband", Price: 1, Quantity: 1, Category: "Test"})
	require.Error(t, err)
	assert.Equal(t, "Admin access required", err.Error())
}

func TestAdminManagesCatalog(t *testing.T) {
	backend := newBackend(t)
	client, session, _ := newStorefront(t, backend)
	require.True(t, session.Login(sandbox.AdminEmail, sandbox.AdminPassword).Success)

	created, err := client.Items.Create(models.Item{Name: "Olive Oil 750ml", Price: 220, Quantity: 25, Category: "Pantry"})
	require.NoError(t, err)
	assert.NotZero(t, created.ID)

	created.Price = 199.50
	require.NoError(t, client.Items.Update(created))

	item, err := client.Items.Details(created.ID)
	require.NoError(t, err)
	assert.Equal(t, 199.50, item.Price)

	require.NoError(t, client.Items.Delete(created.ID))
	_, err = client.Items.Details(created.ID)
	require.Error(t, err)
	assert.Equal(t, "Item not found", err.Error())
}

func TestAnonymousCartAccessIsUnauthorized(t *testing.T) {
	backend := newBackend(t)
	client, _, _ := newStorefront(t, backend)

	_, err := client.Cart.Get()
	require.Error(t, err)
	assert.True(t, api.IsUnauthorized(err))
}
