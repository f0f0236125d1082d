package api

import (
	"log"
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/ZeyadMahfouzz/supermarket-client/models"
	"github.com/go-resty/resty/v2"
)

// Client talks to the supermarket gateway. Every request carries the bearer
// token plus the X-User-Id and X-User-Role headers the downstream services
// expect. A 401 from any endpoint clears the held session and fires the
// unauthorized hook exactly as the storefront requires.
type Client struct {
	http *resty.Client

	mu             sync.RWMutex
	session        models.Session
	onUnauthorized func()

	Auth   *AuthService
	Items  *ItemService
	Cart   *CartService
	Orders *OrderService
}

func NewClient(baseURL string) *Client {
	client := &Client{
		http: resty.New().
			SetBaseURL(baseURL).
			SetTimeout(30 * time.Second).
			SetHeader("Content-Type", "application/json").
			SetHeader("Accept", "application/json"),
	}

	client.http.OnBeforeRequest(func(_ *resty.Client, req *resty.Request) error {
		session := client.Session()
		if session.Token != "" {
			req.SetHeader("Authorization", "Bearer "+session.Token)
		}
		if session.UserID != 0 {
			req.SetHeader("X-User-Id", strconv.FormatInt(session.UserID, 10))
		}
		if session.Role != "" {
			req.SetHeader("X-User-Role", string(session.Role))
		}
		return nil
	})

	client.http.OnAfterResponse(func(_ *resty.Client, resp *resty.Response) error {
		if resp.StatusCode() == http.StatusUnauthorized {
			client.handleUnauthorized()
		}
		return nil
	})

	client.Auth = &AuthService{client: client}
	client.Items = &ItemService{client: client}
	client.Cart = &CartService{client: client}
	client.Orders = &OrderService{client: client}
	return client
}

func (c *Client) SetSession(session models.Session) {
	c.mu.Lock()
	c.session = session
	c.mu.Unlock()
}

func (c *Client) ClearSession() {
	c.mu.Lock()
	c.session = models.Session{}
	c.mu.Unlock()
}

func (c *Client) Session() models.Session {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.session
}

// OnUnauthorized registers the hook called after any request comes back 401.
// The session is already cleared by the time the hook runs.
func (c *Client) OnUnauthorized(hook func()) {
	c.mu.Lock()
	c.onUnauthorized = hook
	c.mu.Unlock()
}

func (c *Client) handleUnauthorized() {
	c.mu.Lock()
	c.session = models.Session{}
	hook := c.onUnauthorized
	c.mu.Unlock()
	if hook != nil {
		hook()
	}
}

// wrap converts a resty outcome into the client error taxonomy.
func (c *Client) wrap(resp *resty.Response, err error) error {
	if err != nil {
		log.Println("Request failed:", err)
		return &Error{Kind: KindTransport, Message: msgTryAgainLater}
	}
	if !resp.IsError() {
		return nil
	}

	status := resp.StatusCode()
	switch {
	case status == http.StatusUnauthorized:
		return &Error{Kind: KindUnauthorized, Status: status, Message: msgSessionExpired}
	case status >= http.StatusInternalServerError:
		log.Printf("Server error %d from %s: %s", status, resp.Request.URL, resp.Body())
		return &Error{Kind: KindTransport, Status: status, Message: msgTryAgainLater}
	default:
		return &Error{Kind: KindBusiness, Status: status, Message: extractMessage(resp.Body())}
	}
}

func (c *Client) get(path string, out any) error {
	resp, err := c.http.R().SetResult(out).Get(path)
	return c.wrap(resp, err)
}

func (c *Client) post(path string, body, out any) error {
	req := c.http.R()
	if body != nil {
		req.SetBody(body)
	}
	if out != nil {
		req.SetResult(out)
	}
	resp, err := req.Post(path)
	return c.wrap(resp, err)
}

func (c *Client) put(path string, body, out any) error {
	req := c.http.R().SetBody(body)
	if out != nil {
		req.SetResult(out)
	}
	resp, err := req.Put(path)
	return c.wrap(resp, err)
}

func (c *Client) patch(path string, body, out any) error {
	req := c.http.R().SetBody(body)
	if out != nil {
		req.SetResult(out)
	}
	resp, err := req.Patch(path)
	return c.wrap(resp, err)
}

func (c *Client) delete(path string, body, out any) error {
	req := c.http.R()
	if body != nil {
		req.SetBody(body)
	}
	if out != nil {
		req.SetResult(out)
	}
	resp, err := req.Delete(path)
	return c.wrap(resp, err)
}
