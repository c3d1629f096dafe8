package service

import (
	"errors"
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"sync"

	"github.com/masterdu/masterdu-backend/internal/model"
	"github.com/masterdu/masterdu-backend/pkg/logger"
)

var ErrCartEmpty = errors.New("cart is empty")

// CartService is the single shared cart store. Carts are keyed by an
// opaque session id and held in memory only; nothing is persisted.
type CartService interface {
	GetCart(sessionID string) ([]model.CartItem, bool)
	AddToCart(sessionID string, item model.CartItem)
	RemoveFromCart(sessionID, itemID string)
	ClearCart(sessionID string)
	GetCartTotal(sessionID string) float64
	ToggleDrawer(sessionID string) bool
	CheckoutLink(sessionID string) (string, error)
}

type sessionCart struct {
	items      []model.CartItem
	drawerOpen bool
}

type cartService struct {
	mu             sync.Mutex
	carts          map[string]*sessionCart
	whatsAppNumber string
}

func NewCartService(whatsAppNumber string) CartService {
	return &cartService{
		carts:          make(map[string]*sessionCart),
		whatsAppNumber: whatsAppNumber,
	}
}

func (s *cartService) cart(sessionID string) *sessionCart {
	c, ok := s.carts[sessionID]
	if !ok {
		c = &sessionCart{}
		s.carts[sessionID] = c
	}
	return c
}

func (s *cartService) GetCart(sessionID string) ([]model.CartItem, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	c := s.cart(sessionID)
	items := make([]model.CartItem, len(c.items))
	copy(items, c.items)
	return items, c.drawerOpen
}

// AddToCart increments the quantity of an existing line by one,
// ignoring the incoming quantity, or appends the item as given.
// Adding always opens the cart drawer.
func (s *cartService) AddToCart(sessionID string, item model.CartItem) {
	s.mu.Lock()
	defer s.mu.Unlock()

	c := s.cart(sessionID)
	for i := range c.items {
		if c.items[i].ID == item.ID {
			c.items[i].Quantity++
			c.drawerOpen = true
			logger.Debug("Incremented cart line", map[string]interface{}{
				"item_id":  item.ID,
				"quantity": c.items[i].Quantity,
			})
			return
		}
	}
	c.items = append(c.items, item)
	c.drawerOpen = true
	logger.Debug("Added cart line", map[string]interface{}{
		"item_id": item.ID,
		"name":    item.Name,
	})
}

// RemoveFromCart deletes the whole line; there is no partial
// quantity decrement.
func (s *cartService) RemoveFromCart(sessionID, itemID string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	c := s.cart(sessionID)
	filtered := c.items[:0]
	for _, it := range c.items {
		if it.ID != itemID {
			filtered = append(filtered, it)
		}
	}
	c.items = filtered
}

func (s *cartService) ClearCart(sessionID string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.cart(sessionID).items = nil
}

func (s *cartService) GetCartTotal(sessionID string) float64 {
	s.mu.Lock()
	defer s.mu.Unlock()

	var total float64
	for _, it := range s.cart(sessionID).items {
		total += it.LineTotal()
	}
	return total
}

func (s *cartService) ToggleDrawer(sessionID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	c := s.cart(sessionID)
	c.drawerOpen = !c.drawerOpen
	return c.drawerOpen
}

// CheckoutLink serializes the cart into the prefilled WhatsApp deep
// link. The cart is deliberately not cleared: checkout happens in the
// external channel and there is no confirmation it succeeded.
func (s *cartService) CheckoutLink(sessionID string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	c := s.cart(sessionID)
	if len(c.items) == 0 {
		return "", ErrCartEmpty
	}

	var lines []string
	var total float64
	for _, it := range c.items {
		lines = append(lines, fmt.Sprintf("- %s (%s) x%d ($%s)",
			it.Name, it.Label(), it.Quantity, formatPlain(it.LineTotal())))
		total += it.LineTotal()
	}

	text := "你好，我想預約/購買以下項目：\n\n" +
		strings.Join(lines, "\n") +
		"\n\n總計: HK$" + formatPlain(total) +
		"\n\n請協助安排付款及送貨/預約詳情。"

	escaped := strings.ReplaceAll(url.QueryEscape(text), "+", "%20")
	return fmt.Sprintf("https://wa.me/%s?text=%s", s.whatsAppNumber, escaped), nil
}

func formatPlain(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
