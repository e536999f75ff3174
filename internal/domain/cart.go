package domain

// CartLine — позиция серверной корзины.
type CartLine struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	Price    float64 `json:"price"`
	Image    string  `json:"image,omitempty"`
	Quantity int     `json:"quantity"`
}

// SessionCart — корзина, привязанная к сессии браузера.
type SessionCart struct {
	SessionID string     `json:"session_id"`
	Lines     []CartLine `json:"lines"`
}

// Add — повторное добавление увеличивает количество, новая позиция идёт в конец.
func (c *SessionCart) Add(p *Product) {
	for i := range c.Lines {
		if c.Lines[i].ID == p.ID {
			c.Lines[i].Quantity++
			return
		}
	}
	c.Lines = append(c.Lines, CartLine{
		ID:       p.ID,
		Name:     p.Name,
		Price:    p.Price,
		Image:    p.MainImage,
		Quantity: 1,
	})
}

// Remove — удаляет позицию целиком; false, если её не было.
func (c *SessionCart) Remove(productID string) bool {
	for i := range c.Lines {
		if c.Lines[i].ID == productID {
			c.Lines = append(c.Lines[:i], c.Lines[i+1:]...)
			return true
		}
	}
	return false
}

// Count — число позиций (не штук).
func (c *SessionCart) Count() int {
	if c == nil {
		return 0
	}
	return len(c.Lines)
}

// Total — сумма price*quantity.
func (c *SessionCart) Total() float64 {
	if c == nil {
		return 0
	}
	var total float64
	for _, l := range c.Lines {
		total += l.Price * float64(l.Quantity)
	}
	return total
}

// Clone — глубокая копия, чтобы хранилища не делили срез с вызывающим кодом.
func (c *SessionCart) Clone() *SessionCart {
	if c == nil {
		return nil
	}
	cloned := *c
	if c.Lines != nil {
		cloned.Lines = append([]CartLine(nil), c.Lines...)
	}
	return &cloned
}

// CartView — представление корзины для GET /cart и /checkout.
type CartView struct {
	Items []CartLine `json:"items"`
	Total float64    `json:"total"`
	Count int        `json:"count"`
}

// View — строит CartView; пустая корзина отдаёт items=[] (не null).
func (c *SessionCart) View() CartView {
	items := []CartLine{}
	if c != nil && len(c.Lines) > 0 {
		items = append(items, c.Lines...)
	}
	return CartView{Items: items, Total: c.Total(), Count: c.Count()}
}
