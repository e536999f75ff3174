package storefront

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/Gunvolt24/pixelcraft/pkg/telemetry"
)

// DefaultCEPBaseURL — публичный сервис ViaCEP.
const DefaultCEPBaseURL = "https://viacep.com.br/ws"

// Address — адрес, найденный по CEP.
type Address struct {
	PostalCode   string
	Street       string
	Neighborhood string
	City         string
	State        string
}

// CEPClient — поиск адреса по почтовому индексу (CEP).
type CEPClient struct {
	base string
	http *http.Client
}

// NewCEPClient — base без завершающего "/"; пустой — DefaultCEPBaseURL.
func NewCEPClient(base string, timeout time.Duration, transport http.RoundTripper) *CEPClient {
	if base == "" {
		base = DefaultCEPBaseURL
	}
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	return &CEPClient{
		base: strings.TrimRight(base, "/"),
		http: &http.Client{Timeout: timeout, Transport: telemetry.HTTPTransport(transport)},
	}
}

// NormalizePostalCode — оставляет только цифры ASCII; ok=false, если их не ровно 8.
func NormalizePostalCode(raw string) (string, bool) {
	var b strings.Builder
	for _, r := range raw {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	cep := b.String()
	return cep, len(cep) == 8
}

// viaCEPResponse — erro приходит как bool или как строка "true".
type viaCEPResponse struct {
	Erro       flexBool `json:"erro"`
	Logradouro string   `json:"logradouro"`
	Bairro     string   `json:"bairro"`
	Localidade string   `json:"localidade"`
	UF         string   `json:"uf"`
}

type flexBool bool

func (b *flexBool) UnmarshalJSON(raw []byte) error {
	switch strings.Trim(string(raw), `"`) {
	case "true":
		*b = true
	default:
		*b = false
	}
	return nil
}

// Lookup — некорректный CEP не уходит в сеть (ErrInvalidPostalCode).
func (c *CEPClient) Lookup(ctx context.Context, raw string) (Address, error) {
	cep, ok := NormalizePostalCode(raw)
	if !ok {
		return Address{}, ErrInvalidPostalCode
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.base+"/"+cep+"/json/", http.NoBody)
	if err != nil {
		return Address{}, fmt.Errorf("%w: build request: %v", ErrTransport, err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return Address{}, fmt.Errorf("%w: cep lookup: %v", ErrTransport, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return Address{}, fmt.Errorf("%w: cep lookup: status %d", ErrTransport, resp.StatusCode)
	}

	var body viaCEPResponse
	if err := json.NewDecoder(io.LimitReader(resp.Body, maxBodySize)).Decode(&body); err != nil {
		return Address{}, fmt.Errorf("%w: decode cep: %v", ErrTransport, err)
	}
	if body.Erro {
		return Address{}, ErrPostalCodeNotFound
	}
	return Address{
		PostalCode:   cep,
		Street:       body.Logradouro,
		Neighborhood: body.Bairro,
		City:         body.Localidade,
		State:        body.UF,
	}, nil
}
