package cartui

import (
	"context"
	"errors"

	"github.com/Gunvolt24/pixelcraft/internal/notify"
	"github.com/Gunvolt24/pixelcraft/internal/ports"
	"github.com/Gunvolt24/pixelcraft/internal/storefront"
)

// AddressAutofill — заполняет адрес в форме по CEP.
type AddressAutofill struct {
	lookup   AddressLookup
	form     AddressForm
	notifier Notifier
	log      ports.Logger
}

func NewAddressAutofill(lookup AddressLookup, form AddressForm, notifier Notifier, log ports.Logger) *AddressAutofill {
	return &AddressAutofill{lookup: lookup, form: form, notifier: notifier, log: log}
}

// Fill — true, если адрес найден и форма заполнена.
func (a *AddressAutofill) Fill(ctx context.Context, raw string) bool {
	addr, err := a.lookup.Lookup(ctx, raw)
	switch {
	case err == nil:
		a.form.FillAddress(addr)
		a.notifier.Show(MsgCEPFound, notify.SeveritySuccess)
		return true
	case errors.Is(err, storefront.ErrInvalidPostalCode):
		a.notifier.Show(MsgCEPInvalid, notify.SeverityError)
	case errors.Is(err, storefront.ErrPostalCodeNotFound):
		a.notifier.Show(MsgCEPNotFound, notify.SeverityError)
	default:
		a.log.Warnf(ctx, "cep lookup failed: %v", err)
		a.notifier.Show(MsgCEPError, notify.SeverityError)
	}
	return false
}
