package cartui

// Тексты, которые видит покупатель.
const (
	MsgAdded          = "PC adicionado ao carrinho! 🛒"
	MsgAddedOffline   = "PC adicionado ao carrinho (offline) 🛒"
	MsgInvalidItem    = "Produto inválido"
	MsgRemoved        = "PC removido do carrinho"
	PromptRemove      = "Remover este PC do carrinho?"
	MsgNoResults      = "Nenhum resultado encontrado"
	MsgCEPFound       = "CEP encontrado! ✅"
	MsgCEPNotFound    = "CEP não encontrado"
	MsgCEPError       = "Erro ao buscar CEP"
	MsgCEPInvalid     = "CEP inválido"
	MsgEmailRequired  = "Digite um e-mail válido"
	MsgNewsletterDone = "E-mail cadastrado com sucesso! (modo offline)"
	MsgEmptyCart      = "Seu carrinho está vazio"
)
