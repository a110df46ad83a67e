// Package validation concentra as regras de entrada de cada recurso.
// Cada validador devolve o valor já convertido ou um *Error com o tipo da falha,
// sem tocar no banco de dados.
package validation

import (
	"encoding/json"
	"errors"
	"regexp"
	"strings"

	"controle-financeiro/models"

	"github.com/shopspring/decimal"
)

// Kind tipo de falha de validação
type Kind int

const (
	// KindRequired campo obrigatório ausente
	KindRequired Kind = iota + 1
	// KindInvalid campo presente mas malformado
	KindInvalid
	// KindOutOfRange valor fora do intervalo permitido
	KindOutOfRange
)

func (k Kind) String() string {
	switch k {
	case KindRequired:
		return "required"
	case KindInvalid:
		return "invalid"
	case KindOutOfRange:
		return "out_of_range"
	default:
		return "unknown"
	}
}

// Error falha de validação; a mensagem é a que vai para o cliente
type Error struct {
	Field   string
	Kind    Kind
	Message string
}

func (e *Error) Error() string {
	return e.Message
}

func newError(field string, kind Kind, message string) *Error {
	return &Error{Field: field, Kind: kind, Message: message}
}

// AsError indica se err é uma falha de validação
func AsError(err error) (*Error, bool) {
	var verr *Error
	if errors.As(err, &verr) {
		return verr, true
	}
	return nil, false
}

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// Amount valor monetário aceito como número ou string numérica no JSON.
type Amount json.RawMessage

// UnmarshalJSON guarda o conteúdo bruto; a conversão acontece na validação.
func (a *Amount) UnmarshalJSON(b []byte) error {
	*a = append((*a)[0:0], b...)
	return nil
}

// MarshalJSON implementa json.Marshaler
func (a Amount) MarshalJSON() ([]byte, error) {
	if len(a) == 0 {
		return []byte("null"), nil
	}
	return a, nil
}

// AmountOf constrói um Amount a partir de texto (útil em testes).
func AmountOf(s string) Amount {
	return Amount(s)
}

// raw devolve o texto do valor e se ele conta como "preenchido".
// Ausente, null, "", 0 e false são tratados como vazios.
func (a Amount) raw() (string, bool) {
	s := strings.TrimSpace(string(a))
	if s == "" || s == "null" || s == "false" {
		return "", false
	}
	if unquoted := strings.Trim(s, `"`); unquoted != s {
		s = strings.TrimSpace(unquoted)
		if s == "" {
			return "", false
		}
		return s, true
	}
	if d, err := decimal.NewFromString(s); err == nil && d.IsZero() {
		return "", false
	}
	return s, true
}

// Present indica se o valor foi informado.
func (a Amount) Present() bool {
	_, ok := a.raw()
	return ok
}

// Decimal converte para decimal; ok=false quando não é um número.
func (a Amount) Decimal() (decimal.Decimal, bool) {
	s, present := a.raw()
	if !present {
		return decimal.Zero, false
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, false
	}
	return d, true
}

// maxAmount limite da coluna DECIMAL(10,2)
var maxAmount = decimal.New(1, 8)

func positiveAmount(field string, a Amount, notNumber, notPositive string) (decimal.Decimal, *Error) {
	d, ok := a.Decimal()
	if !ok {
		return decimal.Zero, newError(field, KindInvalid, notNumber)
	}
	if !d.IsPositive() {
		return decimal.Zero, newError(field, KindOutOfRange, notPositive)
	}
	return withinLimit(field, d.Round(2))
}

// withinLimit confere o valor já arredondado contra a coluna.
func withinLimit(field string, d decimal.Decimal) (decimal.Decimal, *Error) {
	if d.GreaterThanOrEqual(maxAmount) {
		return decimal.Zero, newError(field, KindOutOfRange, "Valor excede o limite permitido")
	}
	return d, nil
}

func parseDate(field, s string) (models.Date, *Error) {
	d, err := models.ParseDate(s)
	if err != nil {
		return models.Date{}, newError(field, KindInvalid, "Data inválida")
	}
	return d, nil
}

func blank(s string) bool {
	return strings.TrimSpace(s) == ""
}
