package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// DateLayout formato ISO de fecha (día calendario) usado en entradas y salidas.
const DateLayout = "2006-01-02"

// ErrorResponse cuerpo de error HTTP.
type ErrorResponse struct {
	Code    string   `json:"code"`
	Message string   `json:"message"`
	Fields  []string `json:"fields,omitempty"`
}

// StatusView estado categórico con su etiqueta y variante visual.
type StatusView struct {
	Code  string `json:"code"`
	Label string `json:"label"`
	Badge string `json:"badge"`
}

// Money redondea a 2 decimales para presentación; los cálculos internos usan precisión completa.
func Money(d decimal.Decimal) decimal.Decimal {
	return d.Round(2)
}

// Date formatea un día calendario; cadena vacía para el valor cero.
func Date(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.UTC().Format(DateLayout)
}
