// Package search filtra colecciones por subcadena sin distinguir mayúsculas.
// Cada función devuelve una secuencia perezosa y reiniciable que conserva el orden de inserción.
package search

import (
	"iter"
	"strings"

	"golang.org/x/text/cases"

	"github.com/jhoicas/stockboard/internal/domain/entity"
)

// fold normaliza mayúsculas/minúsculas (incluye acentuadas: "É" → "é").
// cases.Caser no es seguro entre goroutines; se crea uno por uso.
func fold(s string) string {
	return cases.Fold().String(s)
}

// matcher devuelve el predicado para term ya normalizado. Término vacío acepta todo.
func matcher(term string) func(fields ...string) bool {
	needle := fold(term)
	return func(fields ...string) bool {
		if needle == "" {
			return true
		}
		for _, f := range fields {
			if strings.Contains(fold(f), needle) {
				return true
			}
		}
		return false
	}
}

func filter[T any](collection []T, keep func(T) bool) iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, v := range collection {
			if keep(v) && !yield(v) {
				return
			}
		}
	}
}

// Items busca en nombre y categoría.
func Items(items []entity.Item, term string) iter.Seq[entity.Item] {
	match := matcher(term)
	return filter(items, func(it entity.Item) bool {
		return match(it.Name, string(it.Category))
	})
}

// Clients busca en nombre, email y empresa.
func Clients(clients []entity.Client, term string) iter.Seq[entity.Client] {
	match := matcher(term)
	return filter(clients, func(c entity.Client) bool {
		return match(c.Name, c.Email, c.Company)
	})
}

// Purchases busca en el nombre del cliente y en el nombre de cualquier línea.
func Purchases(purchases []entity.Purchase, term string) iter.Seq[entity.Purchase] {
	match := matcher(term)
	return filter(purchases, func(p entity.Purchase) bool {
		if match(p.ClientName) {
			return true
		}
		for _, l := range p.Lines {
			if match(l.Name) {
				return true
			}
		}
		return false
	})
}
