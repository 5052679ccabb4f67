package backendclient

import (
	"net/url"
	"strconv"
)

type Operator string

const (
	OpEq  Operator = "eq"
	OpNeq Operator = "neq"
	OpGt  Operator = "gt"
	OpGte Operator = "gte"
	OpLt  Operator = "lt"
	OpLte Operator = "lte"
)

// Filter é uma condição coluna=operador.valor da API de tabelas
type Filter struct {
	Column   string
	Operator Operator
	Value    string
}

func Eq(column, value string) Filter  { return Filter{Column: column, Operator: OpEq, Value: value} }
func Gte(column, value string) Filter { return Filter{Column: column, Operator: OpGte, Value: value} }
func Lt(column, value string) Filter  { return Filter{Column: column, Operator: OpLt, Value: value} }
func Lte(column, value string) Filter { return Filter{Column: column, Operator: OpLte, Value: value} }

type Query struct {
	Select  string
	Filters []Filter
	Order   string
	Limit   int
	Offset  int
}

func (q Query) values() url.Values {
	values := url.Values{}

	if q.Select != "" {
		values.Set("select", q.Select)
	}

	for _, filter := range q.Filters {
		values.Add(filter.Column, string(filter.Operator)+"."+filter.Value)
	}

	if q.Order != "" {
		values.Set("order", q.Order)
	}

	if q.Limit > 0 {
		values.Set("limit", strconv.Itoa(q.Limit))
	}

	if q.Offset > 0 {
		values.Set("offset", strconv.Itoa(q.Offset))
	}

	return values
}
