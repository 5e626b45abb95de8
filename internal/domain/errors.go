package domain

import (
	"fmt"
	"strings"
)

// ValidationError reporta filtros malformados. Nunca chega ao usuário:
// o campo inválido é descartado e a requisição segue sem aquele filtro.
type ValidationError struct {
	Fields []FieldError
}

type FieldError struct {
	Field string
	Value string
	Err   error
}

func (e *ValidationError) Error() string {
	parts := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		parts = append(parts, fmt.Sprintf("%s=%q: %v", f.Field, f.Value, f.Err))
	}
	return "invalid filter: " + strings.Join(parts, "; ")
}

func (e *ValidationError) Unwrap() []error {
	errs := make([]error, 0, len(e.Fields))
	for _, f := range e.Fields {
		errs = append(errs, f.Err)
	}
	return errs
}

func (e *ValidationError) add(field, value string, err error) *ValidationError {
	if e == nil {
		e = &ValidationError{}
	}
	e.Fields = append(e.Fields, FieldError{Field: field, Value: value, Err: err})
	return e
}

// CacheError envolve qualquer falha de leitura ou escrita no cache.
// É sempre recuperada localmente (tratada como miss ou no-op).
type CacheError struct {
	Op  string
	Key string
	Err error
}

func (e *CacheError) Error() string {
	return fmt.Sprintf("cache %s %s: %v", e.Op, e.Key, e.Err)
}

func (e *CacheError) Unwrap() error { return e.Err }

// DataFetchError indica que a consulta de agregação falhou, seja por erro de
// transporte, resposta não 2xx ou campo de erro explícito no payload.
// É propagado até a camada de apresentação e não há retry automático.
type DataFetchError struct {
	Source string
	Err    error
}

func (e *DataFetchError) Error() string {
	return fmt.Sprintf("failed to fetch dashboard data from %s: %v", e.Source, e.Err)
}

func (e *DataFetchError) Unwrap() error { return e.Err }

// ComputationError sinaliza um valor não finito que os guards do forecast
// deveriam ter impedido. É um bug, não uma condição recuperável.
type ComputationError struct {
	Op     string
	Detail string
}

func (e *ComputationError) Error() string {
	return fmt.Sprintf("computation error in %s: %s", e.Op, e.Detail)
}
