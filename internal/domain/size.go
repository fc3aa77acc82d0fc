package domain

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// SizeLabel é o identificador de um tamanho dentro de uma linha de estoque (ex.: "40", "RU40").
// Vazio significa um lançamento sem tamanho (legado).
// Aceita string, número ou null no JSON, como o histórico antigo gravava.
type SizeLabel string

// UnmarshalJSON converte números em texto e null em rótulo vazio.
func (s *SizeLabel) UnmarshalJSON(data []byte) error {
	label, err := decodeLabel(data)
	if err != nil {
		return err
	}
	*s = SizeLabel(label)
	return nil
}

// String implementa fmt.Stringer.
func (s SizeLabel) String() string { return string(s) }

// SizeList é uma lista de rótulos que aceita tanto um array JSON (de strings ou números)
// quanto uma única string separada por vírgulas ("41, 42, 45").
type SizeList []string

// UnmarshalJSON implementa json.Unmarshaler.
func (l *SizeList) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*l = nil
		return nil
	}

	if len(data) > 0 && data[0] == '"' {
		var raw string
		if err := json.Unmarshal(data, &raw); err != nil {
			return err
		}
		*l = strings.Split(raw, ",")
		return nil
	}

	var items []json.RawMessage
	if err := json.Unmarshal(data, &items); err != nil {
		return fmt.Errorf("lista de tamanhos inválida: %w", err)
	}
	out := make([]string, 0, len(items))
	for _, item := range items {
		label, err := decodeLabel(item)
		if err != nil {
			return err
		}
		out = append(out, label)
	}
	*l = out
	return nil
}

func decodeLabel(data []byte) (string, error) {
	data = bytes.TrimSpace(data)
	switch {
	case len(data) == 0, bytes.Equal(data, []byte("null")):
		return "", nil
	case data[0] == '"':
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return "", err
		}
		return strings.TrimSpace(s), nil
	default:
		f, err := strconv.ParseFloat(string(data), 64)
		if err != nil {
			return "", fmt.Errorf("tamanho inválido: %s", string(data))
		}
		return strconv.FormatFloat(f, 'f', -1, 64), nil
	}
}

// Quantity é uma quantidade não negativa de peças.
// Valores ausentes, malformados ou negativos viram 0 na decodificação, para que um
// histórico sujo não derrube a leitura inteira.
type Quantity int

// UnmarshalJSON implementa json.Unmarshaler com coerção silenciosa para 0.
func (q *Quantity) UnmarshalJSON(data []byte) error {
	*q = 0
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		return nil
	}

	text := string(data)
	if data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return nil
		}
		text = strings.TrimSpace(s)
	}

	n, err := strconv.Atoi(text)
	if err != nil || n < 0 {
		return nil
	}
	*q = Quantity(n)
	return nil
}

// Int devolve a quantidade como int.
func (q Quantity) Int() int { return int(q) }

// dateLayouts são os formatos aceitos para datas vindas do cliente.
var dateLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02",
}

// ParseDate interpreta datas "yyyy-mm-dd" (meia-noite UTC) ou RFC3339.
func ParseDate(value string) (time.Time, error) {
	value = strings.TrimSpace(value)
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("data inválida: %q", value)
}
