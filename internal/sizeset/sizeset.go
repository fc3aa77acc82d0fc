// Package sizeset transforma a especificação de tamanhos digitada pelo usuário
// (lista explícita ou faixa numérica, com prefixo opcional) no conjunto canônico de
// rótulos de tamanho, e valida pedidos contra os tamanhos existentes de uma linha de estoque.
//
// Todas as funções são puras: não fazem I/O e podem ser chamadas concorrentemente.
package sizeset

import (
	"math"
	"strconv"
	"strings"
	"unicode/utf8"

	"beltstock/internal/domain"
	apperror "beltstock/internal/errors"
)

// Mode identifica a variante da especificação. Os valores coincidem com o campo sizeMode do formulário.
type Mode string

const (
	ModeExplicit Mode = "single"
	ModeRange    Mode = "multiple"
)

// MaxPrefixLength é o tamanho máximo do prefixo alfanumérico.
const MaxPrefixLength = 5

// MaxRangeSizes é o maior número de tamanhos que uma faixa pode gerar.
// Faixas maiores são rejeitadas como "invalid range".
const MaxRangeSizes = 1000

// Mensagens de validação.
const (
	MsgNoValidSizes    = "no valid sizes"
	MsgInvalidRange    = "invalid range"
	MsgSizesNotFound   = "sizes not found"
	MsgPrefixTooLong   = "size prefix too long"
	MsgUnknownSizeMode = "unknown size mode"
)

// Spec é a especificação de tamanhos: RawSizes vale para ModeExplicit,
// Start/End/Interval para ModeRange. Prefix vale para as duas.
type Spec struct {
	Mode     Mode
	RawSizes []string
	Start    int
	End      int
	Interval int
	Prefix   string
}

// Explicit monta uma especificação de lista explícita.
func Explicit(rawSizes []string, prefix string) Spec {
	return Spec{Mode: ModeExplicit, RawSizes: rawSizes, Prefix: prefix}
}

// Range monta uma especificação de faixa inclusiva start..end com passo interval.
func Range(start, end, interval int, prefix string) Spec {
	return Spec{Mode: ModeRange, Start: start, End: end, Interval: interval, Prefix: prefix}
}

// ParseRange interpreta os campos de faixa vindos de um formulário. Qualquer campo não numérico
// falha com ValidationError("invalid range") em vez de virar zero silenciosamente.
func ParseRange(start, end, interval, prefix string) (Spec, error) {
	s, errS := strconv.Atoi(strings.TrimSpace(start))
	e, errE := strconv.Atoi(strings.TrimSpace(end))
	i, errI := strconv.Atoi(strings.TrimSpace(interval))
	if errS != nil || errE != nil || errI != nil {
		return Spec{}, apperror.NewValidationError(MsgInvalidRange)
	}
	return Range(s, e, i, prefix), nil
}

// SplitRaw separa a entrada "41, 42,45" em tokens crus (sem aparar).
func SplitRaw(raw string) []string {
	return strings.Split(raw, ",")
}

// NormalizePrefix apara e coloca o prefixo em maiúsculas.
func NormalizePrefix(prefix string) (string, error) {
	prefix = strings.ToUpper(strings.TrimSpace(prefix))
	if utf8.RuneCountInString(prefix) > MaxPrefixLength {
		return "", apperror.NewValidationError(MsgPrefixTooLong)
	}
	return prefix, nil
}

// Derive produz a sequência ordenada e sem repetições de rótulos de tamanho.
func Derive(spec Spec) ([]string, error) {
	prefix, err := NormalizePrefix(spec.Prefix)
	if err != nil {
		return nil, err
	}

	switch spec.Mode {
	case ModeExplicit:
		return deriveExplicit(spec.RawSizes, prefix)
	case ModeRange:
		return deriveRange(spec.Start, spec.End, spec.Interval, prefix)
	default:
		return nil, apperror.NewValidationError(MsgUnknownSizeMode)
	}
}

func deriveExplicit(raw []string, prefix string) ([]string, error) {
	seen := make(map[string]struct{}, len(raw))
	labels := make([]string, 0, len(raw))

	for _, chunk := range raw {
		// Um item pode trazer vários tokens ("41, 42") quando veio de um campo de texto.
		for _, token := range SplitRaw(chunk) {
			token = strings.TrimSpace(token)
			if token == "" {
				continue
			}
			label := Label(prefix, token)
			if _, dup := seen[label]; dup {
				continue
			}
			seen[label] = struct{}{}
			labels = append(labels, label)
		}
	}

	if len(labels) == 0 {
		return nil, apperror.NewValidationError(MsgNoValidSizes)
	}
	return labels, nil
}

func deriveRange(start, end, interval int, prefix string) ([]string, error) {
	count, ok := rangeCount(start, end, interval)
	if !ok {
		return nil, apperror.NewValidationError(MsgInvalidRange)
	}

	// O passo é somado em uint64: o resultado volta para int sem estourar, já que nunca passa de end.
	labels := make([]string, 0, count)
	for i := 0; i < count; i++ {
		v := int(uint64(start) + uint64(i)*uint64(interval))
		labels = append(labels, prefix+strconv.Itoa(v))
	}
	return labels, nil
}

// rangeCount devolve floor((end-start)/interval)+1 calculado sem overflow, e false quando a
// faixa é inválida ou passa de MaxRangeSizes.
func rangeCount(start, end, interval int) (int, bool) {
	if interval <= 0 || end < start {
		return 0, false
	}
	// end >= start: a diferença em uint64 é exata mesmo quando end-start não cabe em int.
	span := uint64(end) - uint64(start)
	steps := span / uint64(interval)
	if steps >= MaxRangeSizes {
		return 0, false
	}
	return int(steps) + 1, true
}

// Label aplica a regra de prefixo: só tokens numéricos recebem o prefixo, sem separador.
func Label(prefix, token string) string {
	if prefix != "" && IsNumeric(token) {
		return prefix + token
	}
	return token
}

// IsNumeric informa se o token representa um número finito em notação decimal.
// Hexadecimal ("0x10") e "Infinity" não contam como numéricos e não recebem prefixo.
func IsNumeric(token string) bool {
	f, err := strconv.ParseFloat(strings.TrimSpace(token), 64)
	if err != nil {
		return false
	}
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}

// RangeCount devolve floor((end-start)/interval)+1 para faixas válidas e 0 caso contrário
// (inclusive acima de MaxRangeSizes). É sempre igual a len(Derive(spec)) quando Derive aceita a faixa.
func RangeCount(spec Spec) int {
	if spec.Mode != ModeRange {
		return 0
	}
	count, _ := rangeCount(spec.Start, spec.End, spec.Interval)
	return count
}

// Count é a prévia de "total de tamanhos" para qualquer modo, recalculada dos campos atuais.
// Especificações inválidas contam 0.
func Count(spec Spec) int {
	if spec.Mode == ModeRange {
		return RangeCount(spec)
	}
	labels, err := Derive(spec)
	if err != nil {
		return 0
	}
	return len(labels)
}

// ValidateAgainstStock verifica que todos os rótulos pedidos existem na linha de estoque.
// Todas as ausências são reportadas de uma vez, na ordem em que foram pedidas.
func ValidateAgainstStock(requested []string, stock domain.Stock) error {
	return ValidateAgainst(requested, stock.Sizes)
}

// ValidateAgainst é ValidateAgainstStock sobre um conjunto de tamanhos avulso.
func ValidateAgainst(requested, known []string) error {
	available := make(map[string]struct{}, len(known))
	for _, size := range known {
		available[size] = struct{}{}
	}

	var missing []string
	reported := make(map[string]struct{})
	for _, size := range requested {
		if _, ok := available[size]; ok {
			continue
		}
		if _, dup := reported[size]; dup {
			continue
		}
		reported[size] = struct{}{}
		missing = append(missing, size)
	}

	if len(missing) > 0 {
		return apperror.NewListValidationError(MsgSizesNotFound, missing)
	}
	return nil
}

// FromInput converte o SizeInput do formulário em Spec.
func FromInput(in domain.SizeInput) (Spec, error) {
	switch Mode(in.SizeMode) {
	case ModeRange:
		if in.Start == nil || in.End == nil || in.Interval == nil {
			return Spec{}, apperror.NewValidationError(MsgInvalidRange)
		}
		return Range(*in.Start, *in.End, *in.Interval, in.SizePrefix), nil
	case ModeExplicit, "":
		return Explicit(in.SingleSize, in.SizePrefix), nil
	default:
		return Spec{}, apperror.NewValidationError(MsgUnknownSizeMode)
	}
}
