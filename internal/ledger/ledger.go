// Package ledger reconstrói o registro de estoque (saldo corrente por tamanho) a partir do
// histórico de entradas e saídas, que chega sem ordem, e calcula as estatísticas do dia.
//
// Nada aqui faz I/O nem guarda estado: as funções podem ser chamadas a cada requisição.
package ledger

import (
	"sort"
	"strconv"
	"strings"
	"time"

	"beltstock/internal/domain"
)

// UnknownSize é a chave de grupo dos lançamentos sem tamanho (legado).
const UnknownSize = "unknown"

// Key identifica um grupo do registro: um tamanho de uma linha de estoque.
type Key struct {
	Category    string
	Subcategory string
	Size        string
}

// KeyOf devolve a chave de grupo de um lançamento.
func KeyOf(m domain.StockMovement) Key {
	return Key{Category: m.Category, Subcategory: m.Subcategory, Size: sizeKey(m.Size)}
}

func sizeKey(size domain.SizeLabel) string {
	if size == "" {
		return UnknownSize
	}
	return string(size)
}

// Entry é um lançamento anotado com o saldo do seu grupo logo após ele.
// Deficit guarda quanto a saída excedeu o saldo quando o saldo precisou ser travado em zero.
type Entry struct {
	domain.StockMovement
	RemainingStock int `json:"remainingStock"`
	Deficit        int `json:"deficit,omitempty"`
}

// Overdrawn informa se o lançamento retirou mais do que havia no saldo.
func (e Entry) Overdrawn() bool { return e.Deficit > 0 }

// Reconstruct agrupa os lançamentos por (categoria, subcategoria, tamanho), ordena cada grupo
// por data (estável em empates) e calcula o saldo corrente de cada lançamento.
// O saldo nunca fica negativo: o excedente de uma saída é registrado em Entry.Deficit.
func Reconstruct(events []domain.StockMovement) map[Key][]Entry {
	groups := make(map[Key][]domain.StockMovement)
	for _, ev := range events {
		key := KeyOf(ev)
		groups[key] = append(groups[key], ev)
	}

	out := make(map[Key][]Entry, len(groups))
	for key, group := range groups {
		sort.SliceStable(group, func(i, j int) bool {
			return group[i].Date.Before(group[j].Date)
		})

		entries := make([]Entry, 0, len(group))
		balance := 0
		for _, ev := range group {
			balance += ev.StockIn.Int() - ev.StockOut.Int()
			deficit := 0
			if balance < 0 {
				deficit = -balance
				balance = 0
			}
			entries = append(entries, Entry{StockMovement: ev, RemainingStock: balance, Deficit: deficit})
		}
		out[key] = entries
	}
	return out
}

// Balances devolve o saldo final de cada grupo.
func Balances(events []domain.StockMovement) map[Key]int {
	groups := Reconstruct(events)
	balances := make(map[Key]int, len(groups))
	for key, entries := range groups {
		balances[key] = entries[len(entries)-1].RemainingStock
	}
	return balances
}

// Overdrawn lista os lançamentos cuja saída excedeu o saldo do grupo, em ordem cronológica.
func Overdrawn(groups map[Key][]Entry) []Entry {
	var out []Entry
	for _, entries := range groups {
		for _, e := range entries {
			if e.Overdrawn() {
				out = append(out, e)
			}
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		if !out[i].Date.Equal(out[j].Date) {
			return out[i].Date.Before(out[j].Date)
		}
		return string(out[i].Size) < string(out[j].Size)
	})
	return out
}

// Flatten junta todos os grupos na ordem de exibição do registro:
// data mais recente primeiro, depois o número contido no tamanho, depois o rótulo.
func Flatten(groups map[Key][]Entry) []Entry {
	var out []Entry
	for _, entries := range groups {
		out = append(out, entries...)
	}
	sort.SliceStable(out, func(i, j int) bool {
		a, b := out[i], out[j]
		if !a.Date.Equal(b.Date) {
			return a.Date.After(b.Date)
		}
		na, nb := SizeNumber(string(a.Size)), SizeNumber(string(b.Size))
		if na != nb {
			return na < nb
		}
		if a.Size != b.Size {
			return a.Size < b.Size
		}
		if a.Category != b.Category {
			return a.Category < b.Category
		}
		return a.Subcategory < b.Subcategory
	})
	return out
}

// SizeNumber extrai o primeiro número do rótulo ("RU12" -> 12, "40" -> 40). Sem dígitos, 0.
func SizeNumber(label string) int {
	start := strings.IndexFunc(label, isDigit)
	if start < 0 {
		return 0
	}
	end := start
	for end < len(label) && isDigit(rune(label[end])) {
		end++
	}
	n, err := strconv.Atoi(label[start:end])
	if err != nil {
		return 0
	}
	return n
}

func isDigit(r rune) bool { return r >= '0' && r <= '9' }

// FilterBySize mantém os lançamentos cujo tamanho contém o termo buscado.
// Termo vazio devolve todos.
func FilterBySize(events []domain.StockMovement, term string) []domain.StockMovement {
	term = strings.TrimSpace(term)
	if term == "" {
		return events
	}
	var out []domain.StockMovement
	for _, ev := range events {
		if ev.Size != "" && strings.Contains(string(ev.Size), term) {
			out = append(out, ev)
		}
	}
	return out
}

// Stats são os números do topo do registro.
type Stats struct {
	TotalStock    int `json:"totalStock"`
	TodayStockIn  int `json:"todayStockIn"`
	TodayStockOut int `json:"todayStockOut"`
}

// ComputeStats calcula, numa única passada e sem depender da ordem:
//   - TotalStock: entradas menos saídas até o fim do dia de cutoff (23:59:59.999 no fuso de cutoff);
//   - TodayStockIn/TodayStockOut: entradas e saídas cujo dia de calendário é o de today.
func ComputeStats(events []domain.StockMovement, cutoff, today time.Time) Stats {
	endOfCutoff := EndOfDay(cutoff)
	ty, tm, td := today.Date()

	var stats Stats
	for _, ev := range events {
		in, out := ev.StockIn.Int(), ev.StockOut.Int()
		if !ev.Date.After(endOfCutoff) {
			stats.TotalStock += in - out
		}
		if y, m, d := ev.Date.In(today.Location()).Date(); y == ty && m == tm && d == td {
			stats.TodayStockIn += in
			stats.TodayStockOut += out
		}
	}
	return stats
}

// EndOfDay devolve o último milissegundo do dia de calendário de t, no fuso de t.
func EndOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 23, 59, 59, int(999*time.Millisecond), t.Location())
}

// InitialQuantity devolve a entrada do lançamento mais antigo do tamanho que tenha entrada
// preenchida, ou 0 se não houver. Tamanho vazio seleciona os lançamentos sem tamanho.
// Usado só quando o backend não tem a quantidade inicial registrada.
func InitialQuantity(events []domain.StockMovement, size string) int {
	var (
		found    bool
		earliest domain.StockMovement
	)
	for _, ev := range events {
		if string(ev.Size) != size || ev.StockIn <= 0 {
			continue
		}
		if !found || ev.Date.Before(earliest.Date) {
			earliest, found = ev, true
		}
	}
	if !found {
		return 0
	}
	return earliest.StockIn.Int()
}

// InitialQuantityTotal soma InitialQuantity de cada grupo (categoria, subcategoria, tamanho).
// Linhas cujo histórico mistura rótulos com e sem prefixo ("40" e "RU40") contam os dois.
func InitialQuantityTotal(events []domain.StockMovement) int {
	byKey := make(map[Key][]domain.StockMovement)
	for _, ev := range events {
		key := KeyOf(ev)
		byKey[key] = append(byKey[key], ev)
	}

	total := 0
	for _, group := range byKey {
		total += InitialQuantity(group, string(group[0].Size))
	}
	return total
}
