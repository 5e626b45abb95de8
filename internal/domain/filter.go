package domain

import (
	"strings"
	"time"
)

// AllCountries é o sentinela usado pelo dashboard para "sem filtro de país"
const AllCountries = "All"

const cacheKeyPrefix = "dashboard:"

// DatasetSize seleciona qual base agregada a função do banco deve consultar
type DatasetSize string

const (
	DatasetSmall  DatasetSize = "small"
	DatasetMedium DatasetSize = "medium"
	DatasetLarge  DatasetSize = "large"

	DefaultDatasetSize = DatasetMedium
)

// ParseDatasetSize converte a entrada do usuário em DatasetSize; o padrão é medium.
func ParseDatasetSize(s string) DatasetSize {
	switch DatasetSize(strings.ToLower(strings.TrimSpace(s))) {
	case DatasetSmall:
		return DatasetSmall
	case DatasetLarge:
		return DatasetLarge
	default:
		return DatasetMedium
	}
}

// DashboardFilter são os filtros escolhidos pelo usuário na tela do dashboard.
// Sempre use Normalize (ou ParseDashboardFilter) antes de gerar chave de cache.
type DashboardFilter struct {
	StartDate   *time.Time  `json:"start_date,omitempty"`
	EndDate     *time.Time  `json:"end_date,omitempty"`
	Country     *string     `json:"country,omitempty"`
	DatasetSize DatasetSize `json:"dataset_size"`
}

// ParseDashboardFilter monta um filtro normalizado a partir da query string.
// O filtro devolvido é sempre utilizável: datas malformadas são descartadas e
// reportadas no *ValidationError para quem chamou registrar em log.
func ParseDashboardFilter(startDate, endDate, country, datasetSize string) (DashboardFilter, error) {
	var verr *ValidationError

	start, err := parseFilterDate(startDate)
	if err != nil {
		verr = verr.add("start_date", startDate, err)
	}

	end, err := parseFilterDate(endDate)
	if err != nil {
		verr = verr.add("end_date", endDate, err)
	}

	filter := DashboardFilter{
		StartDate:   start,
		EndDate:     end,
		DatasetSize: ParseDatasetSize(datasetSize),
	}
	if country != "" {
		filter.Country = &country
	}

	filter = filter.Normalize()
	if verr != nil {
		return filter, verr
	}

	return filter, nil
}

// Normalize devolve a forma canônica do filtro. Datas zero viram nil e as
// demais são truncadas para o dia em UTC. País "All" ou vazio vira nil, e
// dataset size vazio vira o padrão.
func (f DashboardFilter) Normalize() DashboardFilter {
	out := DashboardFilter{
		StartDate:   normalizeDate(f.StartDate),
		EndDate:     normalizeDate(f.EndDate),
		DatasetSize: f.DatasetSize,
	}

	if f.Country != nil {
		c := strings.TrimSpace(*f.Country)
		if c != "" && !strings.EqualFold(c, AllCountries) {
			out.Country = &c
		}
	}

	if out.DatasetSize == "" {
		out.DatasetSize = DefaultDatasetSize
	} else {
		out.DatasetSize = ParseDatasetSize(string(out.DatasetSize))
	}

	return out
}

// cacheKeyFields fixa a ordem dos campos serializados na chave
type cacheKeyFields struct {
	DatasetSize DatasetSize `json:"dataset_size"`
	StartDate   string      `json:"start_date,omitempty"`
	EndDate     string      `json:"end_date,omitempty"`
	Country     string      `json:"country,omitempty"`
}

// CacheKey gera uma chave determinística para o filtro normalizado. Filtros
// iguais após a normalização produzem chaves idênticas byte a byte.
func (f DashboardFilter) CacheKey() string {
	n := f.Normalize()

	fields := cacheKeyFields{
		DatasetSize: n.DatasetSize,
		StartDate:   FormatDate(n.StartDate),
		EndDate:     FormatDate(n.EndDate),
	}
	if n.Country != nil {
		fields.Country = *n.Country
	}

	encoded, err := json.Marshal(fields)
	if err != nil {
		// só strings e um enum de string, não há como falhar
		return cacheKeyPrefix + string(fields.DatasetSize) + "|" + fields.StartDate + "|" + fields.EndDate + "|" + fields.Country
	}

	return cacheKeyPrefix + string(encoded)
}

// QueryArgs retorna os argumentos posicionais de get_dashboard_stats
// (filter_start_date, filter_end_date, filter_country, dataset_size).
// Valores ausentes são nil sem tipo para o driver enviar NULL.
func (f DashboardFilter) QueryArgs() []any {
	n := f.Normalize()

	args := []any{nil, nil, nil, string(n.DatasetSize)}
	if n.StartDate != nil {
		args[0] = FormatDate(n.StartDate)
	}
	if n.EndDate != nil {
		args[1] = FormatDate(n.EndDate)
	}
	if n.Country != nil {
		args[2] = *n.Country
	}

	return args
}

// CountryName retorna o país do filtro, ou "" quando todos estão selecionados.
func (f DashboardFilter) CountryName() string {
	if f.Country == nil {
		return ""
	}
	return *f.Country
}

// FormatDate formata a data como YYYY-MM-DD em UTC, ou "" quando ausente.
func FormatDate(t *time.Time) string {
	if t == nil || t.IsZero() {
		return ""
	}
	return t.UTC().Format(time.DateOnly)
}

func normalizeDate(t *time.Time) *time.Time {
	if t == nil || t.IsZero() {
		return nil
	}
	// dia do calendário em UTC, o mesmo instante sempre cai no mesmo dia
	u := t.UTC()
	d := time.Date(u.Year(), u.Month(), u.Day(), 0, 0, 0, 0, time.UTC)
	return &d
}

func parseFilterDate(s string) (*time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" || strings.EqualFold(s, "null") || strings.EqualFold(s, "undefined") {
		return nil, nil
	}

	for _, layout := range []string{time.DateOnly, time.RFC3339, "2006-01-02T15:04:05"} {
		if t, err := time.Parse(layout, s); err == nil {
			return &t, nil
		}
	}

	_, err := time.Parse(time.DateOnly, s)
	return nil, err
}
